package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking flow. InvalidRequest and SlotConflict are
// surfaced to the end user with an actionable message; UpstreamUnavailable
// is retried a bounded number of times before surfacing; DraftCorrupt is
// never surfaced at all.
const (
	CodeInvalidRequest      = "invalidRequest"
	CodeSlotConflict        = "slotConflict"
	CodeUpstreamUnavailable = "upstreamUnavailable"
	CodeDraftCorrupt        = "draftCorrupt"
)

type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewInvalidRequest(msg string) error {
	return &BookingError{Code: CodeInvalidRequest, Message: msg}
}

func NewSlotConflict(msg string) error {
	return &BookingError{Code: CodeSlotConflict, Message: msg}
}

func NewUpstreamUnavailable(msg string, err error) error {
	return &BookingError{Code: CodeUpstreamUnavailable, Message: msg, Err: err}
}

func NewDraftCorrupt(msg string) error {
	return &BookingError{Code: CodeDraftCorrupt, Message: msg}
}

// CodeOf extracts the booking error code, or "" for unclassified errors.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// MessageOf extracts the user-facing message of a booking error.
func MessageOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}
