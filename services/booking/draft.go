package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"glambook/config"
	"glambook/models"
	"glambook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrNoDraft is returned by DraftStore.Load when the session has no draft.
var ErrNoDraft = errors.New("no pending draft")

// DraftStore holds at most one pending-booking draft per client session,
// last write wins. Drafts exist so a selection survives the login redirect.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft models.PendingBooking) error
	Load(ctx context.Context, sessionID string) (*models.PendingBooking, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisDraftStore keeps drafts in the session cache with a TTL, so
// abandoned redirects clean up after themselves.
type RedisDraftStore struct {
	Client *redis.Client
}

func draftKey(sessionID string) string {
	return utils.DraftKeyPrefix + sessionID
}

func draftTTL() time.Duration {
	mins := config.AppConfig.DraftTTLMinutes
	if mins <= 0 {
		mins = 30
	}
	return time.Duration(mins) * time.Minute
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, draft models.PendingBooking) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, draftKey(sessionID), data, draftTTL()).Err()
}

func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (*models.PendingBooking, error) {
	data, err := s.Client.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, err
	}
	var draft models.PendingBooking
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, NewDraftCorrupt("unparseable pending draft")
	}
	return &draft, nil
}

func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, draftKey(sessionID)).Err()
}

// SaveDraft parks the client's current selection. Overwrites any previous
// draft for the session.
func (svc *DefaultBookingService) SaveDraft(sessionID string, draft models.PendingBooking) error {
	if sessionID == "" {
		return NewInvalidRequest("missing session")
	}
	if draft.ProfessionalID == "" || len(draft.ServiceIDs) == 0 || draft.Date == "" || draft.Time == "" {
		return NewInvalidRequest("incomplete booking selection")
	}
	draft.SavedAt = svc.now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := svc.Drafts.Save(ctx, sessionID, draft); err != nil {
		return NewUpstreamUnavailable("failed to save pending draft", err)
	}
	return nil
}

// ResumeDraft replays a saved draft into a normal booking attempt after the
// client has authenticated. Missing drafts, corrupt drafts, and drafts whose
// provider no longer matches the current page context all yield (nil, nil):
// the client simply proceeds as if nothing was parked. A replay goes through
// ConfirmBooking and the conflict guard exactly like a fresh request; the
// draft is consumed either way.
func (svc *DefaultBookingService) ResumeDraft(sessionID, clientID, pageProviderID string) (*models.Appointment, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	draft, err := svc.Drafts.Load(ctx, sessionID)
	if err != nil {
		if err == ErrNoDraft {
			return nil, nil
		}
		if CodeOf(err) == CodeDraftCorrupt {
			// Silent discard; never surfaced to the user.
			logger.Debug("discarding corrupt pending draft", zap.String("sessionID", sessionID))
			_ = svc.Drafts.Clear(ctx, sessionID)
			return nil, nil
		}
		return nil, NewUpstreamUnavailable("failed to load pending draft", err)
	}

	if pageProviderID != "" && draft.ProviderID != pageProviderID {
		logger.Debug("discarding stale pending draft",
			zap.String("sessionID", sessionID),
			zap.String("draftProvider", draft.ProviderID),
			zap.String("pageProvider", pageProviderID))
		_ = svc.Drafts.Clear(ctx, sessionID)
		return nil, nil
	}

	_ = svc.Drafts.Clear(ctx, sessionID)

	return svc.ConfirmBooking(BookingRequest{
		ProviderID:     draft.ProviderID,
		ProfessionalID: draft.ProfessionalID,
		ClientID:       clientID,
		ServiceIDs:     draft.ServiceIDs,
		Date:           draft.Date,
		Time:           draft.Time,
	})
}
