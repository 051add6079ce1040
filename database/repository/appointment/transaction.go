package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"glambook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIfFree re-reads the professional's non-cancelled appointments for
// the target date and inserts the proposed appointment only when nothing
// overlaps, all inside one transaction. A per-professional-per-day version
// document is bumped in the same transaction, so two writers racing on the
// same day conflict at commit and one of them aborts with a transient error
// the caller can retry.
func (repo *MongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	proposed := appt.Interval()

	txnFn := func(sc mongo.SessionContext) error {
		existing, err := repo.listNonCancelled(sc, appt.ProfessionalID, appt.Date)
		if err != nil {
			return err
		}
		for _, other := range existing {
			if proposed.Overlaps(other.Interval()) {
				return ErrSlotTaken
			}
		}

		// Serialization point: every commit for this professional+date
		// passes through the same version document.
		lockFilter := bson.M{"professionalId": appt.ProfessionalID, "date": appt.Date}
		lockUpdate := bson.M{"$inc": bson.M{"version": 1}}
		if _, err := repo.lockColl.UpdateOne(sc, lockFilter, lockUpdate, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("failed to bump booking day version: %w", err)
		}

		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// IsTransient reports whether a transaction error is worth retrying with a
// fresh validate-and-commit cycle (commit-time write conflicts between two
// racing bookings surface this way).
func IsTransient(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}
