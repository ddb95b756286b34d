package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

// RecordActivity appends an audit entry. previous, when non-nil, is the
// target entity as it looked before the mutation and makes the entry
// revertible.
func (s *Store) RecordActivity(actor, action, details, targetType, targetID string, previous any) (db_models.ActivityLogEntry, error) {
	entry := db_models.ActivityLogEntry{
		ID:         uuid.New().String(),
		ActorName:  actor,
		Action:     action,
		Details:    details,
		TargetType: targetType,
		TargetID:   targetID,
		Timestamp:  utils.NowUnixMillis(),
	}

	if previous != nil {
		raw, err := json.Marshal(previous)
		if err != nil {
			return db_models.ActivityLogEntry{}, fmt.Errorf("snapshot previous data: %w", err)
		}
		entry.PreviousData = raw
	}

	if err := s.Activity.Add(entry); err != nil {
		return db_models.ActivityLogEntry{}, err
	}
	return entry, nil
}

// RevertActivity restores the entry's previousData into its collection and
// marks the entry reverted. A second revert of the same entry is refused.
func (s *Store) RevertActivity(logID string) error {
	entry, err := s.Activity.Get(logID)
	if err != nil {
		return err
	}
	if entry.IsReverted {
		return utils.ErrAlreadyReverted
	}
	if len(entry.PreviousData) == 0 {
		return utils.ErrNoSnapshot
	}

	if err := s.restorePrevious(entry.TargetType, entry.PreviousData); err != nil {
		return err
	}

	entry.IsReverted = true
	return s.Activity.Update(entry)
}

func (s *Store) restorePrevious(targetType string, previous json.RawMessage) error {
	switch targetType {
	case db_models.TargetPackage:
		var p db_models.TourPackage
		if err := json.Unmarshal(previous, &p); err != nil {
			return fmt.Errorf("decode previous package: %w", err)
		}
		s.Packages.Upsert(p)
	case db_models.TargetDriver:
		var d db_models.Driver
		if err := json.Unmarshal(previous, &d); err != nil {
			return fmt.Errorf("decode previous driver: %w", err)
		}
		s.Drivers.Upsert(d)
	case db_models.TargetBooking:
		var b db_models.Booking
		if err := json.Unmarshal(previous, &b); err != nil {
			return fmt.Errorf("decode previous booking: %w", err)
		}
		s.Bookings.Upsert(b)
	case db_models.TargetBlogPost:
		var p db_models.BlogPost
		if err := json.Unmarshal(previous, &p); err != nil {
			return fmt.Errorf("decode previous blog post: %w", err)
		}
		s.BlogPosts.Upsert(p)
	case db_models.TargetSettings:
		var st db_models.SettingsState
		if err := json.Unmarshal(previous, &st); err != nil {
			return fmt.Errorf("decode previous settings: %w", err)
		}
		s.ReplaceSettings(st)
	default:
		return fmt.Errorf("%w: unknown target type %q", utils.ErrNoSnapshot, targetType)
	}
	return nil
}
