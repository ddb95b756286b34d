package services

import (
	"voyago/internal/models/db_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type ActivityServiceInterface interface {
	ListActivity(page, pageSize int) ([]db_models.ActivityLogEntry, error)
	RevertActivity(actor, logID string) error
}

type ActivityService struct {
	store *store.Store
}

func NewActivityService(s *store.Store) ActivityServiceInterface {
	return &ActivityService{store: s}
}

func (a *ActivityService) ListActivity(page, pageSize int) ([]db_models.ActivityLogEntry, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	entries := a.store.Activity.List()
	start := (page - 1) * pageSize
	if start >= len(entries) {
		return []db_models.ActivityLogEntry{}, nil
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], nil
}

func (a *ActivityService) RevertActivity(actor, logID string) error {
	entry, err := a.store.Activity.Get(logID)
	if err != nil {
		return err
	}

	if err := a.store.RevertActivity(logID); err != nil {
		return err
	}

	_, _ = a.store.RecordActivity(actor, "revert",
		"Reverted: "+entry.Details,
		entry.TargetType, entry.TargetID, nil)

	return nil
}
