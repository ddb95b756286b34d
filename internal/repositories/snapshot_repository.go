package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type SnapshotRepositoryInterface interface {
	SaveArchive(ctx context.Context, archive db_models.SnapshotArchive) error
	LatestArchive(ctx context.Context) (*db_models.SnapshotArchive, error)
	ListArchives(ctx context.Context, limit int) ([]db_models.SnapshotArchive, error)
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &SnapshotRepository{db: db}
}

type SnapshotRepository struct {
	db *gorm.DB
}

func (r *SnapshotRepository) SaveArchive(ctx context.Context, archive db_models.SnapshotArchive) error {
	if r.db == nil {
		return utils.ErrDatabaseDisabled
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(&archive).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *SnapshotRepository) LatestArchive(ctx context.Context) (*db_models.SnapshotArchive, error) {
	if r.db == nil {
		return nil, utils.ErrDatabaseDisabled
	}

	var archive db_models.SnapshotArchive
	err := r.db.WithContext(ctx).Order("created_at desc").First(&archive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &archive, nil
}

func (r *SnapshotRepository) ListArchives(ctx context.Context, limit int) ([]db_models.SnapshotArchive, error) {
	if r.db == nil {
		return nil, utils.ErrDatabaseDisabled
	}
	if limit <= 0 {
		limit = 20
	}

	var archives []db_models.SnapshotArchive
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&archives).Error
	if err != nil {
		return nil, err
	}
	return archives, nil
}
