package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type BackupServiceInterface interface {
	ExportSnapshot() db_models.Snapshot
	ImportSnapshot(actor string, raw []byte) error
	ArchiveSnapshot(ctx context.Context) error
	ListArchives(ctx context.Context, limit int) ([]db_models.SnapshotArchive, error)
	RestoreLatestArchive(ctx context.Context, actor string) error
}

type BackupService struct {
	store        *store.Store
	snapshotRepo repositories.SnapshotRepositoryInterface
}

func NewBackupService(s *store.Store, repo repositories.SnapshotRepositoryInterface) BackupServiceInterface {
	return &BackupService{store: s, snapshotRepo: repo}
}

func (b *BackupService) ExportSnapshot() db_models.Snapshot {
	return b.store.ExportSnapshot()
}

// ImportSnapshot replaces all collections from an uploaded backup file.
// Malformed JSON aborts the whole import; nothing is partially applied.
func (b *BackupService) ImportSnapshot(actor string, raw []byte) error {
	var snap db_models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMalformedBackup, err)
	}

	if err := b.store.ImportSnapshot(snap); err != nil {
		return err
	}

	_, _ = b.store.RecordActivity(actor, "import",
		fmt.Sprintf("Restored backup from %s", snap.Timestamp),
		db_models.TargetSettings, "backup", nil)

	return nil
}

// ArchiveSnapshot stores the current state as a row in Postgres, when the
// archive database is configured.
func (b *BackupService) ArchiveSnapshot(ctx context.Context) error {
	snap := b.store.ExportSnapshot()
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return b.snapshotRepo.SaveArchive(ctx, db_models.SnapshotArchive{
		Version:   snap.Version,
		Timestamp: snap.Timestamp,
		Payload:   payload,
	})
}

func (b *BackupService) ListArchives(ctx context.Context, limit int) ([]db_models.SnapshotArchive, error) {
	return b.snapshotRepo.ListArchives(ctx, limit)
}

func (b *BackupService) RestoreLatestArchive(ctx context.Context, actor string) error {
	archive, err := b.snapshotRepo.LatestArchive(ctx)
	if err != nil {
		return err
	}
	if archive == nil {
		return utils.ErrNotFound
	}

	log.Printf("Restoring archived snapshot from %s", archive.Timestamp)
	return b.ImportSnapshot(actor, archive.Payload)
}
