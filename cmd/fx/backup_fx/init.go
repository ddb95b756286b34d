package backup_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(
	provideSnapshotRepo, provideBackupService)

func provideSnapshotRepo(db *gorm.DB) repositories.SnapshotRepositoryInterface {
	return repositories.NewSnapshotRepository(db)
}

func provideBackupService(s *store.Store, repo repositories.SnapshotRepositoryInterface) services.BackupServiceInterface {
	return services.NewBackupService(s, repo)
}
