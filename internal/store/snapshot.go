package store

import (
	"time"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

// ExportSnapshot serializes every collection and the settings singletons.
func (s *Store) ExportSnapshot() db_models.Snapshot {
	return db_models.Snapshot{
		Version:   db_models.SnapshotVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Packages:  s.Packages.List(),
		Drivers:   s.Drivers.List(),
		Bookings:  s.Bookings.List(),
		BlogPosts: s.BlogPosts.List(),
		Activity:  s.Activity.List(),
		Settings:  s.Settings(),
	}
}

// ImportSnapshot wholesale-replaces every collection and the settings.
// Version "" (pre-versioning exports) and the current version are accepted;
// anything else is rejected.
func (s *Store) ImportSnapshot(snap db_models.Snapshot) error {
	if snap.Version != "" && snap.Version != db_models.SnapshotVersion {
		return utils.ErrSnapshotVersion
	}

	s.Packages.Replace(snap.Packages)
	s.Drivers.Replace(snap.Drivers)
	s.Bookings.Replace(snap.Bookings)
	s.BlogPosts.Replace(snap.BlogPosts)
	s.Activity.Replace(snap.Activity)
	s.ReplaceSettings(snap.Settings)
	return nil
}
