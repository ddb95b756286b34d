package db_models

// SnapshotVersion is written on every export. Import accepts this value and
// the empty string (exports from before versioning); anything else is
// rejected rather than best-effort migrated.
const SnapshotVersion = "1"

// Snapshot is the backup file format: every collection plus the settings
// singletons and an export timestamp.
type Snapshot struct {
	Version   string             `json:"version"`
	Timestamp string             `json:"timestamp"`
	Packages  []TourPackage      `json:"packages"`
	Drivers   []Driver           `json:"drivers"`
	Bookings  []Booking          `json:"bookings"`
	BlogPosts []BlogPost         `json:"blogPosts"`
	Activity  []ActivityLogEntry `json:"activity"`
	Settings  SettingsState      `json:"settings"`
}
