package db_models

// SnapshotArchive is one stored backup row. Payload is the serialized
// Snapshot document exactly as exported.
type SnapshotArchive struct {
	BaseModel
	Version   string
	Timestamp string
	Payload   []byte `gorm:"type:jsonb"`
}
