package db_models

import "encoding/json"

// ActivityLogEntry is the audit record written alongside reversible
// mutations. PreviousData holds the target entity as it looked before the
// mutation; an entry with a snapshot can be reverted exactly once.
type ActivityLogEntry struct {
	ID           string          `json:"id"`
	ActorName    string          `json:"actorName"`
	Action       string          `json:"action"`
	Details      string          `json:"details,omitempty"`
	TargetType   string          `json:"targetType"`
	TargetID     string          `json:"targetId"`
	Timestamp    int64           `json:"timestamp"`
	PreviousData json.RawMessage `json:"previousData,omitempty"`
	IsReverted   bool            `json:"isReverted"`
}

// Target types recorded on activity entries.
const (
	TargetPackage  = "package"
	TargetDriver   = "driver"
	TargetBooking  = "booking"
	TargetBlogPost = "blogPost"
	TargetSettings = "settings"
)
