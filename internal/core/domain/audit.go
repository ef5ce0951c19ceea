package domain

import "time"

// Audit actions recorded for every mutation.
const (
	AuditCreated  = "created"
	AuditUpdated  = "updated"
	AuditDeleted  = "deleted"
	AuditLocked   = "locked"
	AuditUnlocked = "unlocked"
)

// AuditEntry is one revision record in the audit trail. Entries are
// written asynchronously; the trail is an observer, never a participant,
// of the mutation it describes.
type AuditEntry struct {
	Entity   string    `json:"entity"`
	EntityID int64     `json:"entity_id"`
	Action   string    `json:"action"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}
