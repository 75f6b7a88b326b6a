package models

import "errors"

// AuditEntry is one row of the backend's mutation journal.
type AuditEntry struct {
	ID        string `json:"id"`
	ActorID   string `json:"actor_id"`
	Actor     string `json:"actor"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AuditList struct {
	Logs  []AuditEntry `json:"logs"`
	Total int64        `json:"total"`
}

// Storage errors shared by the backend's persistence layer and its handlers.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
