package domain

import "time"

// AdminAction is the kind of change recorded in the admin log.
type AdminAction string

const (
	AdminActionAddition AdminAction = "ADDITION"
	AdminActionChange   AdminAction = "CHANGE"
	AdminActionDeletion AdminAction = "DELETION"
)

// AdminLogEntry records one write made through the admin API.
type AdminLogEntry struct {
	ID            string
	ActionTime    time.Time
	Resource      string
	ObjectID      string
	ObjectRepr    string
	Action        AdminAction
	ChangeMessage string
}
