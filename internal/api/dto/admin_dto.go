package dto

import "time"

// ListMeta describes the page returned by a list endpoint.
type ListMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Count    int `json:"count"`
}

// AdminLogResponse renders an admin log entry.
type AdminLogResponse struct {
	ID            string    `json:"id"`
	ActionTime    time.Time `json:"action_time"`
	Resource      string    `json:"resource"`
	ObjectID      string    `json:"object_id"`
	ObjectRepr    string    `json:"object_repr"`
	Action        string    `json:"action"`
	ChangeMessage string    `json:"change_message"`
}
