package models

// Notification is session-only; it is never persisted.
type Notification struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
}
