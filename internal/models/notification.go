package models

// Notification is a condition/message pair evaluated once per invocation.
type Notification struct {
	Subject    string
	Message    string
	Details    map[string]string
	HTML       bool
	Recipients []string
}
