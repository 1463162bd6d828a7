package model

// NotificationField is one titled section of a digest message.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic stats digest for downstream notifiers.
type Notification struct {
	Title       string
	Description string
	Fields      []NotificationField
}
