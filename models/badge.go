package models

// ShieldsBadge is the JSON document shields.io expects from a badge
// endpoint. Field names follow the shields.io schema (camelCase).
type ShieldsBadge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
}

// NewShieldsBadge builds the standard hits badge for a total count.
func NewShieldsBadge(message string) ShieldsBadge {
	return ShieldsBadge{
		SchemaVersion: 1,
		Label:         "hits",
		Message:       message,
		Color:         "blue",
	}
}
