// Package constants holds shared string constants.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes
const (
	AttrEventType = "event_type"
	AttrKind      = "kind"
	AttrRequestID = "request_id"
)

// EventTypeContent is the event_type attribute of content events
const EventTypeContent = "content"
