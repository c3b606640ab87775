// Package constants holds provider identifiers shared by config and infra wiring.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Geolocation providers
const (
	GeolocationProviderNone   = "none"
	GeolocationProviderStatic = "static"
	GeolocationProviderIPAPI  = "ipapi"
)

// MeetupEventProposed is the event type published when a meetup is proposed.
const MeetupEventProposed = "meetup.proposed"
