package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. It doubles
// as the topic name.
type EventType string

const (
	EventScheduleReplaced EventType = "schedule-replaced"
	EventMatchFull        EventType = "match-full"
)
