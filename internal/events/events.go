package events

import (
	"context"
	"time"
)

const (
	RoutingKeyEntered = "gym.entered"
	RoutingKeyExited  = "gym.exited"
)

// PresenceEvent is emitted whenever a client enters or leaves the gym.
type PresenceEvent struct {
	Type         string     `json:"type"`
	VisitID      string     `json:"visitId"`
	ClientID     string     `json:"clientId"`
	EntranceTime time.Time  `json:"entranceTime"`
	ExitTime     *time.Time `json:"exitTime,omitempty"`
	LockerNumber *int       `json:"lockerNumber,omitempty"`
	OccurredAt   time.Time  `json:"occurredAt"`
}

type Publisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
	Close() error
}

// Noop discards every event. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishJSON(context.Context, string, any) error { return nil }

func (Noop) Close() error { return nil }
