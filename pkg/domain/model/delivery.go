package model

import (
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

// WebhookDelivery records a single admitted delivery. At most one exists per DeliveryID.
type WebhookDelivery struct {
	DeliveryID  types.DeliveryID `json:"delivery_id" firestore:"delivery_id"`
	EventKind   string           `json:"event_kind" firestore:"event_kind"`
	Payload     string           `json:"payload" firestore:"payload"`
	Processed   bool             `json:"processed" firestore:"processed"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty" firestore:"processed_at"`
	Error       string           `json:"error,omitempty" firestore:"error"`
	CreatedAt   time.Time        `json:"created_at" firestore:"created_at"`
}

// DeliveryResult is the terminal outcome written back to a WebhookDelivery.
type DeliveryResult struct {
	Processed   bool
	ProcessedAt time.Time
	Error       string
}
