package notifier

import (
	"context"
	"fmt"
	"time"
)

// Notifier delivers a result excerpt to a webhook endpoint. Entirely
// optional: the orchestrator skips it when no destination is configured.
type Notifier interface {
	Send(ctx context.Context, webhookURL, message string) error
}

// Payload is the material the notification message is built from.
type Payload struct {
	FileName string
	Elapsed  time.Duration
	Models   string
	Summary  string
}

// DeliveryError reports a non-2xx response or a transport failure. Any other
// error from Send means the request could not even be constructed.
type DeliveryError struct {
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("webhook returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook delivery: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
