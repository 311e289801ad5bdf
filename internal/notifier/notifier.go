package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

type webhookPayload struct {
	Text string `json:"text"`
}

// Send posts the message as JSON to the webhook, retrying transient failures
// with exponential backoff. Success is a 200-range status and nothing else.
func (n *implNotifier) Send(ctx context.Context, webhookURL, message string) error {
	body, err := json.Marshal(webhookPayload{Text: message})
	if err != nil {
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = n.maxElapsed

	var lastErr error
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			lastErr = &DeliveryError{Err: err}
			return lastErr
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			lastErr = &DeliveryError{StatusCode: resp.StatusCode}
			return lastErr
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			n.logger.Error(ctx, "Webhook notification failed: %v", lastErr)
			return lastErr
		}
		return err
	}

	return nil
}
