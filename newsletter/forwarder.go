package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Forwarder hands a new signup to the mailing-list provider.
type Forwarder interface {
	Forward(ctx context.Context, email string) error
}

type httpForwarder struct {
	endpoint string
	client   *http.Client
}

// NewHTTPForwarder posts {"email": ...} as JSON to endpoint.
func NewHTTPForwarder(endpoint string, timeout time.Duration) Forwarder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpForwarder{endpoint: endpoint, client: &http.Client{Timeout: timeout}}
}

func (f *httpForwarder) Forward(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("newsletter upstream: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("newsletter upstream: status %d", resp.StatusCode)
	}
	return nil
}
