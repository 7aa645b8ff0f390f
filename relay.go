package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const defaultRelayURL = "https://formspree.io/f/xeoyrpga"

// Outcome labels shared by logs and metrics.
const (
	OutcomeSuccess          = "success"
	OutcomeRejected         = "rejected"
	OutcomeTransportFailure = "transport_failure"
	OutcomeInvalid          = "invalid"
	OutcomeStale            = "stale"
)

var (
	ErrRelayRejected = errors.New("relay: submission rejected")
	ErrTransport     = errors.New("relay: transport failure")
)

// Relay forwards a contact submission to the hosted form service.
type Relay interface {
	Send(ctx context.Context, req ContactRequest) error
}

// RelayRejectedError is returned when the relay answered with a non-2xx status.
type RelayRejectedError struct {
	StatusCode int
}

func (e *RelayRejectedError) Error() string {
	return fmt.Sprintf("relay: submission rejected with status %d", e.StatusCode)
}

func (e *RelayRejectedError) Is(target error) bool {
	return target == ErrRelayRejected
}

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "relay: transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrRelayRejected):
		return OutcomeRejected
	default:
		return OutcomeTransportFailure
	}
}

// FormspreeRelay posts submissions as multipart form data to a fixed endpoint.
type FormspreeRelay struct {
	endpoint string
	client   *http.Client
}

// NewFormspreeRelay builds a relay for endpoint. A nil client gets one with timeout.
func NewFormspreeRelay(endpoint string, client *http.Client, timeout time.Duration) *FormspreeRelay {
	if endpoint == "" {
		endpoint = defaultRelayURL
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &FormspreeRelay{endpoint: endpoint, client: client}
}

func (r *FormspreeRelay) Endpoint() string {
	return r.endpoint
}

// Send performs exactly one POST. The response body is discarded.
func (r *FormspreeRelay) Send(ctx context.Context, req ContactRequest) error {
	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("encode form: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RelayRejectedError{StatusCode: resp.StatusCode}
	}
	return nil
}

// encodeMultipart writes the fields under the exact keys the relay indexes by.
func encodeMultipart(req ContactRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range []struct{ key, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"message", req.Message},
	} {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
