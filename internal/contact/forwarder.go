package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Thegreatvegan/Qura/internal/config"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

// ErrUpstreamRejected is matched by errors.Is when the form endpoint
// answers with a non-2xx status.
var ErrUpstreamRejected = errors.New("form endpoint rejected submission")

// UpstreamError describes a non-2xx answer from the form endpoint.
type UpstreamError struct {
	Status int
	// Message is the endpoint's own explanation, when it sent one
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("form endpoint returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("form endpoint returned %d", e.Status)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamRejected
}

// Forwarder delivers a validated submission to the form-processing service.
type Forwarder interface {
	Forward(ctx context.Context, s Submission) error
}

// FormspreeForwarder posts submissions as JSON to a Formspree-compatible
// endpoint.
type FormspreeForwarder struct {
	client   *resty.Client
	endpoint string
	log      *slog.Logger
}

// NewFormspreeForwarder creates a forwarder for cfg.Endpoint.
func NewFormspreeForwarder(cfg config.ContactConfig, log *slog.Logger) *FormspreeForwarder {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		AddRetryCondition(notDelivered).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &FormspreeForwarder{
		client:   client,
		endpoint: cfg.Endpoint,
		log:      log.With(logger.Scope("contact.forwarder")),
	}
}

// notDelivered allows a retry only when the connection was never made.
// A submission that may have reached the endpoint is not posted again.
func notDelivered(_ *resty.Response, err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// formspreeError is the error body Formspree sends on rejection.
type formspreeError struct {
	Error  string `json:"error"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (e formspreeError) message() string {
	if e.Error != "" {
		return e.Error
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Forward sends s. Transport failures are wrapped; non-2xx statuses
// return an *UpstreamError.
func (f *FormspreeForwarder) Forward(ctx context.Context, s Submission) error {
	var rejected formspreeError

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(s).
		SetError(&rejected).
		Post(f.endpoint)
	if err != nil {
		return fmt.Errorf("forward submission: %w", err)
	}

	if !resp.IsSuccess() {
		uerr := &UpstreamError{Status: resp.StatusCode(), Message: rejected.message()}
		f.log.Warn("form endpoint rejected submission",
			slog.Int("status", uerr.Status),
			slog.String("upstream_message", uerr.Message))
		return uerr
	}

	f.log.Debug("submission forwarded", slog.Int("status", resp.StatusCode()))
	return nil
}
