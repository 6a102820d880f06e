package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Thegreatvegan/Qura/internal/metrics"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

// User-facing outcome messages.
const (
	MsgSuccess     = "Thank you for your interest! We'll be in touch soon."
	MsgValidation  = "Please check your form inputs"
	MsgFailure     = "Something went wrong. Please try again later."
	MsgRateLimited = "Too many submissions. Please wait a minute and try again."
)

// Result is what the form shows after a submission. Errors is set only
// for validation failures and Reference only on success.
type Result struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
	Reference string       `json:"reference,omitempty"`
}

// FieldErrors indexes Errors by field name.
func (r Result) FieldErrors() map[string]string {
	if len(r.Errors) == 0 {
		return nil
	}
	return (&ValidationError{Fields: r.Errors}).Messages()
}

// Service validates and forwards contact submissions.
type Service struct {
	validator *Validator
	forwarder Forwarder
	notifier  Notifier
	limiter   *RateLimiter
	log       *slog.Logger

	newReference func() string
}

// NewService wires the submission pipeline. notifier and limiter may be
// nil.
func NewService(f Forwarder, n Notifier, l *RateLimiter, log *slog.Logger) *Service {
	return &Service{
		validator:    NewValidator(),
		forwarder:    f,
		notifier:     n,
		limiter:      l,
		log:          log.With(logger.Scope("contact")),
		newReference: uuid.NewString,
	}
}

// Allow applies the per-client rate limit.
func (s *Service) Allow(clientKey string) bool {
	if s.limiter == nil || s.limiter.Allow(clientKey) {
		return true
	}
	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRateLimited).Inc()
	s.log.Warn("contact submission rate limited", slog.String("client", clientKey))
	return false
}

// RateLimited is the result shown to a throttled client.
func RateLimited() Result {
	return Result{Message: MsgRateLimited}
}

// Submit validates sub, forwards it and notifies the team. It never
// returns an error: every failure becomes an unsuccessful Result.
func (s *Service) Submit(ctx context.Context, sub Submission) Result {
	if err := s.validator.Validate(sub); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()

		var ve *ValidationError
		if errors.As(err, &ve) {
			s.log.Debug("contact submission invalid", slog.Int("fields", len(ve.Fields)))
			return Result{Message: MsgValidation, Errors: ve.Fields}
		}
		s.log.Error("contact validation failed", logger.Error(err))
		return Result{Message: MsgFailure}
	}

	start := time.Now()
	err := s.forwarder.Forward(ctx, sub)
	metrics.ContactForwardDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.Error("contact submission not forwarded",
			logger.Error(err),
			slog.Bool("upstream_rejected", errors.Is(err, ErrUpstreamRejected)))
		return Result{Message: MsgFailure}
	}

	ref := s.newReference()
	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	s.log.Info("contact submission accepted", slog.String("reference", ref))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, sub, ref); err != nil {
			s.log.Warn("contact notification failed",
				slog.String("reference", ref),
				logger.Error(err))
		}
	}

	return Result{Success: true, Message: MsgSuccess, Reference: ref}
}
