// Package gateway talks to the hosted generation model. It owns provider
// selection, upstream failure classification, and the bounded retry policy
// around a single generation call.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"

	"machsight/internal/config"
	"machsight/internal/diagnostics"
)

// Client sends a composed prompt (plus optional attachment) to the model and
// returns the raw text reply.
type Client interface {
	Generate(ctx context.Context, prompt string, attachment *diagnostics.Attachment) (string, error)
	Close() error
}

// FailureKind tags an upstream failure for the retry policy. Classification
// comes from structured status codes, not error-text matching.
type FailureKind int

const (
	// KindPermanent failures propagate immediately.
	KindPermanent FailureKind = iota
	// KindTransient failures (overload, unavailable) may be retried.
	KindTransient
)

// Classify inspects the provider error's status code. 503 and 429 are the
// overload signals worth waiting out; everything else is permanent. The
// string check is a last resort for providers that wrap the status away.
func Classify(err error) FailureKind {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusServiceUnavailable || gerr.Code == http.StatusTooManyRequests {
			return KindTransient
		}
		return KindPermanent
	}

	var oerr *openai.APIError
	if errors.As(err, &oerr) {
		if oerr.HTTPStatusCode == http.StatusServiceUnavailable || oerr.HTTPStatusCode == http.StatusTooManyRequests {
			return KindTransient
		}
		return KindPermanent
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "overloaded") || strings.Contains(msg, "unavailable") {
		return KindTransient
	}
	return KindPermanent
}

// RetryPolicy is the explicit, testable shape of the 3-attempt linear
// backoff: after attempt n fails transiently, wait n × BaseDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn up to MaxAttempts times. Only transient failures are retried;
// permanent failures and attempt exhaustion propagate immediately.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) (string, error)) (string, error) {
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		text, err := fn(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if Classify(err) != KindTransient || attempt == p.MaxAttempts {
			return "", err
		}
		if err := sleep(ctx, time.Duration(attempt)*p.BaseDelay); err != nil {
			return "", err
		}
	}
	return "", lastErr
}

// NewClient picks the generation provider from configuration.
func NewClient(cfg config.AIConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai":
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
