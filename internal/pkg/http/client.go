package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/homeconnect/backend/internal/pkg/circuitbreaker"
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/retry"
)

// Client is a generic HTTP client for communicating with external services
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// EnhancedClient wraps http.Client with retry and circuit breaker protection
type EnhancedClient struct {
	client  *http.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(name string, log *logger.ZapLogger, timeout time.Duration) *EnhancedClient {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = retry.NetworkRetryableFunc()

	return &EnhancedClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retrier: retry.New(retryConfig, log),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig(name), log),
		logger:  log,
	}
}

// Do executes an HTTP request with retry and circuit breaker protection.
// Responses with 5xx status codes count as failures for retry purposes.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			// A previous attempt consumed the body; rewind it so a
			// retried POST does not go out empty
			if req.GetBody != nil {
				body, bodyErr := req.GetBody()
				if bodyErr != nil {
					return bodyErr
				}
				req.Body = body
			}

			var doErr error
			resp, doErr = c.client.Do(req.WithContext(ctx))
			if doErr != nil {
				return doErr
			}

			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return fmt.Errorf("service unavailable: status %d", resp.StatusCode)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
