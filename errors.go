package slackstatus

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/slack-go/slack"
)

// Process exit codes for each error kind
const (
	ExitOK            = 0
	ExitUnknown       = 1
	ExitConfiguration = 2
	ExitAuth          = 3
	ExitNetwork       = 4
	ExitAPI           = 5
)

// authErrorCodes are the slack api error codes reporting a rejected credential
var authErrorCodes = map[string]bool{
	"invalid_auth":           true,
	"not_authed":             true,
	"token_revoked":          true,
	"token_expired":          true,
	"account_inactive":       true,
	"no_permission":          true,
	"missing_scope":          true,
	"not_allowed_token_type": true,
}

// ConfigurationError is returned when required configuration (i.e. the token) is missing or invalid
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on [%s]: %s", e.Key, e.Message)
}

// AuthError is returned when slack rejects the credential
type AuthError struct {
	// Slack error code (i.e. invalid_auth), empty when the rejection came as an http status
	Code       string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("authentication rejected: %s", e.Code)
	}

	return fmt.Sprintf("authentication rejected: http status %d", e.StatusCode)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NetworkError is returned when the request couldn't complete at the transport level
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ApiError is returned for any other failure reported by slack
type ApiError struct {
	// Slack error code (i.e. profile_set_failed), empty when the failure came as an http status
	Code       string
	StatusCode int
	Err        error
}

func (e *ApiError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("slack api error: %s", e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("slack api error: http status %d", e.StatusCode)
	default:
		return fmt.Sprintf("slack api error: %v", e.Err)
	}
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// Classify maps an error returned by the slack client to an AuthError, NetworkError or ApiError.
// Errors already classified are returned as is
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var configErr *ConfigurationError
	var authErr *AuthError
	var netErr *NetworkError
	var apiErr *ApiError
	if errors.As(err, &configErr) || errors.As(err, &authErr) || errors.As(err, &netErr) || errors.As(err, &apiErr) {
		return err
	}

	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		if authErrorCodes[slackErr.Err] {
			return &AuthError{Code: slackErr.Err, Err: err}
		}

		return &ApiError{Code: slackErr.Err, Err: err}
	}

	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		if statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden {
			return &AuthError{StatusCode: statusErr.Code, Err: err}
		}

		return &ApiError{StatusCode: statusErr.Code, Err: err}
	}

	var rateLimitedErr *slack.RateLimitedError
	if errors.As(err, &rateLimitedErr) {
		return &ApiError{Code: "ratelimited", StatusCode: http.StatusTooManyRequests, Err: err}
	}

	var urlErr *url.Error
	var netOpErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.As(err, &urlErr) || errors.As(err, &netOpErr) {
		return &NetworkError{Err: err}
	}

	return &ApiError{Err: err}
}

// ExitCode returns the process exit code for an error
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var configErr *ConfigurationError
	var authErr *AuthError
	var netErr *NetworkError
	var apiErr *ApiError

	switch {
	case errors.As(err, &configErr):
		return ExitConfiguration
	case errors.As(err, &authErr):
		return ExitAuth
	case errors.As(err, &netErr):
		return ExitNetwork
	case errors.As(err, &apiErr):
		return ExitAPI
	default:
		return ExitUnknown
	}
}
