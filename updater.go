package slackstatus

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alexandre-normand/slackstatus/config"
	"github.com/alexandre-normand/slackstatus/emoji"
	"github.com/alexandre-normand/slackstatus/quote"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultName = "slackstatus"
)

// StatusUpdater sets the slack status of the user owning its token
type StatusUpdater struct {
	name       string
	setter     StatusSetter
	source     StatusSource
	logger     SLogger
	apiURL     string
	httpClient *http.Client
	meter      metric.Meter
	debug      bool
}

// Option defines an option for a StatusUpdater
type Option func(u *StatusUpdater)

// OptionStatusSetter sets the StatusSetter used instead of a slack.Client built from the token
func OptionStatusSetter(setter StatusSetter) Option {
	return func(u *StatusUpdater) {
		u.setter = setter
	}
}

// OptionStatusSource sets the source of the status set on each update. Defaults to a QuoteSource
func OptionStatusSource(source StatusSource) Option {
	return func(u *StatusUpdater) {
		u.source = source
	}
}

// OptionAPIURL sets the slack web api url (with a trailing slash)
func OptionAPIURL(apiURL string) Option {
	return func(u *StatusUpdater) {
		u.apiURL = apiURL
	}
}

// OptionHTTPClient sets the http client used by the slack client
func OptionHTTPClient(c *http.Client) Option {
	return func(u *StatusUpdater) {
		u.httpClient = c
	}
}

// OptionLogger sets the logger
func OptionLogger(logger SLogger) Option {
	return func(u *StatusUpdater) {
		u.logger = logger
	}
}

// OptionMeter sets the meter used to instrument calls to slack. Defaults to the global meter provider's
func OptionMeter(meter metric.Meter) Option {
	return func(u *StatusUpdater) {
		u.meter = meter
	}
}

// OptionDebug enables debug logging on the slack client
func OptionDebug(debug bool) Option {
	return func(u *StatusUpdater) {
		u.debug = debug
	}
}

// OptionName sets the name used as the metrics name attribute
func OptionName(name string) Option {
	return func(u *StatusUpdater) {
		u.name = name
	}
}

// New creates a new StatusUpdater authenticated with the given token. A *ConfigurationError is
// returned if the token is empty
func New(token string, options ...Option) (u *StatusUpdater, err error) {
	if strings.TrimSpace(token) == "" {
		return nil, &ConfigurationError{Key: config.TokenKey, Message: fmt.Sprintf("a slack token is required, set it with the %s environment variable", config.TokenEnvVar)}
	}

	u = new(StatusUpdater)
	u.name = defaultName
	u.logger = NewSLogger(log.New(os.Stdout, "slackstatus: ", log.Lshortfile|log.LstdFlags), false)

	for _, opt := range options {
		opt(u)
	}

	if u.meter == nil {
		u.meter = otel.Meter(u.name)
	}

	if u.source == nil {
		u.source = NewQuoteSource(quote.NewFetcher(nil, quote.OptionLogger(u.logger)), emoji.NewMatcher(nil), time.Local)
	}

	if u.setter == nil {
		slackOptions := []slack.Option{
			slack.OptionDebug(u.debug),
			slack.OptionLog(log.New(os.Stdout, "slack: ", log.Lshortfile|log.LstdFlags)),
		}

		if u.apiURL != "" {
			slackOptions = append(slackOptions, slack.OptionAPIURL(u.apiURL))
		}

		slackOptions = append(slackOptions, slack.OptionHTTPClient(withRetryAfterDefault(u.httpClient)))

		u.setter, err = NewStatusSetterWithTelemetry(slack.New(token, slackOptions...), u.name, u.meter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to instrument slack client")
		}
	}

	return u, nil
}

// Preview returns the status the next update would set without setting it
func (u *StatusUpdater) Preview(ctx context.Context) (s Status, err error) {
	s, err = u.source.Status(ctx)
	if err != nil {
		return s, errors.Wrap(err, "failed to compose status")
	}

	return s, nil
}

// UpdateStatus composes a status and sets it with a single call to slack. Errors are
// an *AuthError if slack rejected the token, a *NetworkError if the call failed at
// the transport level or an *ApiError for any other failure
func (u *StatusUpdater) UpdateStatus(ctx context.Context) (err error) {
	s, err := u.Preview(ctx)
	if err != nil {
		return err
	}

	var expiration int64
	if !s.Expiration.IsZero() {
		expiration = s.Expiration.Unix()
	}

	u.logger.Debugf("Setting status [%s] with emoji [%s] expiring at [%d]\n", s.Text, s.Emoji, expiration)

	if err = u.setter.SetUserCustomStatusContext(ctx, s.Text, s.Emoji, expiration); err != nil {
		err = Classify(err)
		u.logger.Printf("Error updating status: %v\n", err)

		return err
	}

	u.logger.Printf("Status updated successfully: %s %s\n", s.Text, s.Emoji)

	return nil
}
