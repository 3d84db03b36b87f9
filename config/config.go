// Package config provides the configuration keys, defaults and loading helpers
// for slackstatus
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	TokenKey          = "token"          // Slack user token, string value. Bound to the SLACK_TOKEN environment variable
	DebugKey          = "debug"          // Debug mode, boolean value. Defaults to false
	TimeLocationKey   = "timeLocation"   // Time zone used for status expiration and scheduling, string value. Defaults to Local
	APIURLKey         = "apiURL"         // Base url of the slack web api, string value. Defaults to https://slack.com/api/
	RequestTimeoutKey = "requestTimeout" // Timeout of the status update request, duration value. Defaults to 10s

	QuotesMaxAttemptsKey = "quotes.maxAttempts" // Number of quote fetch attempts before using a fallback quote, int value. Defaults to 3
	QuotesMaxLengthKey   = "quotes.maxLength"   // Maximum length of a formatted quote (without author), int value. Defaults to 80
	QuotesTimeoutKey     = "quotes.timeout"     // Timeout of a single quote fetch, duration value. Defaults to 5s
	QuotesSourcesKey     = "quotes.sources"     // List of quote sources. Defaults to the built-in sources when unset

	StatusTextKey  = "status.text"  // Static status text. When set, quotes aren't fetched
	StatusEmojiKey = "status.emoji" // Emoji for the static status text. Defaults to :speech_balloon:

	ScheduleAtTimeKey = "schedule.atTime" // Time of day of the daily update in run mode. Defaults to 00:00
	ScheduleCronKey   = "schedule.cron"   // Cron expression overriding schedule.atTime when set
)

// TokenEnvVar is the environment variable the token is read from
const TokenEnvVar = "SLACK_TOKEN"

// Default values
const (
	defaultDebug             = false
	defaultTimeLocation      = "Local"
	defaultAPIURL            = "https://slack.com/api/"
	defaultRequestTimeout    = 10 * time.Second
	defaultQuotesMaxAttempts = 3
	defaultQuotesMaxLength   = 80
	defaultQuotesTimeout     = 5 * time.Second
	defaultStatusEmoji       = ":speech_balloon:"
	defaultScheduleAtTime    = "00:00"
)

// QuoteSource holds the configuration of a single quote api
type QuoteSource struct {
	Name       string `mapstructure:"name" validate:"required"`
	URL        string `mapstructure:"url" validate:"required,url"`
	TextPath   string `mapstructure:"textPath" validate:"required"`
	AuthorPath string `mapstructure:"authorPath"`
}

// NewViperWithDefaults creates a new viper instance with the defaults values
// set on it along with the token environment variable binding
func NewViperWithDefaults() (v *viper.Viper) {
	v = viper.New()

	return LayerConfigWithDefaults(v)
}

// LayerConfigWithDefaults layers default values and the token environment
// binding on an existing viper instance
func LayerConfigWithDefaults(v *viper.Viper) (lv *viper.Viper) {
	v.SetDefault(DebugKey, defaultDebug)
	v.SetDefault(TimeLocationKey, defaultTimeLocation)
	v.SetDefault(APIURLKey, defaultAPIURL)
	v.SetDefault(RequestTimeoutKey, defaultRequestTimeout)
	v.SetDefault(QuotesMaxAttemptsKey, defaultQuotesMaxAttempts)
	v.SetDefault(QuotesMaxLengthKey, defaultQuotesMaxLength)
	v.SetDefault(QuotesTimeoutKey, defaultQuotesTimeout)
	v.SetDefault(StatusEmojiKey, defaultStatusEmoji)
	v.SetDefault(ScheduleAtTimeKey, defaultScheduleAtTime)

	// BindEnv only fails when called without a key
	_ = v.BindEnv(TokenKey, TokenEnvVar)

	return v
}

// Load returns a viper instance with defaults layered under the values of the
// configuration file at path. An empty path skips the file and only uses
// defaults and the environment
func Load(path string) (v *viper.Viper, err error) {
	v = NewViperWithDefaults()
	if path == "" {
		return v, nil
	}

	// Expand '~' as the full home directory path if appropriate
	fullPath, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand configuration path [%s]", path)
	}

	v.SetConfigFile(fullPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration file [%s]", fullPath)
	}

	return v, nil
}

// GetTimeLocation returns the time location set in the configuration or
// an error if the value isn't a valid time zone identifier
func GetTimeLocation(v *viper.Viper) (timeLoc *time.Location, err error) {
	timeLoc, err = time.LoadLocation(v.GetString(TimeLocationKey))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid [%s] value [%s]", TimeLocationKey, v.GetString(TimeLocationKey))
	}

	return timeLoc, nil
}

// GetQuoteSources decodes and validates the quote sources. It returns an
// empty slice (and no error) when no sources are configured
func GetQuoteSources(v *viper.Viper) (sources []QuoteSource, err error) {
	sources = make([]QuoteSource, 0)
	if !v.IsSet(QuotesSourcesKey) {
		return sources, nil
	}

	if err := v.UnmarshalKey(QuotesSourcesKey, &sources); err != nil {
		return nil, errors.Wrapf(err, "failed to decode [%s]", QuotesSourcesKey)
	}

	validate := validator.New()
	for i, s := range sources {
		if err := validate.Struct(s); err != nil {
			return nil, errors.Wrapf(err, "invalid quote source at index [%d]", i)
		}
	}

	return sources, nil
}

// ParseAtTime parses an "at time" value (i.e. "10:30") into its hour and minute
func ParseAtTime(atTime string) (hour uint, minute uint, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(atTime))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid at time [%s], expected format is HH:MM", atTime)
	}

	return uint(t.Hour()), uint(t.Minute()), nil
}
