package slackstatus

import (
	"context"
	"time"

	"github.com/alexandre-normand/slackstatus/quote"
)

// Status holds the status payload sent to slack. A zero Expiration means the status doesn't expire
type Status struct {
	Text       string
	Emoji      string
	Expiration time.Time
}

// StatusSource provides the status to set on each update
type StatusSource interface {
	Status(ctx context.Context) (s Status, err error)
}

// StaticSource is a StatusSource always returning the same status
type StaticSource Status

// Status implements StatusSource
func (ss StaticSource) Status(ctx context.Context) (s Status, err error) {
	return Status(ss), nil
}

// QuoteFetcher is implemented by *quote.Fetcher
type QuoteFetcher interface {
	Random(ctx context.Context) (q quote.Quote)
}

// EmojiMatcher is implemented by *emoji.Matcher
type EmojiMatcher interface {
	Emoji(category string) string
}

// QuoteSource is a StatusSource setting a random quote with an emoji matching its category.
// The status expires at the next midnight
type QuoteSource struct {
	fetcher  QuoteFetcher
	matcher  EmojiMatcher
	location *time.Location
	now      func() time.Time
}

// NewQuoteSource creates a new QuoteSource. Midnight is computed in the given location (time.Local if nil)
func NewQuoteSource(fetcher QuoteFetcher, matcher EmojiMatcher, location *time.Location) (qs *QuoteSource) {
	qs = new(QuoteSource)
	qs.fetcher = fetcher
	qs.matcher = matcher
	qs.location = location
	if qs.location == nil {
		qs.location = time.Local
	}
	qs.now = time.Now

	return qs
}

// Status implements StatusSource
func (qs *QuoteSource) Status(ctx context.Context) (s Status, err error) {
	q := qs.fetcher.Random(ctx)

	return Status{Text: q.String(), Emoji: qs.matcher.Emoji(q.Category), Expiration: NextMidnight(qs.now(), qs.location)}, nil
}

// NextMidnight returns the start of the day following t in the given location
func NextMidnight(t time.Time, location *time.Location) time.Time {
	local := t.In(location)

	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, location)
}
