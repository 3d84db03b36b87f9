package slackstatus

import (
	"context"
	"testing"
	"time"

	"github.com/alexandre-normand/slackstatus/quote"
	"github.com/stretchr/testify/assert"
)

type fixedFetcher struct {
	q     quote.Quote
	calls int
}

func (f *fixedFetcher) Random(ctx context.Context) quote.Quote {
	f.calls++
	return f.q
}

type categoryEchoMatcher struct{}

func (m categoryEchoMatcher) Emoji(category string) string {
	return ":" + category + ":"
}

func TestQuoteSourceStatus(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	assert.Nil(t, err)

	fetcher := fixedFetcher{q: quote.Quote{Text: "Code is poetry.", Author: "WordPress", Category: quote.Tech}}
	qs := NewQuoteSource(&fetcher, categoryEchoMatcher{}, loc)
	qs.now = func() time.Time { return time.Date(2024, time.March, 5, 15, 30, 0, 0, loc) }

	s, err := qs.Status(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "Code is poetry. - WordPress", s.Text)
	assert.Equal(t, ":tech:", s.Emoji)
	assert.True(t, time.Date(2024, time.March, 6, 0, 0, 0, 0, loc).Equal(s.Expiration), "unexpected expiration %s", s.Expiration)
}

func TestQuoteSourceFetchesOnEveryCall(t *testing.T) {
	fetcher := fixedFetcher{q: quote.Quote{Text: "Think different.", Author: "Apple", Category: quote.Innovation}}
	qs := NewQuoteSource(&fetcher, categoryEchoMatcher{}, nil)

	qs.Status(context.Background())
	qs.Status(context.Background())

	assert.Equal(t, 2, fetcher.calls)
	assert.Equal(t, time.Local, qs.location)
}

func TestNextMidnight(t *testing.T) {
	utc := time.UTC
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name     string
		now      time.Time
		location *time.Location
		expected time.Time
	}{
		{"afternoon", time.Date(2024, time.March, 5, 15, 30, 0, 0, utc), utc, time.Date(2024, time.March, 6, 0, 0, 0, 0, utc)},
		{"exactly midnight", time.Date(2024, time.March, 5, 0, 0, 0, 0, utc), utc, time.Date(2024, time.March, 6, 0, 0, 0, 0, utc)},
		{"end of month", time.Date(2024, time.February, 29, 23, 59, 59, 0, utc), utc, time.Date(2024, time.March, 1, 0, 0, 0, 0, utc)},
		{"end of year", time.Date(2023, time.December, 31, 12, 0, 0, 0, utc), utc, time.Date(2024, time.January, 1, 0, 0, 0, 0, utc)},
		{"other location", time.Date(2024, time.March, 5, 16, 0, 0, 0, utc), tokyo, time.Date(2024, time.March, 7, 0, 0, 0, 0, tokyo)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.expected.Equal(NextMidnight(tc.now, tc.location)), "expected %s but got %s", tc.expected, NextMidnight(tc.now, tc.location))
		})
	}
}

func TestStaticSource(t *testing.T) {
	ss := StaticSource{Text: "Heads down", Emoji: ":headphones:"}

	s, err := ss.Status(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, Status{Text: "Heads down", Emoji: ":headphones:"}, s)
}
