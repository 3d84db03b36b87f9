package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	defaultMaxAttempts = 3
	defaultMaxLength   = 80
	defaultTimeout     = 5 * time.Second
	maxResponseBytes   = 1 << 20
)

// Source describes a quote api. TextPath and AuthorPath are dot-separated selectors
// into the decoded json response where numeric segments index arrays (i.e. "0.q")
type Source struct {
	Name       string
	URL        string
	TextPath   string
	AuthorPath string
}

// DefaultSources are used when no sources are given to NewFetcher
var DefaultSources = []Source{
	{
		Name:       "quotable",
		URL:        "https://api.quotable.io/random?tags=technology,science,success,leadership,innovation,business,inspiration",
		TextPath:   "content",
		AuthorPath: "author",
	},
	{
		Name:       "zenquotes",
		URL:        "https://zenquotes.io/api/random",
		TextPath:   "0.q",
		AuthorPath: "0.a",
	},
}

// HTTPClient represents the functionality we need from an *http.Client
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger is implemented by slackstatus.SLogger
type Logger interface {
	Printf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// Fetcher fetches random quotes from a set of sources
type Fetcher struct {
	sources     []Source
	client      HTTPClient
	random      *rand.Rand
	maxAttempts int
	maxLength   int
	timeout     time.Duration
	logger      Logger
}

// Option defines an option for a Fetcher
type Option func(f *Fetcher)

// OptionHTTPClient sets the http client used to call the quote sources
func OptionHTTPClient(c HTTPClient) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// OptionRandom sets the random generator used to pick sources and fallback quotes
func OptionRandom(r *rand.Rand) Option {
	return func(f *Fetcher) {
		f.random = r
	}
}

// OptionMaxAttempts sets the number of source calls attempted before using a fallback quote
func OptionMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxAttempts = n
		}
	}
}

// OptionMaxLength sets the maximum length of a quote's text once formatted with an author separator
func OptionMaxLength(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxLength = n
		}
	}
}

// OptionTimeout sets the timeout of a single source call
func OptionTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// OptionLogger sets the logger
func OptionLogger(l Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a new Fetcher. If sources is empty, the DefaultSources are used
func NewFetcher(sources []Source, options ...Option) (f *Fetcher) {
	f = new(Fetcher)
	f.sources = sources
	if len(f.sources) == 0 {
		f.sources = DefaultSources
	}

	f.client = http.DefaultClient
	f.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	f.maxAttempts = defaultMaxAttempts
	f.maxLength = defaultMaxLength
	f.timeout = defaultTimeout
	f.logger = discardLogger{log.New(ioutil.Discard, "", 0)}

	for _, opt := range options {
		opt(f)
	}

	return f
}

// Random returns a random quote. Sources are tried up to the maximum number of attempts,
// skipping quotes that aren't appropriate. A source error ends the attempts right away and
// a random fallback quote is returned instead
func (f *Fetcher) Random(ctx context.Context) (q Quote) {
	for i := 0; i < f.maxAttempts; i++ {
		s := f.sources[f.random.Intn(len(f.sources))]

		q, err := f.fetch(ctx, s)
		if err != nil {
			f.logger.Printf("Error fetching quote from [%s]: %v\n", s.Name, err)
			break
		}

		if !IsAppropriate(q.Text, f.maxLength) {
			f.logger.Debugf("Skipping quote from [%s]: [%s]\n", s.Name, q.Text)
			continue
		}

		return q
	}

	q = fallbackQuotes[f.random.Intn(len(fallbackQuotes))]
	f.logger.Debugf("Using fallback quote [%s]\n", q)

	return q
}

// fetch calls a source and extracts a quote from its json response
func (f *Fetcher) fetch(ctx context.Context, s Source) (q Quote, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return q, errors.Wrapf(err, "invalid source url [%s]", s.URL)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return q, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return q, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return q, fmt.Errorf("unexpected status [%s]", resp.Status)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return q, errors.Wrap(err, "failed to decode response")
	}

	q.Text, err = extract(doc, s.TextPath)
	if err != nil {
		return q, errors.Wrap(err, "failed to extract quote text")
	}

	if s.AuthorPath != "" {
		q.Author, err = extract(doc, s.AuthorPath)
		if err != nil {
			return q, errors.Wrap(err, "failed to extract quote author")
		}
	}

	q.Category = Categorize(q.Text)

	return q, nil
}

// extract walks a decoded json document following a dot-separated path and returns
// the trimmed string value found at the end of it
func extract(doc interface{}, path string) (value string, err error) {
	node := doc
	for _, segment := range strings.Split(path, ".") {
		switch n := node.(type) {
		case map[string]interface{}:
			child, ok := n[segment]
			if !ok {
				return "", fmt.Errorf("missing key [%s] in path [%s]", segment, path)
			}
			node = child
		case []interface{}:
			i, err := cast.ToIntE(segment)
			if err != nil || i < 0 || i >= len(n) {
				return "", fmt.Errorf("invalid index [%s] in path [%s]", segment, path)
			}
			node = n[i]
		default:
			return "", fmt.Errorf("can't select [%s] in path [%s]", segment, path)
		}
	}

	value, err = cast.ToStringE(node)
	if err != nil {
		return "", errors.Wrapf(err, "value at path [%s] isn't a string", path)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty value at path [%s]", path)
	}

	return value, nil
}

type discardLogger struct {
	*log.Logger
}

func (d discardLogger) Debugf(format string, v ...interface{}) {}
