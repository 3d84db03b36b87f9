package slackstatus

import (
	"net/http"
	"strconv"
)

// retryAfterTransport sets a zero Retry-After on rate limited responses missing a valid one so
// the slack client reports them as a *slack.RateLimitedError rather than a header parsing error
type retryAfterTransport struct {
	base http.RoundTripper
}

func (t retryAfterTransport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	resp, err = t.base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusTooManyRequests {
		return resp, err
	}

	if _, perr := strconv.ParseInt(resp.Header.Get("Retry-After"), 10, 64); perr != nil {
		if resp.Header == nil {
			resp.Header = make(http.Header)
		}
		resp.Header.Set("Retry-After", "0")
	}

	return resp, nil
}

// withRetryAfterDefault returns a copy of c (http.DefaultClient if nil) with its transport
// wrapped by a retryAfterTransport
func withRetryAfterDefault(c *http.Client) *http.Client {
	if c == nil {
		c = http.DefaultClient
	}

	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	wrapped := *c
	wrapped.Transport = retryAfterTransport{base: base}

	return &wrapped
}
