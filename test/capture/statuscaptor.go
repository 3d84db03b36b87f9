// Package capture provides test doubles recording the calls made to them
package capture

import (
	"context"
)

// StatusUpdate holds the arguments of a captured status update
type StatusUpdate struct {
	Text       string
	Emoji      string
	Expiration int64
}

// StatusCaptor captures status updates recorded by invocations of SetUserCustomStatusContext
type StatusCaptor struct {
	StatusUpdates []StatusUpdate

	// Err is returned by SetUserCustomStatusContext when set. The update is captured regardless
	Err error
}

// NewStatusSetter returns a new StatusCaptor with an initialized array of StatusUpdates
func NewStatusSetter() (sc *StatusCaptor) {
	sc = new(StatusCaptor)
	sc.StatusUpdates = make([]StatusUpdate, 0)

	return sc
}

// SetUserCustomStatusContext tracks a status update for post-execution validation
func (sc *StatusCaptor) SetUserCustomStatusContext(ctx context.Context, statusText, statusEmoji string, statusExpiration int64) (err error) {
	sc.StatusUpdates = append(sc.StatusUpdates, StatusUpdate{Text: statusText, Emoji: statusEmoji, Expiration: statusExpiration})

	return sc.Err
}
