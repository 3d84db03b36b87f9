package slackstatus

import (
	"context"
)

// StatusSetter is implemented by any value that has the SetUserCustomStatusContext method.
// The main purpose is a slight decoupling of the slack.Client in order to test status
// updates without a slack workspace.
//
// slack.Client implements this interface
type StatusSetter interface {
	// SetUserCustomStatusContext sets the status of the user owning the token. See
	// https://pkg.go.dev/github.com/slack-go/slack#Client.SetUserCustomStatusContext for more details
	SetUserCustomStatusContext(ctx context.Context, statusText, statusEmoji string, statusExpiration int64) error
}
