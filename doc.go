/*
Package slackstatus sets the custom status of a slack user.

A StatusUpdater is created with the user's token and a StatusSource. Each call to UpdateStatus
composes a Status (text, emoji and expiration) and sets it with a single users.profile.set call.
Nothing is retried or cached: an updater is meant to be run once per invocation by an external
scheduler or on a schedule by the slackstatus command.

The default StatusSource is a QuoteSource which sets a random quote fetched from public quote
apis along with an emoji matching the quote's category. The status expires at the next midnight.

Failures are reported as one of:
 - *ConfigurationError: the updater can't be created (i.e. missing token)
 - *AuthError: slack rejected the token
 - *NetworkError: the call failed at the transport level (including timeouts)
 - *ApiError: any other failure reported by slack

ExitCode maps those to a process exit code.

Example code:

	package main

	import (
		"context"
		"os"

		"github.com/alexandre-normand/slackstatus"
	)

	func main() {
		updater, err := slackstatus.New(os.Getenv("SLACK_TOKEN"),
			slackstatus.OptionStatusSource(slackstatus.StaticSource{Text: "Focusing", Emoji: ":headphones:"}))
		if err == nil {
			err = updater.UpdateStatus(context.Background())
		}

		os.Exit(slackstatus.ExitCode(err))
	}
*/
package slackstatus
