// Command slackstatus sets the slack status of the user owning SLACK_TOKEN. The update
// command sets it once and exits (for use with an external scheduler like cron) while the run
// command keeps running and updates it on a daily schedule.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexandre-normand/slackstatus"
	"github.com/alexandre-normand/slackstatus/config"
	"github.com/alexandre-normand/slackstatus/emoji"
	"github.com/alexandre-normand/slackstatus/quote"
	"github.com/alexandre-normand/slackstatus/schedule"
	"github.com/spf13/viper"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	name          = "slackstatus"
	updateJobName = "updateStatus"
)

type cli struct {
	app        *kingpin.Application
	configPath *string
	debug      *bool
	update     *kingpin.CmdClause
	dryRun     *bool
	run        *kingpin.CmdClause
}

func newCLI() (c *cli) {
	c = new(cli)
	c.app = kingpin.New(name, "Sets your slack status to a quote of the day")
	c.app.Version(slackstatus.VERSION)
	c.configPath = c.app.Flag("config", "Path to an optional configuration file (yaml, json or toml)").Short('c').String()
	c.debug = c.app.Flag("debug", "Enable debug logging").Bool()

	c.update = c.app.Command("update", "Update the status once and exit").Default()
	c.dryRun = c.update.Flag("dry-run", "Print the status instead of setting it").Bool()

	c.run = c.app.Command("run", "Update the status on a schedule until interrupted")

	return c
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := newCLI().execute(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		stop()
		os.Exit(slackstatus.ExitCode(err))
	}
}

func (c *cli) execute(ctx context.Context, args []string, out io.Writer) (err error) {
	command, err := c.app.Parse(args)
	if err != nil {
		return &slackstatus.ConfigurationError{Key: "args", Message: err.Error()}
	}

	v, err := config.Load(*c.configPath)
	if err != nil {
		return &slackstatus.ConfigurationError{Key: "config", Message: err.Error()}
	}

	if *c.debug {
		v.Set(config.DebugKey, true)
	}

	logger := slackstatus.NewSLogger(log.New(out, name+": ", log.Lshortfile|log.LstdFlags), v.GetBool(config.DebugKey))

	updater, err := newUpdater(v, logger)
	if err != nil {
		return err
	}

	switch command {
	case c.update.FullCommand():
		if *c.dryRun {
			return preview(ctx, updater, out)
		}

		return updateOnce(ctx, v, updater)
	case c.run.FullCommand():
		return runScheduled(ctx, v, updater, logger)
	}

	return nil
}

// newUpdater creates the StatusUpdater from the configuration
func newUpdater(v *viper.Viper, logger slackstatus.SLogger) (u *slackstatus.StatusUpdater, err error) {
	token := v.GetString(config.TokenKey)

	timeLoc, err := config.GetTimeLocation(v)
	if err != nil {
		return nil, &slackstatus.ConfigurationError{Key: config.TimeLocationKey, Message: err.Error()}
	}

	source, err := newStatusSource(v, timeLoc, logger)
	if err != nil {
		return nil, err
	}

	return slackstatus.New(token,
		slackstatus.OptionName(name),
		slackstatus.OptionStatusSource(source),
		slackstatus.OptionAPIURL(v.GetString(config.APIURLKey)),
		slackstatus.OptionLogger(logger),
		slackstatus.OptionDebug(v.GetBool(config.DebugKey)))
}

// newStatusSource returns a static source if a status text is configured or a quote source otherwise
func newStatusSource(v *viper.Viper, timeLoc *time.Location, logger slackstatus.SLogger) (source slackstatus.StatusSource, err error) {
	if text := v.GetString(config.StatusTextKey); text != "" {
		return slackstatus.StaticSource{Text: text, Emoji: v.GetString(config.StatusEmojiKey)}, nil
	}

	configured, err := config.GetQuoteSources(v)
	if err != nil {
		return nil, &slackstatus.ConfigurationError{Key: config.QuotesSourcesKey, Message: err.Error()}
	}

	sources := make([]quote.Source, 0, len(configured))
	for _, s := range configured {
		sources = append(sources, quote.Source{Name: s.Name, URL: s.URL, TextPath: s.TextPath, AuthorPath: s.AuthorPath})
	}

	fetcher := quote.NewFetcher(sources,
		quote.OptionMaxAttempts(v.GetInt(config.QuotesMaxAttemptsKey)),
		quote.OptionMaxLength(v.GetInt(config.QuotesMaxLengthKey)),
		quote.OptionTimeout(v.GetDuration(config.QuotesTimeoutKey)),
		quote.OptionLogger(logger))

	return slackstatus.NewQuoteSource(fetcher, emoji.NewMatcher(nil), timeLoc), nil
}

func preview(ctx context.Context, updater *slackstatus.StatusUpdater, out io.Writer) (err error) {
	s, err := updater.Preview(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", s.Emoji, s.Text)
	if !s.Expiration.IsZero() {
		fmt.Fprintf(out, "expires at %s\n", s.Expiration.Format(time.RFC3339))
	}

	return nil
}

// updateOnce sets the status with the configured request timeout. A timeout of 0 or less disables it
func updateOnce(ctx context.Context, v *viper.Viper, updater *slackstatus.StatusUpdater) (err error) {
	if timeout := v.GetDuration(config.RequestTimeoutKey); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return updater.UpdateStatus(ctx)
}

// runScheduled updates the status on the configured schedule until ctx is done. Failed updates
// are logged and retried on the next scheduled run
func runScheduled(ctx context.Context, v *viper.Viper, updater *slackstatus.StatusUpdater, logger slackstatus.SLogger) (err error) {
	timeLoc, err := config.GetTimeLocation(v)
	if err != nil {
		return &slackstatus.ConfigurationError{Key: config.TimeLocationKey, Message: err.Error()}
	}

	definition := schedule.Daily(v.GetString(config.ScheduleAtTimeKey))
	if cron := v.GetString(config.ScheduleCronKey); cron != "" {
		definition = schedule.Definition{Cron: cron}
	}

	s, err := schedule.NewScheduler(timeLoc, logger)
	if err != nil {
		return err
	}

	j, err := schedule.NewJob(s, definition, updateJobName, func() {
		if err := updateOnce(ctx, v, updater); err != nil {
			logger.Printf("Scheduled status update failed: %v\n", err)
		}
	})
	if err != nil {
		_ = s.Shutdown()
		return &slackstatus.ConfigurationError{Key: config.ScheduleAtTimeKey, Message: err.Error()}
	}

	s.Start()

	nextRun, _ := j.NextRun()
	logger.Printf("Scheduled status updates [%s], next run at [%s]\n", definition, nextRun)

	<-ctx.Done()
	logger.Debugf("Shutting down scheduler\n")

	return s.Shutdown()
}
