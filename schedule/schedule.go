// Package schedule defines the schedule of recurring status updates and maps it to gocron jobs
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexandre-normand/slackstatus/config"
	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
)

// Definition represents when a job runs
type Definition struct {
	// Internal value (every 1 minute would be expressed with an interval of 1). Must be set explicitly or implicitly (a weekday value implicitly sets the interval to 1)
	Interval uint64

	// Must be set explicitly or implicitly ("weeks" is implicitly set when "Weekday" is set). Valid time units are: "weeks", "hours", "days", "minutes", "seconds"
	Unit string

	// Optional day of the week. If set, unit is ignored and implicitly considered to be "weeks"
	Weekday string

	// Optional "at time" value (i.e. "10:30"). Only valid for days and weeks. Defaults to "00:00"
	AtTime string

	// Optional cron expression (i.e. "0 0 * * *"). If set, all other fields are ignored
	Cron string
}

// Unit values
const (
	Weeks   = "weeks"
	Hours   = "hours"
	Days    = "days"
	Minutes = "minutes"
	Seconds = "seconds"
)

const defaultAtTime = "00:00"

var weekdayToNumeral = map[string]time.Weekday{
	time.Monday.String():    time.Monday,
	time.Tuesday.String():   time.Tuesday,
	time.Wednesday.String(): time.Wednesday,
	time.Thursday.String():  time.Thursday,
	time.Friday.String():    time.Friday,
	time.Saturday.String():  time.Saturday,
	time.Sunday.String():    time.Sunday,
}

var unitDurations = map[string]time.Duration{
	Hours:   time.Hour,
	Minutes: time.Minute,
	Seconds: time.Second,
}

// Daily returns a Definition for a job running every day at the given time
func Daily(atTime string) Definition {
	return Definition{Interval: 1, Unit: Days, AtTime: atTime}
}

// Returns a human-friendly string for the Definition
func (d Definition) String() string {
	var b strings.Builder

	if d.Cron != "" {
		fmt.Fprintf(&b, "Cron [%s]", d.Cron)
		return b.String()
	}

	fmt.Fprintf(&b, "Every ")

	if d.Weekday != "" {
		fmt.Fprintf(&b, "%s", d.Weekday)
	} else if d.Interval == 1 {
		fmt.Fprintf(&b, "%s", strings.TrimSuffix(d.Unit, "s"))
	} else {
		fmt.Fprintf(&b, "%d %s", d.Interval, d.Unit)
	}

	if d.AtTime != "" {
		fmt.Fprintf(&b, " at %s", d.AtTime)
	}

	return b.String()
}

// jobDefinition maps the Definition to a gocron.JobDefinition
func (d Definition) jobDefinition() (jd gocron.JobDefinition, err error) {
	if d.Cron != "" {
		return gocron.CronJob(d.Cron, false), nil
	}

	if d.Weekday != "" {
		weekday, ok := weekdayToNumeral[d.Weekday]
		if !ok {
			return nil, fmt.Errorf("invalid weekday [%s]", d.Weekday)
		}

		atTimes, err := d.atTimes()
		if err != nil {
			return nil, err
		}

		interval := d.Interval
		if interval == 0 {
			interval = 1
		}

		return gocron.WeeklyJob(uint(interval), gocron.NewWeekdays(weekday), atTimes), nil
	}

	if d.Interval == 0 {
		return nil, fmt.Errorf("interval must be greater than 0")
	}

	switch d.Unit {
	case Days:
		atTimes, err := d.atTimes()
		if err != nil {
			return nil, err
		}

		return gocron.DailyJob(uint(d.Interval), atTimes), nil
	case Weeks:
		return nil, fmt.Errorf("a weekday is required for unit [%s]", Weeks)
	case Hours, Minutes, Seconds:
		if d.AtTime != "" {
			return nil, fmt.Errorf("at time [%s] isn't supported for unit [%s]", d.AtTime, d.Unit)
		}

		return gocron.DurationJob(time.Duration(d.Interval) * unitDurations[d.Unit]), nil
	default:
		return nil, fmt.Errorf("invalid unit [%s]", d.Unit)
	}
}

func (d Definition) atTimes() (atTimes gocron.AtTimes, err error) {
	atTime := d.AtTime
	if atTime == "" {
		atTime = defaultAtTime
	}

	hour, minute, err := config.ParseAtTime(atTime)
	if err != nil {
		return nil, err
	}

	return gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0)), nil
}

// NewScheduler creates a gocron scheduler running jobs in the given location and logging with logger
func NewScheduler(location *time.Location, logger Logger) (s gocron.Scheduler, err error) {
	s, err = gocron.NewScheduler(gocron.WithLocation(location), gocron.WithLogger(NewGocronLogger(logger)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	return s, nil
}

// NewJob registers the task with the scheduler to run on the Definition's schedule. Runs of a job never
// overlap: a run due while the previous one is still going is skipped
func NewJob(s gocron.Scheduler, d Definition, name string, task func()) (j gocron.Job, err error) {
	jd, err := d.jobDefinition()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid schedule [%s]", d)
	}

	j, err = s.NewJob(jd, gocron.NewTask(task), gocron.WithName(name), gocron.WithSingletonMode(gocron.LimitModeReschedule))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to schedule job [%s] with schedule [%s]", name, d)
	}

	return j, nil
}
