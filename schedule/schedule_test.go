package schedule_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexandre-normand/slackstatus/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferLogger struct {
	b     strings.Builder
	debug bool
}

func (l *bufferLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(&l.b, format, v...)
}

func (l *bufferLogger) Debugf(format string, v ...interface{}) {
	if l.debug {
		l.Printf(format, v...)
	}
}

func TestDefinitionString(t *testing.T) {
	definitionToString := []struct {
		d              schedule.Definition
		friendlyString string
	}{
		{schedule.Definition{Interval: 1, Weekday: time.Monday.String(), AtTime: "10:00"}, "Every Monday at 10:00"},
		{schedule.Definition{Interval: 1, Weekday: time.Sunday.String(), AtTime: "04:00"}, "Every Sunday at 04:00"},
		{schedule.Definition{Interval: 1, Unit: schedule.Seconds}, "Every second"},
		{schedule.Definition{Interval: 2, Unit: schedule.Seconds}, "Every 2 seconds"},
		{schedule.Definition{Interval: 1, Unit: schedule.Minutes}, "Every minute"},
		{schedule.Definition{Interval: 2, Unit: schedule.Hours}, "Every 2 hours"},
		{schedule.Definition{Interval: 1, Unit: schedule.Days}, "Every day"},
		{schedule.Definition{Interval: 2, Unit: schedule.Days, AtTime: "10:00"}, "Every 2 days at 10:00"},
		{schedule.Daily("00:00"), "Every day at 00:00"},
		{schedule.Definition{Cron: "0 0 * * *"}, "Cron [0 0 * * *]"},
	}

	for _, testCase := range definitionToString {
		t.Run(testCase.friendlyString, func(t *testing.T) {
			friendlyStr := testCase.d.String()
			assert.Equalf(t, testCase.friendlyString, friendlyStr, "Expected different string value for definition: %v", testCase.d)
		})
	}
}

func TestNewJobFromDefinition(t *testing.T) {
	definitionToResult := []struct {
		d            schedule.Definition
		valid        bool
		errorMessage string
	}{
		{schedule.Daily("00:00"), true, ""},
		{schedule.Daily(""), true, ""},
		{schedule.Definition{Interval: 2, Unit: schedule.Days, AtTime: "10:30"}, true, ""},
		{schedule.Definition{Interval: 1, Weekday: time.Monday.String(), AtTime: "10:00"}, true, ""},
		{schedule.Definition{Weekday: time.Friday.String()}, true, ""},
		{schedule.Definition{Interval: 1, Unit: schedule.Hours}, true, ""},
		{schedule.Definition{Interval: 30, Unit: schedule.Minutes}, true, ""},
		{schedule.Definition{Interval: 10, Unit: schedule.Seconds}, true, ""},
		{schedule.Definition{Cron: "0 0 * * *"}, true, ""},
		{schedule.Definition{Cron: "not a cron"}, false, "failed to schedule job"},
		{schedule.Definition{Interval: 1, Weekday: "Caturday"}, false, "invalid weekday [Caturday]"},
		{schedule.Definition{Interval: 1, Unit: schedule.Weeks}, false, "a weekday is required"},
		{schedule.Definition{Interval: 0, Unit: schedule.Days}, false, "interval must be greater than 0"},
		{schedule.Definition{Interval: 1, Unit: "fortnights"}, false, "invalid unit [fortnights]"},
		{schedule.Definition{Interval: 1, Unit: schedule.Days, AtTime: "25:00"}, false, "invalid at time [25:00]"},
		{schedule.Definition{Interval: 1, Unit: schedule.Hours, AtTime: "10:00"}, false, "isn't supported for unit [hours]"},
	}

	for _, testCase := range definitionToResult {
		t.Run(fmt.Sprintf("%#v", testCase.d), func(t *testing.T) {
			s, err := schedule.NewScheduler(time.UTC, &bufferLogger{})
			require.Nil(t, err)
			defer s.Shutdown()

			j, err := schedule.NewJob(s, testCase.d, "test", func() {})

			if testCase.valid {
				assert.Nil(t, err)
				if assert.NotNil(t, j) {
					assert.Equal(t, "test", j.Name())
				}
			} else if assert.NotNil(t, err) {
				assert.Contains(t, err.Error(), testCase.errorMessage)
			}
		})
	}
}

func TestJobRuns(t *testing.T) {
	s, err := schedule.NewScheduler(time.UTC, &bufferLogger{})
	require.Nil(t, err)

	runs := make(chan struct{}, 10)
	_, err = schedule.NewJob(s, schedule.Definition{Interval: 1, Unit: schedule.Seconds}, "tick", func() { runs <- struct{}{} })
	require.Nil(t, err)

	s.Start()
	defer s.Shutdown()

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("job didn't run")
	}
}

func TestGocronLogger(t *testing.T) {
	l := bufferLogger{}
	gl := schedule.NewGocronLogger(&l)

	gl.Debug("debug", "job", "tick")
	gl.Info("info", "job", "tick")
	gl.Warn("warn", "job", "tick")
	gl.Error("error", "job", "tick", "dangling")

	assert.Equal(t, "scheduler warning: warn [job=tick]\nscheduler error: error [job=tick] [dangling]\n", l.b.String())

	debugLogger := bufferLogger{debug: true}
	gl = schedule.NewGocronLogger(&debugLogger)
	gl.Info("info", "job", "tick")

	assert.Equal(t, "scheduler: info [job=tick]\n", debugLogger.b.String())
}
