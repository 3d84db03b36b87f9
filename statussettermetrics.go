package slackstatus

import (
	"context"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// StatusSetterWithTelemetry implements StatusSetter interface with all methods wrapped
// with open telemetry metrics
type StatusSetterWithTelemetry struct {
	base                     StatusSetter
	attributes               metric.MeasurementOption
	methodCounters           map[string]metric.Int64Counter
	errCounters              map[string]metric.Int64Counter
	methodTimeValueRecorders map[string]metric.Int64Histogram
}

// NewStatusSetterWithTelemetry returns an instance of the StatusSetter decorated with open telemetry timing and count metrics
func NewStatusSetterWithTelemetry(base StatusSetter, name string, meter metric.Meter) (s StatusSetterWithTelemetry, err error) {
	s.base = base
	s.attributes = metric.WithAttributes(attribute.String("name", name))

	if s.methodCounters, err = newStatusSetterMethodCounters("Calls", meter); err != nil {
		return s, err
	}

	if s.errCounters, err = newStatusSetterMethodCounters("Errors", meter); err != nil {
		return s, err
	}

	if s.methodTimeValueRecorders, err = newStatusSetterMethodTimeValueRecorders(meter); err != nil {
		return s, err
	}

	return s, nil
}

func newStatusSetterMethodTimeValueRecorders(meter metric.Meter) (recorders map[string]metric.Int64Histogram, err error) {
	recorders = make(map[string]metric.Int64Histogram)

	nSetUserCustomStatusContextValRecorder := []rune("StatusSetter_SetUserCustomStatusContext_ProcessingTimeMillis")
	nSetUserCustomStatusContextValRecorder[0] = unicode.ToLower(nSetUserCustomStatusContextValRecorder[0])
	mSetUserCustomStatusContext, err := meter.Int64Histogram(string(nSetUserCustomStatusContextValRecorder), metric.WithUnit("ms"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create histogram [%s]", string(nSetUserCustomStatusContextValRecorder))
	}
	recorders["SetUserCustomStatusContext"] = mSetUserCustomStatusContext

	return recorders, nil
}

func newStatusSetterMethodCounters(suffix string, meter metric.Meter) (counters map[string]metric.Int64Counter, err error) {
	counters = make(map[string]metric.Int64Counter)

	nSetUserCustomStatusContextCounter := []rune("StatusSetter_SetUserCustomStatusContext_" + suffix)
	nSetUserCustomStatusContextCounter[0] = unicode.ToLower(nSetUserCustomStatusContextCounter[0])
	cSetUserCustomStatusContext, err := meter.Int64Counter(string(nSetUserCustomStatusContextCounter))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create counter [%s]", string(nSetUserCustomStatusContextCounter))
	}
	counters["SetUserCustomStatusContext"] = cSetUserCustomStatusContext

	return counters, nil
}

// SetUserCustomStatusContext implements StatusSetter
func (_d StatusSetterWithTelemetry) SetUserCustomStatusContext(ctx context.Context, statusText, statusEmoji string, statusExpiration int64) (err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["SetUserCustomStatusContext"]
			errCounter.Add(ctx, 1, _d.attributes)
		}

		methodCounter := _d.methodCounters["SetUserCustomStatusContext"]
		methodCounter.Add(ctx, 1, _d.attributes)

		methodTimeMeasure := _d.methodTimeValueRecorders["SetUserCustomStatusContext"]
		methodTimeMeasure.Record(ctx, time.Since(_since).Milliseconds(), _d.attributes)
	}()
	return _d.base.SetUserCustomStatusContext(ctx, statusText, statusEmoji, statusExpiration)
}
