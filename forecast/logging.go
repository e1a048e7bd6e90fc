package forecast

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Logger is the structured-logging seam Runner uses for batch-level run
// events. A nil Runner.Logger falls back to nopLogger, so the simulation
// core (rng, statkit, etasparams, catalog, etassim) never needs to know
// logging exists.
type Logger interface {
	Info(msg string, fields ...interface{})
}

// nopLogger discards every call.
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface. Fields
// are passed as a flat (key, value, key, value, ...) varargs list and
// attached to the event individually.
type ZerologLogger struct {
	Z zerolog.Logger
}

// NewZerologLogger wraps z as a forecast Logger.
func NewZerologLogger(z zerolog.Logger) ZerologLogger {
	return ZerologLogger{Z: z}
}

// Info logs an info-level event with the given key/value field pairs.
func (l ZerologLogger) Info(msg string, fields ...interface{}) {
	event := l.Z.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

func addFields(event *zerolog.Event, fields ...interface{}) {
	if len(fields)%2 != 0 {
		event.Str("logError", "odd number of fields")
		return
	}
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event.Str("logError", fmt.Sprintf("field key at index %d is not a string", i))
			continue
		}
		event.Interface(key, fields[i+1])
	}
}
