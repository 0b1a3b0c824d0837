package security

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Logger is the sink SecurityPolicy.Log writes structured events to.
type Logger interface {
	Log(event string, fields map[string]any)
}

// NopLogger discards every event.
type NopLogger struct{}

func (NopLogger) Log(string, map[string]any) {}

// ZerologLogger adapts a zerolog.Logger into a Logger, so a caller can
// wire policy events into their own logging pipeline instead of
// fmt.Println. The zero value logs at zerolog.Disabled.
type ZerologLogger struct {
	zerolog.Logger
}

// NewZerologLogger returns a ZerologLogger writing at info level.
func NewZerologLogger(l zerolog.Logger) ZerologLogger {
	return ZerologLogger{Logger: l}
}

func (zl ZerologLogger) Log(event string, fields map[string]any) {
	evt := zl.Logger.Info().Str("event", event)
	for _, k := range sortedFieldKeys(fields) {
		evt = evt.Interface(k, fields[k])
	}
	evt.Msg(event)
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
