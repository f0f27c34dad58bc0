// Package report carries user-facing progress lines and the diagnostic
// logger of mp3-autotag.
//
// Components never print directly. They send an Event to a Func and the
// command decides how to render it:
//
//	console := report.NewConsole(os.Stdout, verbose)
//	tagger := tagging.NewManager(settings, fs, ..., console.Report)
package report

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Event is one progress line.
type Event struct {
	Message string
	Level   Level
}

// Func receives progress events. A nil Func drops them.
type Func func(Event)

// Send delivers an event if f is not nil.
func (f Func) Send(level Level, message string) {
	if f != nil {
		f(Event{Message: message, Level: level})
	}
}

// Recorder collects events in memory.
type Recorder struct {
	Events []Event
}

// Report appends the event.
func (r *Recorder) Report(event Event) {
	r.Events = append(r.Events, event)
}

// Messages returns the messages of all events at level, in order.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
