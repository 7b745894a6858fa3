package logsink

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Style tags a record the way the demonstrations highlight it.
type Style int

const (
	// Plain is an unstyled value or message.
	Plain Style = iota
	// Begin marks the start of a batch.
	Begin
	// Step marks the completion of a batch.
	Step
	// Results marks the combined result of a strategy.
	Results
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Begin:
		return "begin"
	case Step:
		return "step"
	case Results:
		return "results"
	default:
		return "unknown"
	}
}

// Record is one line of demonstration output.
type Record struct {
	Time    time.Time
	Style   Style
	Message string
}

// Sink receives demonstration output. Implementations must be safe for
// concurrent use; concurrent batches emit from different goroutines.
type Sink interface {
	Emit(rec Record)
}

// SinkFunc is a function type that implements the Sink interface.
type SinkFunc func(rec Record)

// Emit implements the Sink interface for SinkFunc.
func (f SinkFunc) Emit(rec Record) {
	f(rec)
}

// Discard drops every record.
var Discard Sink = SinkFunc(func(Record) {})

// Value emits v as a plain record.
func Value(s Sink, v any) {
	s.Emit(Record{Time: time.Now(), Style: Plain, Message: fmt.Sprint(v)})
}

// Styled emits a formatted message with the given style.
func Styled(s Sink, style Style, format string, args ...any) {
	s.Emit(Record{Time: time.Now(), Style: style, Message: fmt.Sprintf(format, args...)})
}

const ansiReset = "\x1b[0m"

var ansiStyles = map[Style]string{
	Begin:   "\x1b[38;5;33m",
	Step:    "\x1b[93m",
	Results: "\x1b[1;32m",
}

// Writer renders records as lines of text, optionally colored with ANSI
// escape sequences.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewWriter creates a Writer sink on top of w.
func NewWriter(w io.Writer, color bool) *Writer {
	return &Writer{w: w, color: color}
}

// Emit writes rec followed by a newline. Write errors are ignored; the
// console is the only consumer and has nowhere to report them.
func (w *Writer) Emit(rec Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if code, ok := ansiStyles[rec.Style]; ok && w.color {
		fmt.Fprintf(w.w, "%s%s%s\n", code, rec.Message, ansiReset)
		return
	}
	fmt.Fprintln(w.w, rec.Message)
}

// Slog forwards records to a structured logger at Info level.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a sink logging through logger. A nil logger uses slog.Default().
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

// Emit implements Sink.
func (s *Slog) Emit(rec Record) {
	s.logger.Info(rec.Message, slog.String("style", rec.Style.String()))
}

// Tee fans every record out to all sinks in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(rec Record) {
		for _, s := range sinks {
			s.Emit(rec)
		}
	})
}
