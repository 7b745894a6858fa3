package logsink

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/vnykmshr/asyncflow/internal/testutil"
)

func TestStyleString(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{Plain, "plain"},
		{Begin, "begin"},
		{Step, "step"},
		{Results, "results"},
		{Style(42), "unknown"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.style.String(), tt.want)
	}
}

func TestWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	Value(w, 7)
	Styled(w, Begin, "Beginning example %d-%s...", 1, "a")

	testutil.AssertEqual(t, buf.String(), "7\nBeginning example 1-a...\n")
}

func TestWriterColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	Value(w, 3)
	Styled(w, Results, "Completed with result: %s", "1.000")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	testutil.AssertEqual(t, lines[0], "3")
	testutil.AssertEqual(t, lines[1], ansiStyles[Results]+"Completed with result: 1.000"+ansiReset)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	Styled(rec, Begin, "begin")
	Value(rec, 1)
	Styled(rec, Step, "step")

	testutil.AssertEqual(t, rec.Len(), 3)
	testutil.AssertEqual(t, strings.Join(rec.Messages(), ","), "begin,1,step")
	testutil.AssertEqual(t, strings.Join(rec.Styled(Plain), ","), "1")
	testutil.AssertEqual(t, rec.Records()[0].Time.IsZero(), false)

	rec.Reset()
	testutil.AssertEqual(t, rec.Len(), 0)
}

func TestRecorderConcurrentEmit(t *testing.T) {
	rec := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Value(rec, i*100+j)
			}
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, rec.Len(), 500)
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Styled(NewSlog(logger), Step, "Example 1-a complete.")

	out := buf.String()
	if !strings.Contains(out, `msg="Example 1-a complete."`) || !strings.Contains(out, "style=step") {
		t.Errorf("unexpected slog output: %q", out)
	}
}

func TestTeeAndDiscard(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	sink := Tee(a, Discard, b)

	Value(sink, "x")

	testutil.AssertEqual(t, a.Len(), 1)
	testutil.AssertEqual(t, b.Len(), 1)
}
