package testlog

import (
	"sync"

	"service-gestor/internal/logx"
)

// Entry is one recorded log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value of the last field named key.
func (e Entry) Field(key string) (any, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i].Value, true
		}
	}
	return nil, false
}

// Recorder collects log calls so tests can assert on them.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger writing into r.
func (r *Recorder) Logger() logx.Logger {
	return recorderLogger{r: r}
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Find returns the first entry with level and msg.
func (r *Recorder) Find(level, msg string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Level == level && e.Msg == msg {
			return e, true
		}
	}
	return Entry{}, false
}

// Has reports whether an entry with level and msg was recorded.
func (r *Recorder) Has(level, msg string) bool {
	_, ok := r.Find(level, msg)
	return ok
}

// Count returns how many entries have level and msg.
func (r *Recorder) Count(level, msg string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level && e.Msg == msg {
			n++
		}
	}
	return n
}

func (r *Recorder) add(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: append([]logx.Field(nil), fields...)})
}

type recorderLogger struct {
	r    *Recorder
	base []logx.Field
}

func (l recorderLogger) with(f []logx.Field) []logx.Field {
	if len(l.base) == 0 {
		return f
	}
	return append(append([]logx.Field(nil), l.base...), f...)
}

func (l recorderLogger) Debug(msg string, f ...logx.Field) { l.r.add("debug", msg, l.with(f)) }
func (l recorderLogger) Info(msg string, f ...logx.Field)  { l.r.add("info", msg, l.with(f)) }
func (l recorderLogger) Warn(msg string, f ...logx.Field)  { l.r.add("warn", msg, l.with(f)) }
func (l recorderLogger) Error(msg string, f ...logx.Field) { l.r.add("error", msg, l.with(f)) }

func (l recorderLogger) With(f ...logx.Field) logx.Logger {
	return recorderLogger{r: l.r, base: l.with(f)}
}

func (l recorderLogger) Sync() error { return nil }

var _ logx.Logger = recorderLogger{}
