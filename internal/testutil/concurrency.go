package testutil

import (
	"html/template"
	"sync"
	"time"

	"github.com/vk/emitgrid/internal/handlers"
	"github.com/vk/emitgrid/internal/stage"
)

// RecorderModule registers the "test_record" writer, which records every
// call and optionally sleeps to widen race windows in concurrency tests.
type RecorderModule struct {
	mu      sync.Mutex
	records []WriteRecord
	sleep   time.Duration
	done    chan<- string
}

// NewRecorderModule returns a recorder that sleeps for sleep on each write
// and, when done is non-nil, sends the emitted text to it afterwards.
func NewRecorderModule(done chan<- string, sleep time.Duration) *RecorderModule {
	return &RecorderModule{sleep: sleep, done: done}
}

// Register implements handlers.Module.
func (m *RecorderModule) Register(h *handlers.Handlers) {
	handlers.RegisterWriter(h, "test_record", func(*struct{}) (stage.Writer, error) {
		return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
			time.Sleep(m.sleep)

			m.mu.Lock()
			m.records = append(m.records, WriteRecord{Emitted: a.Emitted, IsDebug: a.IsDebug, At: time.Now()})
			m.mu.Unlock()

			if m.done != nil {
				m.done <- a.Emitted
			}
			return template.HTML(a.Emitted), nil
		}), nil
	})
}

// Records returns a copy of the calls seen so far.
func (m *RecorderModule) Records() []WriteRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]WriteRecord(nil), m.records...)
}
