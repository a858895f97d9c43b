package jobs

import (
	"sync"
	"testing"
	"time"

	mem "pet-daycare-calendar/internal/adapters/storage/memory"
	"pet-daycare-calendar/internal/domain/calendar"
	"pet-daycare-calendar/internal/platform/logger"
)

// captureLogger junta las entradas para poder inspeccionar el digest.
type captureLogger struct {
	mu      sync.Mutex
	entries []capturedEntry
}

type capturedEntry struct {
	level  string
	msg    string
	fields map[string]any
}

func (c *captureLogger) With(fields map[string]any) logger.Logger { return c }
func (c *captureLogger) Debug(msg string, fields map[string]any)  { c.add("debug", msg, fields) }
func (c *captureLogger) Info(msg string, fields map[string]any)   { c.add("info", msg, fields) }
func (c *captureLogger) Warn(msg string, fields map[string]any)   { c.add("warn", msg, fields) }
func (c *captureLogger) Error(msg string, fields map[string]any)  { c.add("error", msg, fields) }

func (c *captureLogger) add(level, msg string, fields map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, capturedEntry{level: level, msg: msg, fields: fields})
}

func (c *captureLogger) find(msg string) (capturedEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return capturedEntry{}, false
}

func TestReminderJob_Run(t *testing.T) {
	sources, _ := mem.NewSeededStore(time.Now())
	svc := calendar.NewService(sources)

	log := &captureLogger{}
	job := NewReminderJob(svc, log, 7)

	job.Run()

	digest, ok := log.find("reminder sweep done")
	if !ok {
		t.Fatalf("no digest logged: %+v", log.entries)
	}
	if n, _ := digest.fields["overdue"].(int); n < 1 {
		t.Fatalf("overdue = %v, want >= 1 (seeded vaccine is overdue)", digest.fields["overdue"])
	}
	if n, _ := digest.fields["events"].(int); n == 0 {
		t.Fatalf("no events in sweep window")
	}

	if _, ok := log.find("health event overdue"); !ok {
		t.Fatalf("overdue warning not logged")
	}
}

func TestReminderJob_StartInvalidSpec(t *testing.T) {
	sources, _ := mem.NewSeededStore(time.Now())
	svc := calendar.NewService(sources)

	job := NewReminderJob(svc, &captureLogger{}, 7)
	if err := job.Start("not a cron spec"); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
}
