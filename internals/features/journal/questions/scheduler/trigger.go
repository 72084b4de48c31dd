package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Trigger decides when a rotation fires. fire must not block for long.
type Trigger interface {
	Start(fire func()) error
	Stop()
}

/* ====================== CRON ====================== */

// CronTrigger fires on a standard 5-field cron spec evaluated in Location.
type CronTrigger struct {
	Spec     string
	Location *time.Location

	c *cron.Cron
}

func NewCronTrigger(spec string, loc *time.Location) *CronTrigger {
	if loc == nil {
		loc = time.UTC
	}
	return &CronTrigger{Spec: spec, Location: loc}
}

func (t *CronTrigger) Start(fire func()) error {
	c := cron.New(cron.WithLocation(t.Location))
	if _, err := c.AddFunc(t.Spec, fire); err != nil {
		return fmt.Errorf("invalid rotation cron %q: %w", t.Spec, err)
	}
	t.c = c
	c.Start()
	return nil
}

// Stop waits for a running job to finish.
func (t *CronTrigger) Stop() {
	if t.c == nil {
		return
	}
	<-t.c.Stop().Done()
}

/* ====================== MANUAL ====================== */

// ManualTrigger fires only when Fire is called. Fire runs synchronously.
type ManualTrigger struct {
	mu   sync.Mutex
	fire func()
}

func NewManualTrigger() *ManualTrigger { return &ManualTrigger{} }

func (t *ManualTrigger) Start(fire func()) error {
	t.mu.Lock()
	t.fire = fire
	t.mu.Unlock()
	return nil
}

func (t *ManualTrigger) Stop() {
	t.mu.Lock()
	t.fire = nil
	t.mu.Unlock()
}

// Fire reports false when the trigger is not started.
func (t *ManualTrigger) Fire() bool {
	t.mu.Lock()
	f := t.fire
	t.mu.Unlock()
	if f == nil {
		return false
	}
	f()
	return true
}
