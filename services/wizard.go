package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/crypto"
)

const DefaultWizardTTL = 30 * time.Minute

// WizardRegistry holds the live signup wizards so HTTP handlers can drive
// them across requests. Wizards that sit idle past the TTL are discarded
// together with their draft.
type WizardRegistry struct {
	mu      sync.Mutex
	entries map[string]*wizardEntry
	ttl     time.Duration
	now     func() time.Time
}

type wizardEntry struct {
	mu       sync.Mutex
	wizard   *core.Wizard
	lastSeen time.Time
}

func NewWizardRegistry(ttl time.Duration) *WizardRegistry {
	if ttl <= 0 {
		ttl = DefaultWizardTTL
	}
	return &WizardRegistry{
		entries: make(map[string]*wizardEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Start creates a new wizard and returns its id.
func (r *WizardRegistry) Start() (string, *core.Wizard, error) {
	id, err := crypto.NewNanoID().Generate()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate wizard id: %w", err)
	}

	w := core.NewWizard()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
	r.entries[id] = &wizardEntry{wizard: w, lastSeen: r.now()}
	return id, w, nil
}

// With runs fn against the wizard, serializing access per wizard. The fn
// error passes through unchanged so callers can route on it.
func (r *WizardRegistry) With(id string, fn func(w *core.Wizard) error) error {
	r.mu.Lock()
	r.pruneLocked()
	entry, ok := r.entries[id]
	r.mu.Unlock()

	if !ok {
		return core.ErrWizardNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.lastSeen = r.now()
	return fn(entry.wizard)
}

// Discard drops a wizard and its draft.
func (r *WizardRegistry) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

func (r *WizardRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *WizardRegistry) pruneLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
