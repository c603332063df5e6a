package session

import (
	"errors"
	"testing"

	"github.com/lexigraph/backend/pkg/textproc"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry(NewRegistryParams{})

	s, err := r.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.ID == "" {
		t.Error("Create() returned empty session ID")
	}

	got, ok := r.Get(s.ID)
	if !ok {
		t.Fatalf("Get(%q) did not find the session", s.ID)
	}
	if got != s {
		t.Error("Get() returned a different session")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get() found a session that was never created")
	}
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry(NewRegistryParams{})

	s, err := r.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !r.Delete(s.ID) {
		t.Error("Delete() = false for an existing session")
	}
	if r.Delete(s.ID) {
		t.Error("Delete() = true for an already deleted session")
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after delete, want 0", r.Count())
	}
}

func TestRegistrySessionLimit(t *testing.T) {
	r := NewRegistry(NewRegistryParams{MaxSessions: 2})

	for i := 0; i < 2; i++ {
		if _, err := r.Create(); err != nil {
			t.Fatalf("Create() #%d error = %v", i, err)
		}
	}

	_, err := r.Create()
	if !errors.Is(err, ErrSessionLimit) {
		t.Errorf("Create() past the cap returned %v, want ErrSessionLimit", err)
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestSessionDoSerializesProcessorAccess(t *testing.T) {
	r := NewRegistry(NewRegistryParams{})
	s, err := r.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	s.Do(func(p *textproc.Processor) {
		p.IngestBatch([]string{"some words here"})
	})

	var stats textproc.PerformanceStats
	s.Do(func(p *textproc.Processor) {
		stats = p.PerformanceStats()
	})

	if stats.Generations != 1 {
		t.Errorf("Generations = %d, want 1", stats.Generations)
	}
	if stats.UniqueWords != 3 {
		t.Errorf("UniqueWords = %d, want 3", stats.UniqueWords)
	}
}
