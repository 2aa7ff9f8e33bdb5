// Package snapshot holds the last rendered fragment of each polled view.
// A failed refresh never clears a view; readers keep getting the previous
// fragment. Publishes carry a sequence number so a slow response that
// resolves after a newer one is discarded instead of overwriting it.
package snapshot

import (
	"html/template"
	"sync"
	"time"

	"codeberg.org/gruf/go-mutexes"
)

// Well known view names used by the pollers and the fragment handlers.
const (
	ViewCalendar = "calendar"
	ViewMarket   = "market"
	ViewFeed     = "feed"
)

type entry struct {
	seq      uint64
	accepted uint64
	html     template.HTML
	at       time.Time
	set      bool
}

type Store struct {
	locks *mutexes.MutexMap

	mu    sync.Mutex
	views map[string]*entry
}

func NewStore() *Store {
	locks := mutexes.MutexMap{}
	return &Store{
		locks: &locks,
		views: map[string]*entry{},
	}
}

func (s *Store) view(name string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.views[name]
	if !ok {
		e = &entry{}
		s.views[name] = e
	}
	return e
}

// Begin allocates the sequence number for a refresh that is about to
// start. The matching Publish hands it back.
func (s *Store) Begin(name string) uint64 {
	unlock := s.locks.Lock(name)
	defer unlock()

	e := s.view(name)
	e.seq++
	return e.seq
}

// Publish stores a freshly rendered fragment. It reports false when a
// newer refresh already published, in which case the fragment is dropped.
func (s *Store) Publish(name string, seq uint64, html template.HTML) bool {
	unlock := s.locks.Lock(name)
	defer unlock()

	e := s.view(name)
	if seq <= e.accepted {
		return false
	}
	e.accepted = seq
	e.html = html
	e.at = time.Now()
	e.set = true
	return true
}

// Get returns the last good fragment for a view. ok is false only before
// the first successful refresh.
func (s *Store) Get(name string) (template.HTML, bool) {
	unlock := s.locks.Lock(name)
	defer unlock()

	e := s.view(name)
	return e.html, e.set
}

// Age reports how long ago the view was last refreshed.
func (s *Store) Age(name string) (time.Duration, bool) {
	unlock := s.locks.Lock(name)
	defer unlock()

	e := s.view(name)
	if !e.set {
		return 0, false
	}
	return time.Since(e.at), true
}
