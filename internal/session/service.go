package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/voice_converter/internal/converter"
)

type session struct {
	id         string
	state      converter.State
	orch       *converter.Orchestrator
	converting bool
	updatedAt  time.Time
}

// Store держит пары полей по сессиям браузера и сам соблюдает флаг loading:
// второй convert на той же сессии получает ErrBusy.
type Store struct {
	mu      sync.Mutex
	items   map[string]*session
	newOrch func() *converter.Orchestrator
	now     func() time.Time
}

func NewStore(newOrch func() *converter.Orchestrator) *Store {
	return &Store{
		items:   make(map[string]*session),
		newOrch: newOrch,
		now:     time.Now,
	}
}

func (s *Store) Create(st converter.State) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:        uuid.NewString(),
		state:     st,
		orch:      s.newOrch(),
		updatedAt: s.now(),
	}
	s.items[sess.id] = sess
	return sess.snapshot()
}

func (s *Store) Get(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return sess.snapshot(), nil
}

// Edit — прямые правки пользователя, разрешены и во время конвертации
func (s *Store) Edit(id string, st converter.State) (Snapshot, error) {
	return s.update(id, func(cur converter.State) converter.State { return st })
}

func (s *Store) Clear(id string) (Snapshot, error) {
	return s.update(id, converter.State.Clear)
}

func (s *Store) Convert(ctx context.Context, id string) (Snapshot, converter.Outcome, error) {
	s.mu.Lock()
	sess, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return Snapshot{}, converter.Outcome{}, ErrNotFound
	}
	if sess.converting {
		s.mu.Unlock()
		return Snapshot{}, converter.Outcome{}, ErrBusy
	}
	sess.converting = true
	st := sess.state
	s.mu.Unlock()

	_, out := sess.orch.Convert(ctx, st)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.converting = false
	sess.state = out.Apply(sess.state)
	sess.updatedAt = s.now()
	return sess.snapshot(), out, nil
}

// Sweep удаляет сессии, которые простаивали дольше ttl
func (s *Store) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, sess := range s.items {
		if sess.converting || sess.updatedAt.After(cutoff) {
			continue
		}
		delete(s.items, id)
		removed++
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) update(id string, fn func(converter.State) converter.State) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	sess.state = fn(sess.state)
	sess.updatedAt = s.now()
	return sess.snapshot(), nil
}

func (sess *session) snapshot() Snapshot {
	return Snapshot{
		ID:         sess.id,
		State:      sess.state,
		HasContent: sess.state.HasContent(),
		Loading:    sess.converting || sess.orch.Loading(),
		UpdatedAt:  sess.updatedAt,
	}
}
