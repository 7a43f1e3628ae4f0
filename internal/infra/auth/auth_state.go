package auth

import (
	"sync"

	"aiclub/internal/domain/entity"
)

// AuthState tracks the signed-in identity of one auth client and the
// listeners registered on it. Listeners run synchronously on the goroutine
// that changed the state, one change at a time, in registration order.
type AuthState struct {
	mu        sync.Mutex
	current   *entity.Identity
	listeners map[int]func(*entity.Identity)
	order     []int
	nextID    int

	dispatchMu sync.Mutex
}

// NewAuthState returns a state with no identity.
func NewAuthState() *AuthState {
	return &AuthState{listeners: make(map[int]func(*entity.Identity))}
}

// Current returns a copy of the signed-in identity or nil.
func (s *AuthState) Current() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneIdentity(s.current)
}

// Set replaces the identity and notifies every listener.
func (s *AuthState) Set(identity *entity.Identity) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.current = cloneIdentity(identity)
	fns := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(cloneIdentity(identity))
	}
}

// Subscribe registers fn, calls it with the current identity and returns
// the func that unregisters it.
func (s *AuthState) Subscribe(fn func(*entity.Identity)) func() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	current := cloneIdentity(s.current)
	s.mu.Unlock()

	fn(current)

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)

					break
				}
			}
		})
	}
}

func (s *AuthState) snapshotListeners() []func(*entity.Identity) {
	fns := make([]func(*entity.Identity), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.listeners[id])
	}

	return fns
}

func cloneIdentity(identity *entity.Identity) *entity.Identity {
	if identity == nil {
		return nil
	}
	c := *identity

	return &c
}
