// Package session holds the identity of the signed-in user for the running
// client. It is owned by the composition root and shared by reference.
package session

import (
	"sync"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
)

type State struct {
	mu   sync.RWMutex
	user *client.User
}

func New() *State {
	return &State{}
}

// User returns the current user, or nil when signed out.
func (s *State) User() *client.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) SetUser(u *client.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *State) Clear() {
	s.SetUser(nil)
}

func (s *State) IsAuthenticated() bool {
	return s.User() != nil
}
