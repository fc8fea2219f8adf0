package session

import "sync"

// Snapshot is a point-in-time view of the authentication state.
type Snapshot struct {
	Authenticated bool
	User          *UserSnapshot
	Loading       bool
}

// State is the process-wide authentication state. It starts in the loading
// phase until the first hydration from the credential store completes, then
// flips between authenticated and anonymous on login, refresh, logout and
// irrecoverable auth failures.
//
// State never touches the store itself; services and the recovery
// coordinator drive its transitions.
type State struct {
	mu      sync.RWMutex
	loading bool
	user    *UserSnapshot
}

func NewState() *State {
	return &State{loading: true}
}

// Snapshot returns the current state. The embedded user is a copy.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.user != nil,
		User:          copySnapshot(s.user),
		Loading:       s.loading,
	}
}

// SetAuthenticated marks the session authenticated as the given user and
// ends the loading phase.
func (s *State) SetAuthenticated(user *UserSnapshot) {
	u := copySnapshot(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.loading = false
}

// SetAnonymous marks the session unauthenticated and ends the loading phase.
func (s *State) SetAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.loading = false
}
