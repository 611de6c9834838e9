package session

import "github.com/google/uuid"

// Session is the per-request view of a stored session.
type Session struct {
	id        string
	data      Data
	isNew     bool
	dirty     bool
	destroyed bool
}

func newSession() *Session {
	return &Session{id: uuid.NewString(), isNew: true}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	return s.data.UserID != nil
}

// UserID returns the logged-in user's id.
func (s *Session) UserID() (uuid.UUID, bool) {
	if s.data.UserID == nil {
		return uuid.Nil, false
	}
	return *s.data.UserID, true
}

// UserName returns the logged-in user's display name.
func (s *Session) UserName() string {
	return s.data.UserName
}

// SetUser marks the session as authenticated.
func (s *Session) SetUser(id uuid.UUID, name string) {
	s.data.UserID = &id
	s.data.UserName = name
	s.dirty = true
}

// AddFlash queues a notice for the next rendered page.
func (s *Session) AddFlash(kind, message string) {
	s.data.Flashes = append(s.data.Flashes, Flash{Kind: kind, Message: message})
	s.dirty = true
}

// Flashes removes and returns the queued notices of the given kind.
func (s *Session) Flashes(kind string) []string {
	var (
		out  []string
		kept []Flash
	)
	for _, f := range s.data.Flashes {
		if f.Kind == kind {
			out = append(out, f.Message)
			continue
		}
		kept = append(kept, f)
	}
	if len(out) > 0 {
		s.data.Flashes = kept
		s.dirty = true
	}
	return out
}

func (s *Session) empty() bool {
	return s.data.UserID == nil && len(s.data.Flashes) == 0
}
