package memory

import "time"

func (s *SessionStore) SetClock(now func() time.Time) {
	s.now = now
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
