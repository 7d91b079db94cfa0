package application

import "github.com/bnema/flychain-wallet/internal/domain"

type Status struct {
	Session    domain.Session
	Connecting bool
}

func (s *SessionStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Session:    s.session,
		Connecting: s.connecting,
	}
}
