package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/bnema/flychain-wallet/internal/pkg/logger"
	"github.com/bnema/flychain-wallet/internal/ports"
)

const logModule = "session"

// SessionStore owns the wallet session. Reads are synchronous; Connect is the only
// operation that blocks. At most one Connect runs at a time, and overlapping calls are
// rejected with domain.ErrConnectInProgress.
type SessionStore struct {
	repo      ports.SessionRepository
	connector ports.WalletConnector
	log       logger.Logger

	mu         sync.RWMutex
	session    domain.Session
	connecting bool

	listenersMu sync.Mutex
	listeners   map[int]func(domain.Session)
	nextID      int
}

func NewSessionStore(repo ports.SessionRepository, connector ports.WalletConnector, log logger.Logger) *SessionStore {
	if log == nil {
		log = logger.NewNop()
	}

	return &SessionStore{
		repo:      repo,
		connector: connector,
		log:       log,
		session:   domain.Disconnected(),
		listeners: map[int]func(domain.Session){},
	}
}

// Init rehydrates the store from the persisted snapshot. A missing or unreadable
// snapshot leaves the disconnected defaults in place.
func (s *SessionStore) Init(ctx context.Context) error {
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			s.log.Warn(logModule, "discarding unreadable session snapshot", map[string]interface{}{"error": err.Error()})
		}
		loaded = domain.Disconnected()
	}

	s.mu.Lock()
	s.session = loaded
	s.mu.Unlock()

	s.log.Debug(logModule, "session rehydrated", map[string]interface{}{"session": loaded.String()})
	return nil
}

func (s *SessionStore) State() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// Connecting reports whether a Connect call is in flight.
func (s *SessionStore) Connecting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.connecting
}

// Connect establishes a session. In real mode the role argument is ignored and the
// session always starts as a user. Switching between demo and real requires a
// Disconnect first; reconnecting in the current mode is allowed. On error the state
// is left untouched.
func (s *SessionStore) Connect(ctx context.Context, mode domain.Mode, role domain.Role) error {
	if !mode.Valid() {
		return fmt.Errorf("connect: %w: %q", domain.ErrUnknownMode, mode)
	}
	if mode == domain.ModeDemo && !role.Valid() {
		return fmt.Errorf("connect: %w: %q", domain.ErrUnknownRole, role)
	}

	s.mu.Lock()
	if s.connecting {
		s.mu.Unlock()
		s.log.Warn(logModule, "rejected overlapping connect", map[string]interface{}{"mode": string(mode)})
		return domain.ErrConnectInProgress
	}
	if current := s.session.Mode(); current != "" && current != mode {
		s.mu.Unlock()
		s.log.Warn(logModule, "rejected cross-mode connect", map[string]interface{}{
			"mode":    string(mode),
			"current": string(current),
		})
		return fmt.Errorf("connect %s: %w (current mode %s), disconnect first", mode, domain.ErrAlreadyConnected, current)
	}
	s.connecting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.connecting = false
		s.mu.Unlock()
	}()

	s.log.Info(logModule, "connecting wallet", map[string]interface{}{"mode": string(mode), "role": string(role)})

	next, err := s.resolve(ctx, mode, role)
	if err != nil {
		s.log.Error(logModule, "wallet connection failed", map[string]interface{}{"mode": string(mode), "error": err})
		return err
	}

	s.commit(next)
	s.log.Info(logModule, "wallet connected", map[string]interface{}{
		"mode":    string(mode),
		"role":    string(next.Role()),
		"address": next.Address(),
	})
	return nil
}

func (s *SessionStore) resolve(ctx context.Context, mode domain.Mode, role domain.Role) (domain.Session, error) {
	if mode == domain.ModeDemo {
		return domain.DemoSession(role)
	}

	account, err := s.connector.Handshake(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrHandshakeFailed, err)
	}

	session, err := domain.NewConnected(domain.ModeReal, account.Address, account.Balance, domain.RoleUser, domain.DemoChainID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrHandshakeFailed, err)
	}

	return session, nil
}

// Disconnect resets the session to the disconnected defaults.
func (s *SessionStore) Disconnect() {
	s.commit(domain.Disconnected())
	s.log.Info(logModule, "wallet disconnected", nil)
}

// SetBalance overwrites the balance of a connected session without validating it. While
// disconnected the call is a no-op: nothing is persisted and the balance stays "0.00".
func (s *SessionStore) SetBalance(balance string) {
	changed := s.apply(func(current domain.Session) (domain.Session, bool) {
		if !current.IsConnected() {
			return current, false
		}
		return current.WithBalance(balance), true
	})
	if !changed {
		s.log.Debug(logModule, "ignored balance update while disconnected", nil)
	}
}

// SwitchRole swaps to the demo account of role. It reports whether anything changed:
// outside demo mode the call does nothing.
func (s *SessionStore) SwitchRole(role domain.Role) bool {
	if !role.Valid() {
		s.log.Warn(logModule, "ignored switch to unknown role", map[string]interface{}{"role": string(role)})
		return false
	}

	changed := s.apply(func(current domain.Session) (domain.Session, bool) {
		if !current.IsDemoMode() {
			return current, false
		}
		next, err := domain.DemoSession(role)
		if err != nil {
			return current, false
		}
		return next, true
	})
	if !changed {
		s.log.Debug(logModule, "ignored role switch outside demo mode", map[string]interface{}{"role": string(role)})
		return false
	}

	s.log.Info(logModule, "demo role switched", map[string]interface{}{"role": string(role)})
	return true
}

// Subscribe registers fn to run after every effective mutation. The returned func removes it.
func (s *SessionStore) Subscribe(fn func(domain.Session)) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *SessionStore) commit(next domain.Session) {
	s.apply(func(domain.Session) (domain.Session, bool) {
		return next, true
	})
}

// apply runs mutate against the current session. The snapshot is written under the same
// lock so the persisted order matches the in-memory order.
func (s *SessionStore) apply(mutate func(current domain.Session) (domain.Session, bool)) bool {
	s.mu.Lock()
	next, ok := mutate(s.session)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.session = next
	s.persist(next)
	s.mu.Unlock()

	s.notify(next)
	return true
}

// persist is best effort: the in-memory session stays authoritative.
func (s *SessionStore) persist(session domain.Session) {
	if err := s.repo.Save(context.Background(), session); err != nil {
		s.log.Error(logModule, "persist session snapshot", map[string]interface{}{"error": err})
	}
}

func (s *SessionStore) notify(session domain.Session) {
	s.listenersMu.Lock()
	listeners := make([]func(domain.Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(session)
	}
}
