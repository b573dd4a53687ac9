package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventbooking/internal/domain"
)

// ErrSessionClosed is reported by operations issued after Close.
var ErrSessionClosed = errors.New("session store closed")

// sessionTask is one issued sign-in or registration. It settles at due.
type sessionTask struct {
	ctx      context.Context
	identity *domain.Identity
	due      time.Time
	done     chan struct{}
	err      error
}

func newSessionTask(ctx context.Context, identity *domain.Identity, due time.Time) *sessionTask {
	return &sessionTask{
		ctx:      context.WithoutCancel(ctx),
		identity: identity,
		due:      due,
		done:     make(chan struct{}),
	}
}

func (t *sessionTask) Done() <-chan struct{} { return t.done }

func (t *sessionTask) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

func (t *sessionTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *sessionTask) finish(err error) {
	t.err = err
	close(t.done)
}

type sessionStore struct {
	slot   domain.DurableSlot
	key    string
	delay  time.Duration
	logger *slog.Logger

	mu       sync.RWMutex
	identity *domain.Identity
	loading  bool

	// pmu pairs each in-memory transition with its slot write or delete.
	pmu sync.Mutex

	qmu     sync.Mutex
	pending []*sessionTask
	closed  bool
	wake    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewSessionStore creates a SessionStore backed by slot. Sign-in and registration settle after delay.
// The store starts in the loading state until Restore runs.
func NewSessionStore(slot domain.DurableSlot, key string, delay time.Duration, logger *slog.Logger) domain.SessionStore {
	if key == "" {
		key = domain.DefaultSlotKey
	}
	s := &sessionStore{
		slot:    slot,
		key:     key,
		delay:   delay,
		logger:  logger,
		loading: true,
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *sessionStore) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	s.pmu.Lock()
	defer s.pmu.Unlock()

	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrSlotEmpty) {
			return nil
		}
		return fmt.Errorf("read session slot: %w", err)
	}

	var identity *domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.logger.WarnContext(ctx, "discarding malformed stored identity", "key", s.key, "err", err)
		if err := s.slot.Delete(ctx, s.key); err != nil {
			return fmt.Errorf("delete malformed session slot: %w", err)
		}
		return nil
	}
	if identity == nil {
		// a stored null means nobody is signed in
		return nil
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "session restored", "identity_id", identity.ID)
	return nil
}

func (s *sessionStore) Current() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := domain.SessionState{Loading: s.loading}
	if s.identity != nil {
		cp := *s.identity
		state.Identity = &cp
	}
	return state
}

func (s *sessionStore) SignInWithCredentials(ctx context.Context, email, _ string) domain.Pending {
	return s.issue(ctx, domain.NewCredentialsIdentity(email))
}

func (s *sessionStore) SignInWithProvider(ctx context.Context) domain.Pending {
	return s.issue(ctx, domain.NewProviderIdentity())
}

func (s *sessionStore) Register(ctx context.Context, name, email, _ string) domain.Pending {
	return s.issue(ctx, domain.NewRegisteredIdentity(name, email))
}

func (s *sessionStore) SignOut(ctx context.Context) error {
	s.pmu.Lock()
	defer s.pmu.Unlock()

	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	if err := s.slot.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	s.logger.InfoContext(ctx, "signed out")
	return nil
}

// Close stops accepting operations and waits for already issued ones to settle.
func (s *sessionStore) Close() {
	s.once.Do(func() {
		s.qmu.Lock()
		s.closed = true
		s.qmu.Unlock()
		s.signal()
		<-s.stopped
	})
}

func (s *sessionStore) issue(ctx context.Context, identity *domain.Identity) domain.Pending {
	t := newSessionTask(ctx, identity, time.Now().Add(s.delay))

	s.qmu.Lock()
	if s.closed {
		s.qmu.Unlock()
		t.finish(ErrSessionClosed)
		return t
	}
	s.pending = append(s.pending, t)
	s.qmu.Unlock()

	s.signal()
	return t
}

func (s *sessionStore) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// run settles tasks one at a time in issue order. Due times are nondecreasing,
// so completion order matches issue order.
func (s *sessionStore) run() {
	defer close(s.stopped)
	for {
		s.qmu.Lock()
		if len(s.pending) == 0 {
			closed := s.closed
			s.qmu.Unlock()
			if closed {
				return
			}
			<-s.wake
			continue
		}
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.qmu.Unlock()

		if wait := time.Until(t.due); wait > 0 {
			timer := time.NewTimer(wait)
			<-timer.C
		}
		t.finish(s.settle(t))
	}
}

// settle makes the task's identity current and persists it. The in-memory
// transition happens even when the slot write fails. A concurrent SignOut
// waits for the write, so it cannot be undone by a late Set.
func (s *sessionStore) settle(t *sessionTask) error {
	s.pmu.Lock()
	defer s.pmu.Unlock()

	s.mu.Lock()
	s.identity = t.identity
	s.mu.Unlock()

	raw, err := json.Marshal(t.identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.slot.Set(t.ctx, s.key, raw); err != nil {
		s.logger.ErrorContext(t.ctx, "persist identity failed", "identity_id", t.identity.ID, "err", err)
		return fmt.Errorf("write session slot: %w", err)
	}
	s.logger.InfoContext(t.ctx, "signed in", "identity_id", t.identity.ID)
	return nil
}
