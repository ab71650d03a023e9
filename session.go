package petkeep

import (
	"context"
	"sync"
)

// Storage keys for persisted local state. Fixed and versioned: changing a
// key orphans, never corrupts, previously stored values.
const (
	// KeyToken is the storage key for the session token.
	KeyToken = "@petkeep_token"
	// KeyOnboardingDone is the storage key for the one-time onboarding flag.
	KeyOnboardingDone = "@petkeep_onboarding_done"
)

// SessionStore persists the opaque auth token and the one-time onboarding
// flag. Implementations must not cache: every read goes to storage so the
// token reflects the latest login/logout even across process restarts.
// Each operation is a single-key read or write; there is no transactional
// grouping across keys. Storage errors propagate to the caller; no retry.
type SessionStore interface {
	// Token returns the persisted session token, or "" when absent.
	Token(ctx context.Context) (string, error)
	// SetToken durably stores the session token.
	SetToken(ctx context.Context, token string) error
	// ClearToken durably removes the session token. Idempotent.
	ClearToken(ctx context.Context) error

	// OnboardingDone reports whether first-launch onboarding has completed.
	OnboardingDone(ctx context.Context) (bool, error)
	// SetOnboardingDone marks onboarding as completed. The flag is created
	// once and never cleared by the application.
	SetOnboardingDone(ctx context.Context) error
}

// MemStore is an in-memory SessionStore. It is the client default and the
// substitute used in tests; sessions do not survive the process.
type MemStore struct {
	mu sync.Mutex
	kv map[string]string
}

// NewMemStore creates an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{kv: make(map[string]string)}
}

// Token implements SessionStore.
func (m *MemStore) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv[KeyToken], nil
}

// SetToken implements SessionStore.
func (m *MemStore) SetToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[KeyToken] = token
	return nil
}

// ClearToken implements SessionStore.
func (m *MemStore) ClearToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, KeyToken)
	return nil
}

// OnboardingDone implements SessionStore.
func (m *MemStore) OnboardingDone(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv[KeyOnboardingDone] != "", nil
}

// SetOnboardingDone implements SessionStore.
func (m *MemStore) SetOnboardingDone(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[KeyOnboardingDone] = "1"
	return nil
}

var _ SessionStore = (*MemStore)(nil)
