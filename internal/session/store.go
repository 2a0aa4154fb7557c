// Package session holds per-session API credentials in memory. The store is
// an explicit object handed to callers by reference: created at session
// start, cleared at logout, never written to disk.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/betfront/gotrade/clob/types"
	"github.com/betfront/gotrade/pkg/cache"
)

// ErrNoCredentials is returned when the session holds no (or only expired)
// credentials of the requested kind. Callers must not attempt signed
// requests after seeing this.
var ErrNoCredentials = errors.New("session: no credentials")

const (
	// DefaultCredentialTTL bounds how long derived API credentials are
	// served from the store before callers must re-derive them.
	DefaultCredentialTTL = 12 * time.Hour

	userCredsKey    = "user"
	builderCredsKey = "builder"
)

// Store is an in-memory credential store for one trading session.
type Store struct {
	id      string
	address string
	creds   *cache.InMemoryCache[string, types.ApiKeyCreds]
}

// NewStore creates a store for the given wallet address. TTL <= 0 falls back
// to DefaultCredentialTTL.
func NewStore(address string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultCredentialTTL
	}
	return &Store{
		id:      uuid.NewString(),
		address: address,
		creds:   cache.NewInMemoryCache[string, types.ApiKeyCreds](ttl),
	}
}

// ID returns the session id.
func (s *Store) ID() string { return s.id }

// Address returns the wallet address this session belongs to.
func (s *Store) Address() string { return s.address }

// SetCredentials stores the user's L2 credentials.
func (s *Store) SetCredentials(creds *types.ApiKeyCreds) error {
	if !creds.IsComplete() {
		return errors.New("session: incomplete credentials")
	}
	s.creds.Set(userCredsKey, *creds, 0)
	return nil
}

// Credentials returns the user's L2 credentials, or ErrNoCredentials.
func (s *Store) Credentials() (*types.ApiKeyCreds, error) {
	c, ok := s.creds.Get(userCredsKey)
	if !ok {
		return nil, ErrNoCredentials
	}
	return &c, nil
}

// SetBuilderCredentials stores the builder-attribution credentials.
func (s *Store) SetBuilderCredentials(creds *types.ApiKeyCreds) error {
	if !creds.IsComplete() {
		return errors.New("session: incomplete builder credentials")
	}
	s.creds.Set(builderCredsKey, *creds, 0)
	return nil
}

// BuilderCredentials returns the builder credentials, or ErrNoCredentials.
func (s *Store) BuilderCredentials() (*types.ApiKeyCreds, error) {
	c, ok := s.creds.Get(builderCredsKey)
	if !ok {
		return nil, ErrNoCredentials
	}
	return &c, nil
}

// Clear drops everything the session holds. Called at logout.
func (s *Store) Clear() {
	s.creds.Clear()
}
