// Package stores holds the client-side state: the session (authenticated
// identity) and the memo/template cache. Stores own their state exclusively,
// mutate it through gateway calls, and notify subscribers after every change
// so the presentation layer can re-render.
package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/dmitrijs2005/memopad/internal/client/gateway"
	"github.com/dmitrijs2005/memopad/internal/client/models"
	"github.com/dmitrijs2005/memopad/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/memopad/internal/dbx"
	"github.com/dmitrijs2005/memopad/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// SessionStore owns the authenticated identity. States: anonymous,
// authenticating (loading flag set), authenticated.
//
// Login and Register report success as a boolean; failures are caught
// internally and never propagate. Logout tears local state down even when
// the remote call fails. A session-expired signal from the gateway drops
// the store to anonymous regardless of which call triggered it.
type SessionStore struct {
	gw  gateway.Gateway
	db  *sql.DB
	log logging.Logger

	mu            sync.Mutex
	user          *models.User
	authenticated bool
	loading       bool
	observers     []func()
}

// NewSessionStore binds the store to the gateway and the local snapshot
// database, and subscribes to the gateway's session-expired signal.
func NewSessionStore(gw gateway.Gateway, db *sql.DB, log logging.Logger) *SessionStore {
	s := &SessionStore{gw: gw, db: db, log: log}
	gw.OnSessionExpired(s.handleSessionExpired)
	return s
}

func (s *SessionStore) getSnapshotRepo() snapshot.Repository {
	return snapshot.NewSQLiteRepository(s.db)
}

// Subscribe registers fn to run after every state change.
func (s *SessionStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *SessionStore) notify() {
	s.mu.Lock()
	obs := make([]func(), len(s.observers))
	copy(obs, s.observers)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

func (s *SessionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}

// User returns a copy of the current user, or nil when anonymous.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Login authenticates against the gateway. On success the identity is
// adopted and the snapshot persisted; on failure the store stays anonymous
// and false is returned.
func (s *SessionStore) Login(ctx context.Context, cred models.Credential) bool {
	s.setLoading(true)

	resp, err := s.gw.Login(ctx, cred)
	if err != nil {
		s.log.Warn(ctx, "login failed", "error", err)
		s.setLoading(false)
		return false
	}

	if err := s.persist(ctx, resp); err != nil {
		s.log.Error(ctx, "persisting session snapshot", "error", err)
	}
	s.adopt(resp.User)
	return true
}

// Register creates an account and adopts the returned identity. Same
// failure semantics as Login.
func (s *SessionStore) Register(ctx context.Context, data models.RegisterData) bool {
	s.setLoading(true)

	resp, err := s.gw.Register(ctx, data)
	if err != nil {
		s.log.Warn(ctx, "register failed", "error", err)
		s.setLoading(false)
		return false
	}

	if err := s.persist(ctx, resp); err != nil {
		s.log.Error(ctx, "persisting session snapshot", "error", err)
	}
	s.adopt(resp.User)
	return true
}

// Logout notifies the server best-effort; local teardown is unconditional.
func (s *SessionStore) Logout(ctx context.Context) {
	if err := s.gw.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed", "error", err)
	}

	if err := s.getSnapshotRepo().Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing session snapshot", "error", err)
	}
	s.reset()
}

// AdoptUser injects an identity directly, transitioning to authenticated.
// Used by Restore; does not touch the persisted snapshot.
func (s *SessionStore) AdoptUser(user models.User) {
	s.adopt(user)
}

// Restore rebuilds the session from the persisted snapshot at startup.
// All three entries must be present and the user record parseable; any
// missing or corrupt entry discards the snapshot, clears it from
// persistence, and leaves the store anonymous. Never returns an error.
func (s *SessionStore) Restore(ctx context.Context) bool {
	repo := s.getSnapshotRepo()

	userRaw, err := repo.Get(ctx, snapshot.KeyUser)
	if err != nil {
		s.log.Error(ctx, "reading session snapshot", "error", err)
		return false
	}
	authRaw, err := repo.Get(ctx, snapshot.KeyAuthenticated)
	if err != nil {
		s.log.Error(ctx, "reading session snapshot", "error", err)
		return false
	}
	tokenRaw, err := repo.Get(ctx, snapshot.KeyToken)
	if err != nil {
		s.log.Error(ctx, "reading session snapshot", "error", err)
		return false
	}

	discard := func(reason string) bool {
		s.log.Warn(ctx, "discarding session snapshot", "reason", reason)
		if err := repo.Clear(ctx); err != nil {
			s.log.Error(ctx, "clearing session snapshot", "error", err)
		}
		return false
	}

	if userRaw == nil && authRaw == nil && tokenRaw == nil {
		// No snapshot at all: a clean anonymous start, nothing to clear.
		return false
	}
	if userRaw == nil || len(tokenRaw) == 0 || string(authRaw) != snapshot.AuthenticatedValue {
		return discard("incomplete")
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		return discard("unparseable user record")
	}
	if user.Username == "" {
		return discard("empty username")
	}
	if tokenExpired(string(tokenRaw)) {
		return discard("token expired")
	}

	s.adopt(user)
	return true
}

// tokenExpired reports whether the token is a JWT with a past exp claim.
// Opaque (non-JWT) tokens are accepted as-is; the server remains the
// authority and will answer 401 if it disagrees.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// persist writes the three snapshot entries in a single transaction.
func (s *SessionStore) persist(ctx context.Context, resp *models.AuthResponse) error {
	userRaw, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := snapshot.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, snapshot.KeyUser, userRaw); err != nil {
			return err
		}
		if err := repo.Set(ctx, snapshot.KeyAuthenticated, []byte(snapshot.AuthenticatedValue)); err != nil {
			return err
		}
		return repo.Set(ctx, snapshot.KeyToken, []byte(resp.Token))
	})
}

func (s *SessionStore) adopt(user models.User) {
	s.mu.Lock()
	u := user
	s.user = &u
	s.authenticated = true
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func (s *SessionStore) reset() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// handleSessionExpired runs on the gateway's 401 signal. The gateway has
// already cleared the persisted snapshot; only in-memory state drops here.
func (s *SessionStore) handleSessionExpired() {
	s.log.Warn(context.Background(), "session expired, logging out")
	s.reset()
}
