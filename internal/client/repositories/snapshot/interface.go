// Package snapshot persists the session snapshot: three key-value entries
// (serialized user, authenticated flag, bearer token) that survive process
// restarts and drive session restore at startup.
package snapshot

import "context"

// Keys of the persisted session snapshot. A valid restore requires all
// three to be present; any missing or unparseable entry means the whole
// snapshot is treated as absent and cleared.
const (
	KeyUser          = "user"
	KeyAuthenticated = "authenticated"
	KeyToken         = "token"
)

// AuthenticatedValue is the literal stored under KeyAuthenticated.
const AuthenticatedValue = "true"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
