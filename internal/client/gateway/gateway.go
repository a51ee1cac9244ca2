// Package gateway is the single point of contact with the memo service.
// Two implementations exist: HTTPGateway for a configured remote endpoint
// and FixtureGateway for local development without one. Both honor the
// same contract, so stores never know which mode they run in.
package gateway

import (
	"context"

	"github.com/dmitrijs2005/memopad/internal/client/models"
)

// Gateway defines every remote operation the client performs.
//
// Contract:
//   - Login/Register: exchange credentials for a user and bearer token.
//   - Logout: best-effort server-side session invalidation.
//   - ListMemos/CreateMemo/GetMemoByID/ListTemplates: memo and template CRUD.
//   - OnSessionExpired: subscribe to the authorization-expired signal; the
//     callback fires when any call receives a 401-equivalent response.
//
// All methods must honor context cancellation/timeouts.
type Gateway interface {
	Login(ctx context.Context, cred models.Credential) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	ListMemos(ctx context.Context) ([]models.Memo, error)
	CreateMemo(ctx context.Context, data models.CreateMemoData) (*models.Memo, error)
	GetMemoByID(ctx context.Context, id string) (*models.Memo, error)
	ListTemplates(ctx context.Context) ([]models.Template, error)
	OnSessionExpired(fn func())
}

// TokenStore is the gateway's view of the persisted session snapshot:
// it yields the bearer token for outgoing requests and clears the whole
// snapshot when the server reports the session expired.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
