package stores

import (
	"context"

	"github.com/dmitrijs2005/memopad/internal/client/models"
)

// fakeGateway implements gateway.Gateway for store unit tests.
type fakeGateway struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	logoutErr    error

	memos        []models.Memo
	listErr      error
	createResp   *models.Memo
	createErr    error
	getResp      *models.Memo
	getErr       error
	templates    []models.Template
	templatesErr error

	expired []func()

	lastLogin    models.Credential
	lastRegister models.RegisterData
	lastCreate   models.CreateMemoData
	logoutCalls  int
}

func (f *fakeGateway) Login(ctx context.Context, cred models.Credential) (*models.AuthResponse, error) {
	f.lastLogin = cred
	return f.loginResp, f.loginErr
}

func (f *fakeGateway) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	f.lastRegister = data
	return f.registerResp, f.registerErr
}

func (f *fakeGateway) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeGateway) ListMemos(ctx context.Context) ([]models.Memo, error) {
	return f.memos, f.listErr
}

func (f *fakeGateway) CreateMemo(ctx context.Context, data models.CreateMemoData) (*models.Memo, error) {
	f.lastCreate = data
	return f.createResp, f.createErr
}

func (f *fakeGateway) GetMemoByID(ctx context.Context, id string) (*models.Memo, error) {
	return f.getResp, f.getErr
}

func (f *fakeGateway) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return f.templates, f.templatesErr
}

func (f *fakeGateway) OnSessionExpired(fn func()) {
	f.expired = append(f.expired, fn)
}

// fireSessionExpired imitates the gateway's 401 teardown signal.
func (f *fakeGateway) fireSessionExpired() {
	for _, fn := range f.expired {
		fn()
	}
}
