package gateway

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/memopad/internal/client/models"
	"github.com/dmitrijs2005/memopad/internal/logging"
)

// FixtureToken is the bearer token issued by the fixture gateway.
const FixtureToken = "mock-jwt-token"

func seedTemplates() []models.Template {
	return []models.Template{
		{ID: "1", Name: "Classic White", BackgroundColor: "#ffffff", TextColor: "#333333",
			BorderStyle: "1px solid #e0e0e0", ShadowStyle: "0 2px 8px rgba(0,0,0,0.1)", Preview: "🎨"},
		{ID: "2", Name: "Dark Theme", BackgroundColor: "#2c3e50", TextColor: "#ecf0f1",
			BorderStyle: "1px solid #34495e", ShadowStyle: "0 4px 12px rgba(0,0,0,0.3)", Preview: "🌙"},
		{ID: "3", Name: "Warm Beige", BackgroundColor: "#f5f5dc", TextColor: "#8b4513",
			BorderStyle: "2px solid #d2b48c", ShadowStyle: "0 3px 10px rgba(139,69,19,0.2)", Preview: "☕"},
		{ID: "4", Name: "Ocean Blue", BackgroundColor: "#e8f4f8", TextColor: "#2c3e50",
			BorderStyle: "1px solid #3498db", ShadowStyle: "0 2px 8px rgba(52,152,219,0.2)", Preview: "🌊"},
	}
}

func seedMemos() []models.Memo {
	return []models.Memo{
		{ID: "1", Title: "Welcome to Memo App",
			Content:    "This is your first memo. Start creating beautiful notes with our design templates!",
			TemplateID: "1", UserID: "1",
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "2", Title: "Shopping List",
			Content:    "1. Groceries\n2. Home supplies\n3. Books\n4. Electronics",
			TemplateID: "2", UserID: "1",
			CreatedAt: time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC)},
		{ID: "3", Title: "Meeting Notes",
			Content:    "Team meeting discussion points:\n- Project timeline\n- Resource allocation\n- Next steps",
			TemplateID: "3", UserID: "1",
			CreatedAt: time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC)},
	}
}

// FixtureGateway serves an in-process seeded dataset. It is used when no
// remote endpoint is configured. Login and Register never fail; every call
// sleeps for the configured latency to imitate a network round-trip.
type FixtureGateway struct {
	latency time.Duration
	log     logging.Logger

	mu        sync.Mutex
	memos     []models.Memo
	templates []models.Template

	// now is a test seam for timestamp/id generation.
	now func() time.Time
}

var _ Gateway = (*FixtureGateway)(nil)

// NewFixtureGateway returns a gateway seeded with 3 memos and 4 templates.
func NewFixtureGateway(latency time.Duration, log logging.Logger) *FixtureGateway {
	return &FixtureGateway{
		latency:   latency,
		log:       log,
		memos:     seedMemos(),
		templates: seedTemplates(),
		now:       time.Now,
	}
}

// wait imitates network latency while honoring ctx cancellation.
func (g *FixtureGateway) wait(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *FixtureGateway) genID() string {
	return strconv.FormatInt(g.now().UnixMilli(), 10)
}

// Login always succeeds, synthesizing a user from the submitted username.
func (g *FixtureGateway) Login(ctx context.Context, cred models.Credential) (*models.AuthResponse, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.log.Info(ctx, "fixture login", "username", cred.Username)
	return &models.AuthResponse{
		User: models.User{
			ID:       "1",
			Username: cred.Username,
			Email:    cred.Username + "@example.com",
		},
		Token: FixtureToken,
	}, nil
}

// Register always succeeds, synthesizing an id from the current timestamp.
func (g *FixtureGateway) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.log.Info(ctx, "fixture register", "username", data.Username)
	return &models.AuthResponse{
		User: models.User{
			ID:       g.genID(),
			Username: data.Username,
			Email:    data.Email,
		},
		Token: FixtureToken,
	}, nil
}

// Logout always succeeds.
func (g *FixtureGateway) Logout(ctx context.Context) error {
	return g.wait(ctx)
}

// ListMemos returns a copy of the current fixture set, newest-created first.
func (g *FixtureGateway) ListMemos(ctx context.Context) ([]models.Memo, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Memo, len(g.memos))
	copy(out, g.memos)
	return out, nil
}

// CreateMemo assigns an id and timestamps and prepends the record to the
// fixture set, so a subsequent ListMemos sees it first.
func (g *FixtureGateway) CreateMemo(ctx context.Context, data models.CreateMemoData) (*models.Memo, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	now := g.now().UTC()
	memo := models.Memo{
		ID:         g.genID(),
		Title:      data.Title,
		Content:    data.Content,
		TemplateID: data.TemplateID,
		UserID:     "1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	g.mu.Lock()
	g.memos = append([]models.Memo{memo}, g.memos...)
	g.mu.Unlock()
	return &memo, nil
}

// GetMemoByID returns ErrNotFound when no fixture record matches.
func (g *FixtureGateway) GetMemoByID(ctx context.Context, id string) (*models.Memo, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range g.memos {
		if m.ID == id {
			memo := m
			return &memo, nil
		}
	}
	return nil, ErrNotFound
}

// ListTemplates returns a copy of the seeded template collection.
func (g *FixtureGateway) ListTemplates(ctx context.Context) ([]models.Template, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Template, len(g.templates))
	copy(out, g.templates)
	return out, nil
}

// OnSessionExpired is a no-op: fixture sessions never expire.
func (g *FixtureGateway) OnSessionExpired(fn func()) {}
