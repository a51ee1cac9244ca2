package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/memopad/internal/client/models"
	"github.com/dmitrijs2005/memopad/internal/logging"
	"github.com/google/uuid"
)

// HTTPGateway talks JSON over HTTP(S) to a configured memo service.
//
// Every request carries an X-Request-Id and, when the token store yields
// one, an Authorization: Bearer header. A 401 response from any call except
// login/register tears the session down client-wide: the persisted snapshot
// is cleared and every OnSessionExpired subscriber is notified.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	tokens  TokenStore
	log     logging.Logger

	mu          sync.Mutex
	subscribers []func()
}

var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway constructs a gateway for the given base URL. The timeout
// applies per request at the transport level; stores surface it as a
// generic failure.
func NewHTTPGateway(baseURL string, timeout time.Duration, tokens TokenStore, log logging.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// OnSessionExpired registers fn to run on any 401-equivalent response.
func (g *HTTPGateway) OnSessionExpired(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subscribers = append(g.subscribers, fn)
}

// expireSession performs the one cross-cutting side effect in the client:
// clear the persisted snapshot, then notify subscribers synchronously.
func (g *HTTPGateway) expireSession(ctx context.Context) {
	if err := g.tokens.Clear(ctx); err != nil {
		g.log.Error(ctx, "clearing session snapshot", "error", err)
	}
	g.mu.Lock()
	subs := make([]func(), len(g.subscribers))
	copy(subs, g.subscribers)
	g.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// do performs one JSON round-trip. authCall marks login/register, where a
// 401 means rejected credentials rather than an expired session.
func (g *HTTPGateway) do(ctx context.Context, method, path string, body any, out any, authCall bool) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := g.tokens.Token(ctx)
	if err != nil {
		g.log.Warn(ctx, "reading bearer token", "error", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		if authCall {
			return ErrUnauthorized
		}
		g.log.Warn(ctx, "authorization expired", "method", method, "path", path)
		g.expireSession(ctx)
		return ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case authCall:
		// Conflict or server-side validation failure on login/register.
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

func (g *HTTPGateway) Login(ctx context.Context, cred models.Credential) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.do(ctx, http.MethodPost, "/auth/login", cred, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.do(ctx, http.MethodPost, "/auth/register", data, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) Logout(ctx context.Context) error {
	return g.do(ctx, http.MethodPost, "/auth/logout", nil, nil, false)
}

func (g *HTTPGateway) ListMemos(ctx context.Context) ([]models.Memo, error) {
	var memos []models.Memo
	if err := g.do(ctx, http.MethodGet, "/memos", nil, &memos, false); err != nil {
		return nil, err
	}
	return memos, nil
}

func (g *HTTPGateway) CreateMemo(ctx context.Context, data models.CreateMemoData) (*models.Memo, error) {
	var memo models.Memo
	if err := g.do(ctx, http.MethodPost, "/memos", data, &memo, false); err != nil {
		return nil, err
	}
	return &memo, nil
}

func (g *HTTPGateway) GetMemoByID(ctx context.Context, id string) (*models.Memo, error) {
	var memo models.Memo
	if err := g.do(ctx, http.MethodGet, "/memos/"+id, nil, &memo, false); err != nil {
		return nil, err
	}
	return &memo, nil
}

func (g *HTTPGateway) ListTemplates(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	if err := g.do(ctx, http.MethodGet, "/templates", nil, &templates, false); err != nil {
		return nil, err
	}
	return templates, nil
}
