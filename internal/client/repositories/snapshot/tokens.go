package snapshot

import "context"

// TokenSource adapts a Repository to the gateway's token-store seam:
// it yields the persisted bearer token for outgoing requests and wipes
// the whole snapshot on authorization expiry.
type TokenSource struct {
	repo Repository
}

func NewTokenSource(repo Repository) *TokenSource {
	return &TokenSource{repo: repo}
}

// Token returns the stored bearer token, or "" when none is persisted.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	value, err := t.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Clear removes all snapshot entries, not just the token: an expired
// session invalidates the persisted identity as a whole.
func (t *TokenSource) Clear(ctx context.Context) error {
	return t.repo.Clear(ctx)
}
