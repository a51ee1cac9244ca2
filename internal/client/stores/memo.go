package stores

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/memopad/internal/client/gateway"
	"github.com/dmitrijs2005/memopad/internal/client/models"
	"github.com/dmitrijs2005/memopad/internal/logging"
)

// dateLabelLayout renders group headers at day granularity.
const dateLabelLayout = "January 2, 2006"

// MemoGroup is one calendar day's worth of memos, as derived by
// MemosByDate. Day is the start of the day in local time.
type MemoGroup struct {
	Day   time.Time
	Label string
	Memos []models.Memo
}

// MemoStore owns the cached memo and template collections. Fetches replace
// a collection wholesale; a successful create prepends. Fetch failures set
// an error flag and keep the previous collection (stale data beats none).
//
// Overlapping calls are not sequenced: the last completion wins, matching
// the service's established behavior. Out-of-order completions can
// therefore surface a stale listing until the next fetch.
type MemoStore struct {
	gw  gateway.Gateway
	log logging.Logger

	mu        sync.Mutex
	memos     []models.Memo
	templates []models.Template
	loading   bool
	errMsg    string
	observers []func()
}

func NewMemoStore(gw gateway.Gateway, log logging.Logger) *MemoStore {
	return &MemoStore{gw: gw, log: log}
}

// Subscribe registers fn to run after every state change.
func (s *MemoStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *MemoStore) notify() {
	s.mu.Lock()
	obs := make([]func(), len(s.observers))
	copy(obs, s.observers)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

func (s *MemoStore) beginCall() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *MemoStore) failCall(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

// Memos returns a copy of the cached collection.
func (s *MemoStore) Memos() []models.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Memo, len(s.memos))
	copy(out, s.memos)
	return out
}

// Templates returns a copy of the cached template collection.
func (s *MemoStore) Templates() []models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *MemoStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage returns the current error flag, "" when clear.
func (s *MemoStore) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// FetchMemos replaces the memo collection with the gateway's listing.
// On failure the previous collection is preserved and the error flag set.
func (s *MemoStore) FetchMemos(ctx context.Context) {
	s.beginCall()

	memos, err := s.gw.ListMemos(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetching memos failed", "error", err)
		s.failCall("failed to fetch memos")
		return
	}

	s.mu.Lock()
	s.memos = memos
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// FetchTemplates mirrors FetchMemos for the template collection.
func (s *MemoStore) FetchTemplates(ctx context.Context) {
	s.beginCall()

	templates, err := s.gw.ListTemplates(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetching templates failed", "error", err)
		s.failCall("failed to fetch templates")
		return
	}

	s.mu.Lock()
	s.templates = templates
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// CreateMemo submits data to the gateway. On success the new memo is
// prepended to the collection and returned; on failure nil is returned
// and the error flag set. Field validation is the caller's job.
func (s *MemoStore) CreateMemo(ctx context.Context, data models.CreateMemoData) *models.Memo {
	s.beginCall()

	memo, err := s.gw.CreateMemo(ctx, data)
	if err != nil {
		s.log.Warn(ctx, "creating memo failed", "error", err)
		s.failCall("failed to create memo")
		return nil
	}

	s.mu.Lock()
	s.memos = append([]models.Memo{*memo}, s.memos...)
	s.loading = false
	s.mu.Unlock()
	s.notify()

	out := *memo
	return &out
}

// GetMemoByID looks the memo up in the cached collection only; it never
// triggers a fetch. Returns nil when absent.
func (s *MemoStore) GetMemoByID(id string) *models.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.memos {
		if m.ID == id {
			memo := m
			return &memo
		}
	}
	return nil
}

// TemplateByID resolves a memo's template reference. The reference is
// soft: a dangling or empty id falls back to the first cached template.
// Returns nil only when no templates are cached at all.
func (s *MemoStore) TemplateByID(id string) *models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.templates {
		if t.ID == id {
			tpl := t
			return &tpl
		}
	}
	if len(s.templates) > 0 {
		tpl := s.templates[0]
		return &tpl
	}
	return nil
}

// MemosByDate groups the cached collection by the calendar day of
// CreatedAt (local time). Groups are ordered newest day first; memos
// within a group keep their collection order, which is newest-created
// first after a create but is not re-sorted here. The result is a
// derived view, recomputed on every call.
func (s *MemoStore) MemosByDate() []MemoGroup {
	memos := s.Memos()

	index := make(map[time.Time]int)
	groups := make([]MemoGroup, 0)

	for _, m := range memos {
		created := m.CreatedAt.Local()
		day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, created.Location())
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, MemoGroup{Day: day, Label: day.Format(dateLabelLayout)})
		}
		groups[i].Memos = append(groups[i].Memos, m)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}
