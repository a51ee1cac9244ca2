package stores

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/memopad/internal/client/models"
	"github.com/dmitrijs2005/memopad/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func testMemos() []models.Memo {
	return []models.Memo{
		{ID: "1", Title: "newest", TemplateID: "1", CreatedAt: day(2024, 1, 15, 10)},
		{ID: "2", Title: "same day later entry", TemplateID: "2", CreatedAt: day(2024, 1, 15, 9)},
		{ID: "3", Title: "older", TemplateID: "3", CreatedAt: day(2024, 1, 13, 9)},
	}
}

func TestFetchMemos_ReplacesCollection(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})

	s.FetchMemos(context.Background())

	assert.False(t, s.IsLoading())
	assert.Empty(t, s.ErrorMessage())
	require.Len(t, s.Memos(), 3)

	// refetch replaces wholesale
	gw.memos = testMemos()[:1]
	s.FetchMemos(context.Background())
	assert.Len(t, s.Memos(), 1)
}

func TestFetchMemos_FailurePreservesPreviousCollection(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchMemos(context.Background())
	require.Len(t, s.Memos(), 3)

	gw.listErr = fmt.Errorf("server unavailable")
	s.FetchMemos(context.Background())

	assert.Equal(t, "failed to fetch memos", s.ErrorMessage())
	assert.False(t, s.IsLoading())
	assert.Len(t, s.Memos(), 3) // stale data retained
}

func TestFetchTemplates(t *testing.T) {
	gw := &fakeGateway{templates: []models.Template{{ID: "1", Name: "Classic White"}}}
	s := NewMemoStore(gw, logging.NopLogger{})

	s.FetchTemplates(context.Background())
	require.Len(t, s.Templates(), 1)

	gw.templatesErr = fmt.Errorf("boom")
	s.FetchTemplates(context.Background())
	assert.Equal(t, "failed to fetch templates", s.ErrorMessage())
	assert.Len(t, s.Templates(), 1)
}

func TestCreateMemo_PrependsAndIsImmediatelyFindable(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchMemos(context.Background())

	now := time.Now()
	gw.createResp = &models.Memo{ID: "100", Title: "T", Content: "C", TemplateID: "1", CreatedAt: now, UpdatedAt: now}

	memo := s.CreateMemo(context.Background(), models.CreateMemoData{Title: "T", Content: "C", TemplateID: "1"})
	require.NotNil(t, memo)
	assert.Equal(t, "100", memo.ID)
	assert.Equal(t, "T", gw.lastCreate.Title)

	memos := s.Memos()
	require.Len(t, memos, 4)
	assert.Equal(t, "100", memos[0].ID) // prepended at index 0

	found := s.GetMemoByID("100")
	require.NotNil(t, found)
	assert.Equal(t, "T", found.Title)
}

func TestCreateMemo_FailureReturnsNilAndSetsFlag(t *testing.T) {
	gw := &fakeGateway{memos: testMemos(), createErr: fmt.Errorf("boom")}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchMemos(context.Background())

	memo := s.CreateMemo(context.Background(), models.CreateMemoData{Title: "T", Content: "C", TemplateID: "1"})
	assert.Nil(t, memo)
	assert.Equal(t, "failed to create memo", s.ErrorMessage())
	assert.Len(t, s.Memos(), 3)
}

func TestGetMemoByID_AbsentReturnsNilWithoutFetch(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchMemos(context.Background())

	assert.Nil(t, s.GetMemoByID("999"))
}

func TestMemosByDate_GroupsAndOrders(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchMemos(context.Background())

	groups := s.MemosByDate()
	require.Len(t, groups, 2)

	// newest day first
	assert.Equal(t, day(2024, 1, 15, 0), groups[0].Day)
	assert.Equal(t, "January 15, 2024", groups[0].Label)
	assert.Equal(t, day(2024, 1, 13, 0), groups[1].Day)

	// within a group, collection order is preserved, not re-sorted
	require.Len(t, groups[0].Memos, 2)
	assert.Equal(t, "1", groups[0].Memos[0].ID)
	assert.Equal(t, "2", groups[0].Memos[1].ID)
}

func TestMemosByDate_IdempotentWithoutMutation(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchMemos(context.Background())

	first := s.MemosByDate()
	second := s.MemosByDate()
	assert.Equal(t, first, second)
}

func TestMemosByDate_EmptyCollection(t *testing.T) {
	s := NewMemoStore(&fakeGateway{}, logging.NopLogger{})
	assert.Empty(t, s.MemosByDate())
}

func TestTemplateByID_SoftReferenceFallback(t *testing.T) {
	gw := &fakeGateway{templates: []models.Template{
		{ID: "1", Name: "Classic White"},
		{ID: "2", Name: "Dark Theme"},
	}}
	s := NewMemoStore(gw, logging.NopLogger{})
	s.FetchTemplates(context.Background())

	tpl := s.TemplateByID("2")
	require.NotNil(t, tpl)
	assert.Equal(t, "Dark Theme", tpl.Name)

	// dangling reference falls back to the first template
	tpl = s.TemplateByID("999")
	require.NotNil(t, tpl)
	assert.Equal(t, "Classic White", tpl.Name)
}

func TestTemplateByID_NilWhenNoTemplatesCached(t *testing.T) {
	s := NewMemoStore(&fakeGateway{}, logging.NopLogger{})
	assert.Nil(t, s.TemplateByID("1"))
}

func TestMemoStoreSubscribe_NotifiedOnFetch(t *testing.T) {
	gw := &fakeGateway{memos: testMemos()}
	s := NewMemoStore(gw, logging.NopLogger{})

	notified := 0
	s.Subscribe(func() { notified++ })

	s.FetchMemos(context.Background())
	assert.Greater(t, notified, 0)
}
