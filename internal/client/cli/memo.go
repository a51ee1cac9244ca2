package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/memopad/internal/client/models"
)

// list refreshes both collections and prints memos grouped by creation day,
// newest day first, each memo decorated with its resolved template.
func (a *App) list(ctx context.Context) {
	a.memos.FetchMemos(ctx)
	a.memos.FetchTemplates(ctx)
	if msg := a.memos.ErrorMessage(); msg != "" {
		// Stale data is still shown below, matching the web client.
		fmt.Fprintln(a.out, msg)
	}

	groups := a.memos.MemosByDate()
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No memos yet. Use 'new' to create one.")
		return
	}

	for _, g := range groups {
		fmt.Fprintf(a.out, "%s\n", g.Label)
		for _, m := range g.Memos {
			glyph := " "
			name := ""
			if tpl := a.memos.TemplateByID(m.TemplateID); tpl != nil {
				glyph = tpl.Preview
				name = tpl.Name
			}
			fmt.Fprintf(a.out, "  %s  [%s] %s (%s)\n", glyph, m.ID, m.Title, name)
		}
	}
}

// show prints a memo from the cached collection; it never fetches.
func (a *App) show(id string) {
	memo := a.memos.GetMemoByID(id)
	if memo == nil {
		fmt.Fprintln(a.out, "Memo not found (try 'list' first)")
		return
	}

	tplName := ""
	if tpl := a.memos.TemplateByID(memo.TemplateID); tpl != nil {
		tplName = tpl.Name
	}

	fmt.Fprintf(a.out, "%s\n", memo.Title)
	fmt.Fprintf(a.out, "template: %s | created: %s\n", tplName, memo.CreatedAt.Local().Format("January 2, 2006 15:04"))
	fmt.Fprintln(a.out, memo.Content)
}

func (a *App) listTemplates(ctx context.Context) {
	a.memos.FetchTemplates(ctx)
	if msg := a.memos.ErrorMessage(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}
	for _, t := range a.memos.Templates() {
		fmt.Fprintf(a.out, "  %s  [%s] %s\n", t.Preview, t.ID, t.Name)
	}
}

// createMemo collects the form input, validates it field by field before
// any network call, and submits it to the memo store.
func (a *App) createMemo(ctx context.Context) {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Please login first")
		return
	}

	if len(a.memos.Templates()) == 0 {
		a.memos.FetchTemplates(ctx)
	}
	templates := a.memos.Templates()

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	for _, t := range templates {
		fmt.Fprintf(a.out, "  %s  [%s] %s\n", t.Preview, t.ID, t.Name)
	}
	templateID, err := GetSimpleText(a.reader, "Choose a template id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	data := models.CreateMemoData{Title: title, Content: content, TemplateID: templateID}
	if err := data.Validate(); err != nil {
		printFieldErrors(a, err)
		return
	}

	memo := a.memos.CreateMemo(ctx, data)
	if memo == nil {
		fmt.Fprintln(a.out, a.memos.ErrorMessage())
		return
	}
	fmt.Fprintf(a.out, "Created memo %s\n", memo.ID)
}

func printFieldErrors(a *App, err error) {
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		fmt.Fprintln(a.out, err)
		return
	}
	fields := make([]string, 0, len(ve.Fields))
	for f := range ve.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f, ve.Fields[f])
	}
}
