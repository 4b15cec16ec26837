// Package admin builds the change-list pages and handles the panel's write
// actions. It owns no data: every render fetches the full entity list from
// the remote API, filters and searches it in memory, and throws it away when
// the response is written.
package admin

import (
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"taxiadmin/internal/collection"
	"taxiadmin/internal/flash"
)

// DefaultPageSize is the fixed page size of every change list.
const DefaultPageSize = 20

// Column describes one change-list column: a header and a cell renderer
// producing display-ready HTML.
type Column[T any] struct {
	Title string
	Cell  func(T) template.HTML
}

// ParamFilter binds a request parameter (status=, role=, booking_type=) to a
// predicate. It runs on the raw fetched slice before it is wrapped in a
// Collection; the Collection's own Filter is a documented no-op, so this is
// the only place narrowing actually happens.
type ParamFilter[T any] struct {
	Param string
	Match func(item T, value string) bool
}

// Permissions carries the flags the list template renders. The panel is
// read/forward-only: Add and Delete are false for every entity.
type Permissions struct {
	Add    bool
	Change bool
	Delete bool
	View   bool
}

// Row is one rendered result row.
type Row struct {
	Cells []template.HTML
	URL   string
}

// Page is the context a change-list template renders.
type Page struct {
	Title       string
	Slug        string
	Columns     []string
	Rows        []Row
	TotalCount  int
	PageNum     int
	NumPages    int
	HasPrev     bool
	HasNext     bool
	SearchTerm  string
	Query       string
	Permissions Permissions
	Messages    []flash.Message
}

// ChangeList renders one entity type as a paginated, searchable list.
type ChangeList[T any] struct {
	Slug         string // URL segment under /admin
	Title        string
	Columns      []Column[T]
	SearchFields []string
	Filters      []ParamFilter[T]
	PageSize     int

	// Fetch materializes the full entity list from the remote API.
	Fetch func(ctx context.Context) []T

	// ID extracts the object id used to build row links.
	ID func(T) uint
}

// Render builds the page for the given query parameters: fetch, parameter
// filters on the raw slice, wrap in a Collection, search, paginate, render
// cells. A panic anywhere in that pipeline (a cell renderer tripping over an
// unexpected record, say) is returned as an error so the handler can fall
// back to the default rendering with a visible banner instead of a 500.
func (l *ChangeList[T]) Render(ctx context.Context, query url.Values) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			page = nil
			err = fmt.Errorf("render %s change list: %v", l.Slug, r)
		}
	}()

	items := l.Fetch(ctx)
	for _, f := range l.Filters {
		value := query.Get(f.Param)
		if value == "" {
			continue
		}
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if f.Match(item, value) {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	col := collection.New(items)
	term := strings.TrimSpace(query.Get("q"))
	if term != "" {
		col = col.Search(term, l.SearchFields)
	}

	total := col.Count()
	size := l.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	numPages := (total + size - 1) / size
	if numPages < 1 {
		numPages = 1
	}
	pageNum := clampPage(query.Get("p"), numPages)

	start := (pageNum - 1) * size
	pageCol := col.Slice(start, start+size)

	rows := make([]Row, 0, pageCol.Count())
	for _, item := range pageCol.Items() {
		cells := make([]template.HTML, 0, len(l.Columns))
		for _, column := range l.Columns {
			cells = append(cells, column.Cell(item))
		}
		rows = append(rows, Row{
			Cells: cells,
			URL:   fmt.Sprintf("/admin/%s/%d", l.Slug, l.ID(item)),
		})
	}

	titles := make([]string, 0, len(l.Columns))
	for _, column := range l.Columns {
		titles = append(titles, column.Title)
	}

	return &Page{
		Title:       l.Title,
		Slug:        l.Slug,
		Columns:     titles,
		Rows:        rows,
		TotalCount:  total,
		PageNum:     pageNum,
		NumPages:    numPages,
		HasPrev:     pageNum > 1,
		HasNext:     pageNum < numPages,
		SearchTerm:  term,
		Query:       preservedQuery(query),
		Permissions: l.permissions(),
	}, nil
}

// Empty is the default rendering used when Render fails: the same page shell
// with no rows, so the template and its banners still work.
func (l *ChangeList[T]) Empty() *Page {
	titles := make([]string, 0, len(l.Columns))
	for _, column := range l.Columns {
		titles = append(titles, column.Title)
	}
	return &Page{
		Title:       l.Title,
		Slug:        l.Slug,
		Columns:     titles,
		PageNum:     1,
		NumPages:    1,
		Permissions: l.permissions(),
	}
}

func (l *ChangeList[T]) permissions() Permissions {
	return Permissions{Add: false, Change: true, Delete: false, View: true}
}

// clampPage parses the page parameter. Non-numeric or out-of-range values
// fall back to page 1: a bad page number renders the first page, never an
// error page.
func clampPage(raw string, numPages int) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 || page > numPages {
		return 1
	}
	return page
}

// preservedQuery keeps filter and search parameters in pagination links,
// dropping the page number itself.
func preservedQuery(query url.Values) string {
	kept := url.Values{}
	for key, values := range query {
		if key == "p" {
			continue
		}
		for _, v := range values {
			kept.Add(key, v)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return kept.Encode()
}
