package client

import "context"

// FetchFunc loads one page of results for the controller.
type FetchFunc[T any] func(ctx context.Context, q ListQuery) (*Page[T], error)

// ListController drives a paginated, searchable list view. Pages are
// 1-based. State is committed only when a fetch succeeds; a failed fetch
// leaves the previously displayed page, size, query and items untouched, so
// the view never shows a half-applied transition.
//
// Mutations are deliberately outside its scope: after a create, update or
// delete the caller decides whether to call Refresh.
type ListController[T any] struct {
	fetch FetchFunc[T]

	query   string
	page    int
	perPage int

	items []T
	total int64
}

const defaultPageSize = 10

// NewListController returns a controller starting at page 1 with the given
// page size (or defaultPageSize when size <= 0).
func NewListController[T any](fetch FetchFunc[T], size int) *ListController[T] {
	if size <= 0 {
		size = defaultPageSize
	}
	return &ListController[T]{
		fetch:   fetch,
		page:    1,
		perPage: size,
	}
}

// Items returns the current page of results.
func (l *ListController[T]) Items() []T { return l.items }

// Total returns the total number of matching rows across all pages.
func (l *ListController[T]) Total() int64 { return l.total }

// Page returns the 1-based current page.
func (l *ListController[T]) Page() int { return l.page }

// PageSize returns the rows-per-page setting.
func (l *ListController[T]) PageSize() int { return l.perPage }

// Query returns the active search text.
func (l *ListController[T]) Query() string { return l.query }

// Fetch loads the current page/size/query.
func (l *ListController[T]) Fetch(ctx context.Context) error {
	return l.load(ctx, l.query, l.page, l.perPage)
}

// Refresh is Fetch under a name that states intent: re-run the active view,
// typically after a mutation elsewhere changed the underlying data.
func (l *ListController[T]) Refresh(ctx context.Context) error {
	return l.Fetch(ctx)
}

// Search applies a new query. The page resets to 1 so results are shown
// from the beginning of the new match set.
func (l *ListController[T]) Search(ctx context.Context, query string) error {
	return l.load(ctx, query, 1, l.perPage)
}

// SetPage navigates to page p, preserving the query and page size.
func (l *ListController[T]) SetPage(ctx context.Context, p int) error {
	if p < 1 {
		p = 1
	}
	return l.load(ctx, l.query, p, l.perPage)
}

// SetPageSize changes the rows-per-page and returns to page 1, preserving
// the query.
func (l *ListController[T]) SetPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		size = defaultPageSize
	}
	return l.load(ctx, l.query, 1, size)
}

func (l *ListController[T]) load(ctx context.Context, query string, page, perPage int) error {
	result, err := l.fetch(ctx, ListQuery{Query: query, Page: page, PerPage: perPage})
	if err != nil {
		return err
	}

	l.query = query
	l.page = page
	l.perPage = perPage
	l.items = result.Items
	l.total = result.Total

	// The server clamps out-of-range pages; trust its echo when present.
	if result.Current > 0 {
		l.page = result.Current
	}
	if result.Size > 0 {
		l.perPage = result.Size
	}
	return nil
}
