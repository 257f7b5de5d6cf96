package client

import (
	"encoding/json"
	"fmt"
)

// Page is the canonical list page. Server responses arrive with the items
// under either "list" or "records" depending on the endpoint's vintage; both
// are normalized here so callers only ever see Page.
type Page[T any] struct {
	Items   []T
	Total   int64
	Current int
	Size    int
}

type rawPage struct {
	List    json.RawMessage `json:"list"`
	Records json.RawMessage `json:"records"`
	Total   int64           `json:"total"`
	Current int             `json:"current"`
	Size    int             `json:"size"`
}

func decodePage[T any](data json.RawMessage) (*Page[T], error) {
	var raw rawPage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("client: decode page: %w", err)
	}

	items := raw.List
	if items == nil {
		items = raw.Records
	}

	page := &Page[T]{
		Total:   raw.Total,
		Current: raw.Current,
		Size:    raw.Size,
	}
	if items == nil {
		page.Items = []T{}
		return page, nil
	}
	if err := json.Unmarshal(items, &page.Items); err != nil {
		return nil, fmt.Errorf("client: decode page items: %w", err)
	}
	return page, nil
}
