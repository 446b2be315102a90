package catalog

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

type SearchField string

const (
	SearchByName SearchField = "name"
	SearchBySKU  SearchField = "sku"
)

var ErrInvalidSearchField = errors.New("search field must be name or sku")

// SearchCriteria selects exactly one of the three catalog retrieval routes:
// the full listing when text is empty, otherwise the name- or sku-filtered
// route. MinQuota only composes with a text filter; on the full listing it
// is deliberately dropped (observed behavior of the upstream contract, kept
// as-is rather than "fixed").
type SearchCriteria struct {
	field    SearchField
	text     string
	minQuota *int
}

func NewSearchCriteria(field, text string, minQuota *int) (SearchCriteria, error) {
	f := SearchField(strings.ToLower(strings.TrimSpace(field)))
	if f != SearchByName && f != SearchBySKU {
		return SearchCriteria{}, ErrInvalidSearchField
	}
	if minQuota != nil && *minQuota < 0 {
		return SearchCriteria{}, ErrNegativeQuota
	}
	return SearchCriteria{
		field:    f,
		text:     strings.TrimSpace(text),
		minQuota: minQuota,
	}, nil
}

// ListAll returns the criteria for the unfiltered catalog listing.
func ListAll() SearchCriteria {
	return SearchCriteria{field: SearchByName}
}

func (c SearchCriteria) IsListAll() bool {
	return c.text == ""
}

func (c SearchCriteria) Field() SearchField { return c.field }
func (c SearchCriteria) Text() string       { return c.text }

func (c SearchCriteria) MinQuota() *int {
	if c.IsListAll() {
		return nil
	}
	return c.minQuota
}

// UpstreamPath maps the criteria to its single upstream route, relative to
// the backend base URL.
func (c SearchCriteria) UpstreamPath() string {
	if c.IsListAll() {
		return "/catalog"
	}

	path := "/catalog/" + string(c.field) + "/" + url.PathEscape(c.text)
	if c.minQuota != nil {
		q := url.Values{}
		q.Set("minQuota", strconv.Itoa(*c.minQuota))
		path += "?" + q.Encode()
	}
	return path
}
