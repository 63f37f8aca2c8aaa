package models

import (
	"net/url"
	"strconv"
)

// ListFilter narrows a list request. Zero-value fields are omitted from the
// query string entirely, matching the service's optional-parameter contract.
type ListFilter struct {
	Category  Category
	MinAmount *float64
	MaxAmount *float64
	DateFrom  *Date
	DateTo    *Date
	Query     string

	Offset int
	Limit  int
}

// Values encodes the filter as URL query parameters.
func (f ListFilter) Values() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", string(f.Category))
	}
	if f.MinAmount != nil {
		q.Set("min_amount", strconv.FormatFloat(*f.MinAmount, 'f', -1, 64))
	}
	if f.MaxAmount != nil {
		q.Set("max_amount", strconv.FormatFloat(*f.MaxAmount, 'f', -1, 64))
	}
	if f.DateFrom != nil {
		q.Set("date_from", f.DateFrom.String())
	}
	if f.DateTo != nil {
		q.Set("date_to", f.DateTo.String())
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}
