package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"
)

const (
	// DefaultPage is the page number used when the caller does not supply one.
	DefaultPage = 1

	// DefaultLimit is the page size used when the caller does not supply one.
	DefaultLimit = 10

	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// SortDirection is the direction of an explicit ordering.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Validate checks that the direction is one of the two supported values.
func (d SortDirection) Validate() error {
	if d != SortAsc && d != SortDesc {
		return errs.NewValueIsInvalidErrorWithCause(
			"direction",
			fmt.Errorf("%q is not a valid sort direction", string(d)),
		)
	}
	return nil
}

// OrderBy is a value object describing an explicit result ordering.
// The zero value is invalid; construct via NewOrderBy.
type OrderBy struct {
	field     string
	direction SortDirection
}

// NewOrderBy creates an ordering over the given field and direction.
// The field must be non-empty; the direction must be SortAsc or SortDesc.
// Whether the field itself is sortable is decided by the repository,
// which owns the set of queryable columns.
func NewOrderBy(field string, direction SortDirection) (OrderBy, error) {
	if field == "" {
		return OrderBy{}, errs.NewValueIsRequiredError("field")
	}
	if err := direction.Validate(); err != nil {
		return OrderBy{}, err
	}
	return OrderBy{field: field, direction: direction}, nil
}

// Field returns the field the results are ordered by.
func (o OrderBy) Field() string {
	return o.field
}

// Direction returns the ordering direction.
func (o OrderBy) Direction() SortDirection {
	return o.direction
}

// PageRequest is a value object describing which page of a collection the
// caller wants. The zero value is invalid; construct via NewPageRequest or
// DefaultPageRequest.
//
// A page request carries:
//   - page: 1-based page number, at least 1
//   - limit: page size, between 1 and MaxLimit
//   - orderBy: optional explicit ordering; when absent, callers fall back to
//     their default ordering (newest first for orders)
type PageRequest struct {
	page    int
	limit   int
	orderBy *OrderBy
}

// NewPageRequest creates a page request with validated bounds.
// Page must be at least 1 and limit must be in [1, MaxLimit].
func NewPageRequest(page, limit int) (PageRequest, error) {
	if page < DefaultPage {
		return PageRequest{}, errs.NewValueIsInvalidErrorWithCause(
			"page",
			fmt.Errorf("%d is not greater than 0", page),
		)
	}
	if limit < 1 || limit > MaxLimit {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	}
	return PageRequest{page: page, limit: limit}, nil
}

// DefaultPageRequest returns the first page with the default page size.
func DefaultPageRequest() PageRequest {
	return PageRequest{page: DefaultPage, limit: DefaultLimit}
}

// WithOrderBy returns a copy of the request carrying an explicit ordering.
func (p PageRequest) WithOrderBy(orderBy OrderBy) PageRequest {
	p.orderBy = &orderBy
	return p
}

// Page returns the 1-based page number.
func (p PageRequest) Page() int {
	return p.page
}

// Limit returns the page size.
func (p PageRequest) Limit() int {
	return p.limit
}

// OrderBy returns the explicit ordering, or nil when the caller did not
// request one.
func (p PageRequest) OrderBy() *OrderBy {
	return p.orderBy
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.page - 1) * p.limit
}

// Validate checks that the request was built through a constructor.
func (p PageRequest) Validate() error {
	if p.page == 0 || p.limit == 0 {
		return errs.NewValueIsRequiredError(
			"PageRequest must be created via NewPageRequest or DefaultPageRequest",
		)
	}
	return nil
}

// PageInfo is the pagination metadata attached to a page of results.
// TotalPages, HasNext and HasPrev are derived from page, limit and total.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageInfo derives the pagination envelope metadata for a page.
// TotalPages is the ceiling of total/limit; HasNext and HasPrev describe
// whether pages exist after and before the current one.
func NewPageInfo(page, limit int, total int64) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
