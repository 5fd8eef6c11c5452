package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves one page of orders, optionally narrowed to a
// single lifecycle status. Soft-deleted orders are never returned.
//
// Example:
//
//	page, _ := kernel.NewPageRequest(2, 25)
//	status := order.Pending
//	query, err := NewGetOrdersQuery(&status, page)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status *order.Status
	page   kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders.
// A nil status means no status filtering.
func NewGetOrdersQuery(status *order.Status, page kernel.PageRequest) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if err := page.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status: status,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter, nil when unfiltered.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the pagination request.
func (q GetOrdersQuery) Page() kernel.PageRequest {
	return q.page
}

// GetOrdersQueryResponse is one page of orders together with the
// pagination envelope metadata.
type GetOrdersQueryResponse struct {
	Orders     []OrderResponse
	Pagination kernel.PageInfo
}
