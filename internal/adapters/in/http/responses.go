package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderItemResponse is the wire projection of one order line.
type OrderItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// OrderResponse is the wire projection of an order. Only allow-listed
// fields appear here; internal bookkeeping like the concurrency version
// never leaves the service.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customerId"`
	TotalAmount int64               `json:"totalAmount"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	DeletedAt   *time.Time          `json:"deletedAt"`
}

// OrderListResponse is the pagination envelope for order listings.
type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Pagination kernel.PageInfo `json:"pagination"`
}

// orderFromAggregate projects a domain aggregate onto the wire shape.
// Used on the write paths, which return the aggregate they changed.
func orderFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:       item.ID().String(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderResponse{
		ID:          aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID().String(),
		TotalAmount: aggregate.TotalAmount(),
		Status:      aggregate.Status().String(),
		Items:       items,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		DeletedAt:   aggregate.DeletedAt(),
	}
}

// orderFromQuery projects a read-side result onto the wire shape.
// Read results never contain soft-deleted orders, so deletedAt is null.
func orderFromQuery(result queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return OrderResponse{
		ID:          result.ID.String(),
		CustomerID:  result.CustomerID.String(),
		TotalAmount: result.TotalAmount,
		Status:      result.Status.String(),
		Items:       items,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}
}
