package http

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customerId" validate:"required,uuid4"`
	Items      []CreateOrderItemRequest `json:"items"      validate:"required,min=1,dive"`
}

// CreateOrderItemRequest is one order line in a create request.
type CreateOrderItemRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Price    int64  `json:"price"    validate:"required,gt=0"`
}

// UpdateOrderStatusRequest is the payload for PUT /orders/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

// ListOrdersRequest carries the query parameters of GET /orders.
// Zero values mean "not supplied" and fall back to the defaults.
// Direction is only meaningful together with OrderBy and defaults to
// descending when left out.
type ListOrdersRequest struct {
	Status    string `query:"status"    validate:"omitempty,oneof=pending processing completed cancelled"`
	Page      int    `query:"page"      validate:"omitempty,gte=1"`
	Limit     int    `query:"limit"     validate:"omitempty,gte=1,lte=100"`
	OrderBy   string `query:"orderBy"   validate:"required_with=Direction,omitempty,oneof=createdAt updatedAt totalAmount status"`
	Direction string `query:"direction" validate:"omitempty,oneof=asc desc"`
}
