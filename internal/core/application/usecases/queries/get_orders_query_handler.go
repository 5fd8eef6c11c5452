package queries

import (
	"context"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sortable columns for order listings. Anything outside this set is
// rejected before it can reach the SQL text.
var orderSortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"totalAmount": "total_amount",
	"status":      "status",
}

// GetOrdersQueryHandler reads pages of orders from the database.
// Soft-deleted rows are filtered out explicitly since the read side
// queries the tables directly.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("page %d of %d, %d orders total\n",
//	    result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.Total)
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns one page of orders with
// their items plus the pagination envelope. The default ordering is by
// creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := "deleted_at IS NULL"
	args := make([]any, 0, 1)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, *query.Status())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orderClause, err := sortClause(query.Page().OrderBy())
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	page := query.Page()
	orders, err := h.scanOrders(ctx, where, orderClause, args, page.Limit(), page.Offset())
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		Orders:     orders,
		Pagination: kernel.NewPageInfo(page.Page(), page.Limit(), total),
	}, nil
}

func sortClause(orderBy *kernel.OrderBy) (string, error) {
	if orderBy == nil {
		return "created_at DESC", nil
	}

	column, ok := orderSortColumns[orderBy.Field()]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"orderBy",
			fmt.Errorf("%s is not a sortable field", orderBy.Field()),
		)
	}

	direction := "ASC"
	if orderBy.Direction() == kernel.SortDesc {
		direction = "DESC"
	}

	return column + " " + direction, nil
}

func (h GetOrdersQueryHandler) scanOrders(
	ctx context.Context,
	where, orderClause string,
	args []any,
	limit, offset int,
) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0, limit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			customer_id,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, where, orderClause), append(args, limit, offset)...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var id, customerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&resp.TotalAmount,
			&status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = ownerID

		resp.Status = order.Status(status)
		resp.Items = make([]OrderItemResponse, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the line items for every order on the page in a single
// query and distributes them to their owners.
func (h GetOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		index[o.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			name,
			quantity,
			price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, ownerID uuid.UUID

		if err = rows.Scan(&id, &ownerID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		item.ID = itemID

		orderID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return idErr
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
