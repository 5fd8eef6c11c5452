package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Columns a page of orders may be sorted by.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"totalAmount": "total_amount",
	"status":      "status",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
// Soft deletion rides on gorm.DeletedAt, so deleted orders drop out of
// every scoped query automatically.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database in one insert chain.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return errs.NewValueIsInvalidErrorWithCause("orderID", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order with a version-conditioned write. The row
// is touched only when its stored version still matches the aggregate's;
// otherwise a concurrent writer got there first and the update fails with
// a version conflict. Items are immutable and never updated here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":       dto.Status,
			"total_amount": dto.TotalAmount,
			"updated_at":   dto.UpdatedAt,
			"version":      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, without its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetWithItems retrieves an order by ID together with its line items.
func (r *GormOrderRepository) GetWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPage retrieves one page of orders matching the filter, items included,
// plus the pagination envelope. Orders are sorted by creation time
// descending unless the page request carries an explicit ordering.
func (r *GormOrderRepository) GetPage(
	ctx context.Context,
	filter ports.OrderFilter,
	page kernel.PageRequest,
) (ports.OrderPage, error) {
	if err := page.Validate(); err != nil {
		return ports.OrderPage{}, err
	}

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			return db.Where("status = ?", int(*filter.Status))
		}
		return db
	}

	var total int64
	err := scope(r.db.WithContext(ctx).Model(&OrderDTO{})).Count(&total).Error
	if err != nil {
		return ports.OrderPage{}, err
	}

	orderClause := "created_at DESC"
	if orderBy := page.OrderBy(); orderBy != nil {
		column, ok := sortColumns[orderBy.Field()]
		if !ok {
			return ports.OrderPage{}, errs.NewValueIsInvalidError("orderBy")
		}
		orderClause = column + " ASC"
		if orderBy.Direction() == kernel.SortDesc {
			orderClause = column + " DESC"
		}
	}

	var dtos []OrderDTO
	err = scope(r.db.WithContext(ctx).Model(&OrderDTO{})).
		Preload("Items").
		Order(orderClause).
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.OrderPage{}, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return ports.OrderPage{}, convErr
		}
		orders = append(orders, aggregate)
	}

	return ports.OrderPage{
		Orders:     orders,
		Pagination: kernel.NewPageInfo(page.Page(), page.Limit(), total),
	}, nil
}

// Delete removes an order. Soft by default: the row is timestamped as
// deleted and disappears from scoped reads. With hard set, the row is
// removed permanently and its items go with it through the cascading
// foreign key.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID, hard bool) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if hard {
		db = db.Unscoped()
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Restore clears the soft-delete timestamp of an order. Fails with a
// not-found error when no soft-deleted order has the given identifier.
func (r *GormOrderRepository) Restore(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Unscoped().Model(&OrderDTO{}).
		Where("id = ? AND deleted_at IS NOT NULL", id.Bytes()).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// PurgeDeletedBefore permanently removes orders soft-deleted before the
// cutoff. Returns the number of orders removed; zero removals is a normal
// outcome.
func (r *GormOrderRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
