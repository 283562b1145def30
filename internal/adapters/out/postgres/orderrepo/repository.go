package orderrepo

import (
	"context"
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements order persistence using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateStatus moves the order row from its expected current status to the
// new one. The status predicate makes the write conditional: a concurrent
// transition that got there first leaves zero affected rows, reported as
// a conflict.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expectedStatus.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order was modified concurrently")
	}

	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order regardless of status, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

// GetEligibleForDriver retrieves the orders the driver may take or already
// carries: confirmed orders, assigned orders without a driver, and assigned
// or out-for-delivery orders carried by this driver.
func (r *GormOrderRepository) GetEligibleForDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Where(
		"status = ? OR (status = ? AND driver_id IS NULL) OR (driver_id = ? AND status IN ?)",
		order.Confirmed.String(),
		order.Assigned.String(),
		driverID.Bytes(),
		[]string{order.Assigned.String(), order.OutForDelivery.String()},
	)

	return r.list(ctx, tx)
}

// GetByRetailer retrieves the orders referencing the retailer.
func (r *GormOrderRepository) GetByRetailer(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*order.Order, error) {
	if err := retailerID.Validate(); err != nil {
		return nil, err
	}

	return r.list(ctx, r.db.WithContext(ctx).Where("retailer_id = ?", retailerID.Bytes()))
}

// GetByPickupPoint retrieves the orders bound to the pickup point.
func (r *GormOrderRepository) GetByPickupPoint(
	ctx context.Context,
	pickupPointID kernel.UUID,
) ([]*order.Order, error) {
	if err := pickupPointID.Validate(); err != nil {
		return nil, err
	}

	return r.list(ctx, r.db.WithContext(ctx).Where("pickup_point_id = ?", pickupPointID.Bytes()))
}

func (r *GormOrderRepository) list(_ context.Context, tx *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := tx.Preload("Lines").Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
