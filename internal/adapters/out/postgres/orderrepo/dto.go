// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by retailer, pickup point, driver, and status to serve the
// role-scoped order views without table scans.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RetailerID    uuid.UUID  `gorm:"type:uuid;index"`
	PickupPointID *uuid.UUID `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	Total         int64
	Status        string         `gorm:"type:varchar(32);index"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents a single order line row.
type OrderLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ListingID uuid.UUID `gorm:"type:uuid"`
	Qty       int
	UnitPrice int64
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var pickupPointID, driverID *uuid.UUID
	if id := o.PickupPointID(); id != nil {
		raw := id.Bytes()
		pickupPointID = &raw
	}
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   o.ID().Bytes(),
			Position:  i,
			ListingID: line.ListingID().Bytes(),
			Qty:       line.Qty(),
			UnitPrice: line.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		RetailerID:    o.RetailerID().Bytes(),
		PickupPointID: pickupPointID,
		DriverID:      driverID,
		Total:         o.Total().Amount(),
		Status:        o.Status().String(),
		Lines:         lines,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-checks line and total consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}

	var pickupPointID, driverID *kernel.UUID
	if dto.PickupPointID != nil {
		ppID, ppErr := kernel.UUIDFromBytes((*dto.PickupPointID)[:])
		if ppErr != nil {
			return nil, ppErr
		}
		pickupPointID = &ppID
	}
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		listingID, lineErr := kernel.UUIDFromBytes(lineDTO.ListingID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		price, lineErr := kernel.NewMoney(lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(listingID, lineDTO.Qty, price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, retailerID, pickupPointID, driverID,
		lines, total, status, dto.CreatedAt, dto.UpdatedAt,
	)
}
