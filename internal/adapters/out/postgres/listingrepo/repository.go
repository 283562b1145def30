// Package listingrepo provides persistence for retailer listings. Listings
// are read-heavy reference data: checkout validates order lines against
// them, but nothing in this service writes them besides seeding.
package listingrepo

import (
	"context"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/retailer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingDTO represents the database structure for retailer listings.
type ListingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RetailerID uuid.UUID `gorm:"type:uuid;index"`
	Title      string
	UnitPrice  int64
	Available  bool
}

// TableName specifies the database table name for listings.
func (ListingDTO) TableName() string {
	return "listings"
}

// GormListingRepository implements listing reads using GORM.
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// Add inserts a listing. Used by seeding and tests.
func (r *GormListingRepository) Add(ctx context.Context, listing *retailer.Listing) error {
	dto := ListingDTO{
		ID:         listing.ID().Bytes(),
		RetailerID: listing.RetailerID().Bytes(),
		Title:      listing.Title(),
		UnitPrice:  listing.UnitPrice().Amount(),
		Available:  listing.Available(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByRetailer retrieves the retailer's listings.
func (r *GormListingRepository) GetByRetailer(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*retailer.Listing, error) {
	if err := retailerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ListingDTO
	err := r.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID.Bytes()).
		Order("title ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	listings := make([]*retailer.Listing, 0, len(dtos))
	for _, dto := range dtos {
		listing, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func toDomain(dto ListingDTO) (*retailer.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return retailer.NewListing(id, retailerID, dto.Title, price, dto.Available)
}
