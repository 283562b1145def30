package applicationrepo

import (
	"context"
	"errors"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements role-application persistence using GORM.
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GORM application repository.
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Add inserts a new application row with its document references.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists a review verdict on an existing application row.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"reject_reason": dto.RejectReason,
			"reviewed_at":   dto.ReviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("applicationId", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an application by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		Preload("DocumentRefs").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("applicationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatest retrieves the applicant's most recent application for the role.
func (r *GormApplicationRepository) GetLatest(
	ctx context.Context,
	role kernel.Role,
	applicant kernel.UUID,
) (*application.Application, error) {
	if err := applicant.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		Preload("DocumentRefs").
		Where("applicant = ? AND role = ?", applicant.Bytes(), string(role)).
		Order("submitted_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", applicant.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every application awaiting review, oldest first
// so the review inbox is worked in submission order.
func (r *GormApplicationRepository) GetAllPending(ctx context.Context) ([]*application.Application, error) {
	var dtos []ApplicationDTO
	err := r.db.WithContext(ctx).
		Preload("DocumentRefs").
		Where("status = ?", application.StatusPending().String()).
		Order("submitted_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	applications := make([]*application.Application, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	return applications, nil
}
