// Package applicationrepo provides data transfer objects and mapping functions
// for role-application persistence. Applications are append-only: a
// resubmission inserts a new row, and reads pick the most recent one per
// applicant and role.
package applicationrepo

import (
	"time"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"

	"github.com/google/uuid"
)

// ApplicationDTO represents the database structure for persisting role
// applications. Payload fields for both gated roles share the table; the
// Role column decides which set is meaningful.
type ApplicationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Applicant uuid.UUID `gorm:"type:uuid;index:idx_applicant_role"`
	Role      string    `gorm:"type:varchar(32);index:idx_applicant_role"`

	FullName            string
	Phone               string
	VehicleType         string
	VehicleRegistration string
	BusinessName        string
	Address             string

	Status       string `gorm:"type:varchar(16);index"`
	RejectReason string
	DocumentRefs []ApplicationDocumentDTO `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	SubmittedAt  time.Time
	ReviewedAt   *time.Time
}

// TableName specifies the database table name for applications.
func (ApplicationDTO) TableName() string {
	return "role_applications"
}

// ApplicationDocumentDTO references a document blob backing an application.
type ApplicationDocumentDTO struct {
	ApplicationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int       `gorm:"primaryKey"`
	Ref           uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for application documents.
func (ApplicationDocumentDTO) TableName() string {
	return "role_application_documents"
}

// fromDomain converts an application aggregate to its database representation.
func fromDomain(a *application.Application) ApplicationDTO {
	dto := ApplicationDTO{
		ID:          a.ID().Bytes(),
		Applicant:   a.Applicant().Bytes(),
		Role:        string(a.Role()),
		Status:      a.Status().String(),
		SubmittedAt: a.SubmittedAt(),
		ReviewedAt:  a.ReviewedAt(),
	}

	if reason, ok := a.Status().Reason(); ok {
		dto.RejectReason = reason
	}

	switch payload := a.Payload().(type) {
	case application.DriverPayload:
		dto.FullName = payload.FullName()
		dto.Phone = payload.Phone()
		dto.VehicleType = payload.VehicleType()
		dto.VehicleRegistration = payload.VehicleRegistration()
	case application.PickupPointPayload:
		dto.BusinessName = payload.BusinessName()
		dto.Phone = payload.Phone()
		dto.Address = payload.Address()
	}

	for i, ref := range a.DocumentRefs() {
		dto.DocumentRefs = append(dto.DocumentRefs, ApplicationDocumentDTO{
			ApplicationID: a.ID().Bytes(),
			Position:      i,
			Ref:           ref.Bytes(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an application aggregate.
func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	applicant, err := kernel.UUIDFromBytes(dto.Applicant[:])
	if err != nil {
		return nil, err
	}

	payload, err := payloadFromDTO(dto)
	if err != nil {
		return nil, err
	}

	documentRefs := make([]kernel.UUID, 0, len(dto.DocumentRefs))
	for _, doc := range dto.DocumentRefs {
		ref, refErr := kernel.UUIDFromBytes(doc.Ref[:])
		if refErr != nil {
			return nil, refErr
		}
		documentRefs = append(documentRefs, ref)
	}

	status, err := application.StatusFromString(dto.Status, dto.RejectReason)
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(
		id, applicant, payload, documentRefs, status, dto.SubmittedAt, dto.ReviewedAt,
	)
}

func payloadFromDTO(dto ApplicationDTO) (application.Payload, error) {
	switch kernel.Role(dto.Role) {
	case kernel.RoleDriver:
		return application.NewDriverPayload(
			dto.FullName, dto.Phone, dto.VehicleType, dto.VehicleRegistration)
	case kernel.RolePickupPoint:
		return application.NewPickupPointPayload(dto.BusinessName, dto.Phone, dto.Address)
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}
