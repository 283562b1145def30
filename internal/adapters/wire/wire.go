// Package wire defines the JSON representations shared by the HTTP server
// and the HTTP store client. Both sides map through the same types, so the
// wire format lives in exactly one place.
package wire

import (
	"time"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
	"thumathina/internal/pkg/errs"
)

// Error is the JSON error body for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLine is one order line on the wire.
type OrderLine struct {
	ListingID string `json:"listingId"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
}

// Order is an order on the wire.
type Order struct {
	ID            string      `json:"id"`
	RetailerID    string      `json:"retailerId"`
	PickupPointID *string     `json:"pickupPointId,omitempty"`
	DriverID      *string     `json:"driverId,omitempty"`
	Lines         []OrderLine `json:"lines"`
	Total         int64       `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Application is a role application on the wire. Payload fields not
// relevant to the role are omitted.
type Application struct {
	ID                  string     `json:"id"`
	Applicant           string     `json:"applicant"`
	Role                string     `json:"role"`
	FullName            string     `json:"fullName,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	VehicleType         string     `json:"vehicleType,omitempty"`
	VehicleRegistration string     `json:"vehicleRegistration,omitempty"`
	BusinessName        string     `json:"businessName,omitempty"`
	Address             string     `json:"address,omitempty"`
	DocumentRefs        []string   `json:"documentRefs"`
	Status              string     `json:"status"`
	RejectReason        string     `json:"rejectReason,omitempty"`
	SubmittedAt         time.Time  `json:"submittedAt"`
	ReviewedAt          *time.Time `json:"reviewedAt,omitempty"`
}

// Listing is a retailer listing on the wire.
type Listing struct {
	ID         string `json:"id"`
	RetailerID string `json:"retailerId"`
	Title      string `json:"title"`
	UnitPrice  int64  `json:"unitPrice"`
	Available  bool   `json:"available"`
}

// UpdateOrderStatusRequest is the body of a status transition request.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ReviewApplicationRequest is the body of a review verdict request.
type ReviewApplicationRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// FromOrder converts an order aggregate to its wire form.
func FromOrder(o *order.Order) Order {
	var pickupPointID, driverID *string
	if id := o.PickupPointID(); id != nil {
		s := id.String()
		pickupPointID = &s
	}
	if id := o.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLine{
			ListingID: line.ListingID().String(),
			Qty:       line.Qty(),
			UnitPrice: line.UnitPrice().Amount(),
		})
	}

	return Order{
		ID:            o.ID().String(),
		RetailerID:    o.RetailerID().String(),
		PickupPointID: pickupPointID,
		DriverID:      driverID,
		Lines:         lines,
		Total:         o.Total().Amount(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

// ToOrder converts a wire order back to the aggregate.
func ToOrder(dto Order) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromString(dto.RetailerID)
	if err != nil {
		return nil, err
	}

	var pickupPointID, driverID *kernel.UUID
	if dto.PickupPointID != nil {
		ppID, ppErr := kernel.UUIDFromString(*dto.PickupPointID)
		if ppErr != nil {
			return nil, ppErr
		}
		pickupPointID = &ppID
	}
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromString(*dto.DriverID)
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}

	lines, err := ToLines(dto.Lines)
	if err != nil {
		return nil, err
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

// ToLines converts wire order lines to domain lines.
func ToLines(dtos []OrderLine) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(dtos))
	for _, dto := range dtos {
		listingID, err := kernel.UUIDFromString(dto.ListingID)
		if err != nil {
			return nil, err
		}

		price, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(listingID, dto.Qty, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// FromApplication converts an application aggregate to its wire form.
func FromApplication(a *application.Application) Application {
	dto := Application{
		ID:          a.ID().String(),
		Applicant:   a.Applicant().String(),
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

	for _, ref := range a.DocumentRefs() {
		dto.DocumentRefs = append(dto.DocumentRefs, ref.String())
	}

	return dto
}

// ToApplication converts a wire application back to the aggregate.
func ToApplication(dto Application) (*application.Application, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	applicant, err := kernel.UUIDFromString(dto.Applicant)
	if err != nil {
		return nil, err
	}

	payload, err := ToPayload(dto)
	if err != nil {
		return nil, err
	}

	documentRefs := make([]kernel.UUID, 0, len(dto.DocumentRefs))
	for _, raw := range dto.DocumentRefs {
		ref, refErr := kernel.UUIDFromString(raw)
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

// ToPayload reconstructs the role-specific payload from the wire form.
func ToPayload(dto Application) (application.Payload, error) {
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

// FromListing converts a listing to its wire form.
func FromListing(l *retailer.Listing) Listing {
	return Listing{
		ID:         l.ID().String(),
		RetailerID: l.RetailerID().String(),
		Title:      l.Title(),
		UnitPrice:  l.UnitPrice().Amount(),
		Available:  l.Available(),
	}
}

// ToListing converts a wire listing back to the domain type.
func ToListing(dto Listing) (*retailer.Listing, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromString(dto.RetailerID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return retailer.NewListing(id, retailerID, dto.Title, price, dto.Available)
}
