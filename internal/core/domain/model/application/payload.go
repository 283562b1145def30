package application

import (
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
)

// Payload is the role-specific half of a role application. The review state
// machine is role-agnostic; only payload validation differs between roles,
// so payloads are modeled as a tagged variant over the shared envelope.
type Payload interface {
	// Role returns the platform role this payload applies for.
	Role() kernel.Role

	// Validate checks the role-specific required fields.
	Validate() error
}

// DriverPayload is the evidence submitted with a driver application.
type DriverPayload struct {
	fullName            string
	phone               string
	vehicleType         string
	vehicleRegistration string
}

// NewDriverPayload creates a driver application payload.
// All fields are required.
func NewDriverPayload(fullName, phone, vehicleType, vehicleRegistration string) (DriverPayload, error) {
	p := DriverPayload{
		fullName:            fullName,
		phone:               phone,
		vehicleType:         vehicleType,
		vehicleRegistration: vehicleRegistration,
	}

	if err := p.Validate(); err != nil {
		return DriverPayload{}, err
	}

	return p, nil
}

// Role returns kernel.RoleDriver.
func (p DriverPayload) Role() kernel.Role {
	return kernel.RoleDriver
}

// Validate checks that every required field is present.
func (p DriverPayload) Validate() error {
	for _, field := range []struct{ name, value string }{
		{"fullName", p.fullName},
		{"phone", p.phone},
		{"vehicleType", p.vehicleType},
		{"vehicleRegistration", p.vehicleRegistration},
	} {
		if field.value == "" {
			return errs.NewValueIsRequiredError(field.name)
		}
	}
	return nil
}

// FullName returns the applicant's full name.
func (p DriverPayload) FullName() string { return p.fullName }

// Phone returns the applicant's contact number.
func (p DriverPayload) Phone() string { return p.phone }

// VehicleType returns the vehicle category, e.g. "motorbike".
func (p DriverPayload) VehicleType() string { return p.vehicleType }

// VehicleRegistration returns the vehicle registration number.
func (p DriverPayload) VehicleRegistration() string { return p.vehicleRegistration }

// PickupPointPayload is the evidence submitted with a pickup point
// operator application.
type PickupPointPayload struct {
	businessName string
	phone        string
	address      string
}

// NewPickupPointPayload creates a pickup point application payload.
// All fields are required.
func NewPickupPointPayload(businessName, phone, address string) (PickupPointPayload, error) {
	p := PickupPointPayload{
		businessName: businessName,
		phone:        phone,
		address:      address,
	}

	if err := p.Validate(); err != nil {
		return PickupPointPayload{}, err
	}

	return p, nil
}

// Role returns kernel.RolePickupPoint.
func (p PickupPointPayload) Role() kernel.Role {
	return kernel.RolePickupPoint
}

// Validate checks that every required field is present.
func (p PickupPointPayload) Validate() error {
	for _, field := range []struct{ name, value string }{
		{"businessName", p.businessName},
		{"phone", p.phone},
		{"address", p.address},
	} {
		if field.value == "" {
			return errs.NewValueIsRequiredError(field.name)
		}
	}
	return nil
}

// BusinessName returns the trading name of the pickup point.
func (p PickupPointPayload) BusinessName() string { return p.businessName }

// Phone returns the operator's contact number.
func (p PickupPointPayload) Phone() string { return p.phone }

// Address returns the physical address of the pickup point.
func (p PickupPointPayload) Address() string { return p.address }
