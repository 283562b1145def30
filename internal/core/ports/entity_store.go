package ports

import (
	"context"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
)

// ReviewDecision is an admin's verdict on a pending role application.
type ReviewDecision string

// List of review decisions.
const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

// Valid checks if the ReviewDecision is one of the defined verdicts.
func (d ReviewDecision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// EntityStore is the authoritative backend holding orders, role
// applications, retailers, and listings. The core only ever talks to it
// through this contract; implementations may live in-process (the postgres
// adapter) or behind a remote transport (the HTTP client adapter).
//
// Every operation fails with one of the typed errors from internal/pkg/errs
// whenever the failure is semantic; transport failures are wrapped as
// *errs.TransportError. The store serializes conflicting writes to the same
// order or application server-side; callers get client-visible cache
// correctness from the view cache, not store-level atomicity.
type EntityStore interface {
	// ListAllOrders returns every order regardless of status.
	ListAllOrders(ctx context.Context) ([]*order.Order, error)

	// ListEligibleDriverOrders returns the orders the given driver may take
	// or is currently carrying.
	ListEligibleDriverOrders(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// GetRetailerOrders returns the orders referencing the given retailer.
	GetRetailerOrders(ctx context.Context, retailerID kernel.UUID) ([]*order.Order, error)

	// GetPickupPointOrders returns the orders bound to the given pickup point.
	GetPickupPointOrders(ctx context.Context, pickupPointID kernel.UUID) ([]*order.Order, error)

	// GetOrder retrieves a single order by id.
	GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	// UpdateOrderStatus transitions an order to a legal successor status and
	// returns the updated order. Fails with *errs.InvalidStateError when the
	// transition is not an immediate successor of the current status and
	// *errs.ObjectNotFoundError when the order does not exist.
	UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, newStatus order.Status) (*order.Order, error)

	// CreatePickupOrder persists an order created at a pickup point on
	// behalf of a walk-in customer.
	CreatePickupOrder(ctx context.Context, o *order.Order) (*order.Order, error)

	// SubmitApplication persists a fresh pending role application. Fails
	// with *errs.ConflictError when the applicant already has a pending
	// application for the same role.
	SubmitApplication(ctx context.Context, a *application.Application) (*application.Application, error)

	// GetApplication returns the applicant's most recent application for the
	// role, or *errs.ObjectNotFoundError when none is on file.
	GetApplication(ctx context.Context, role kernel.Role, applicant kernel.UUID) (*application.Application, error)

	// ListPendingApplications returns every application awaiting review.
	ListPendingApplications(ctx context.Context) ([]*application.Application, error)

	// ReviewApplication closes a pending application with the given decision
	// and returns the reviewed record. The reason is mandatory for
	// rejections. Fails with *errs.InvalidStateError when the application is
	// no longer pending.
	ReviewApplication(ctx context.Context, applicationID kernel.UUID, decision ReviewDecision, reason string) (*application.Application, error)

	// GetListings returns the retailer's listings for checkout validation.
	GetListings(ctx context.Context, retailerID kernel.UUID) ([]*retailer.Listing, error)
}
