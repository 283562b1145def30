// Package postgres provides the GORM-backed implementation of the entity
// store. It is the authoritative side of the system: state machine
// transitions and submission conflicts are re-checked here inside
// transactions, regardless of what the client-side handlers already
// validated.
package postgres

import (
	"context"
	"errors"
	"time"

	"thumathina/internal/adapters/out/postgres/applicationrepo"
	"thumathina/internal/adapters/out/postgres/listingrepo"
	"thumathina/internal/adapters/out/postgres/orderrepo"
	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEntityStore implements ports.EntityStore on PostgreSQL. Writes that
// span a read-check-write sequence run inside a transaction so conflicting
// writers serialize on the database.
type GormEntityStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormEntityStore creates the store on an open database handle.
func NewGormEntityStore(db *gorm.DB) *GormEntityStore {
	return &GormEntityStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Migrate creates or updates the store's tables.
func (s *GormEntityStore) Migrate() error {
	return s.db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&applicationrepo.ApplicationDTO{},
		&applicationrepo.ApplicationDocumentDTO{},
		&listingrepo.ListingDTO{},
	)
}

// ListAllOrders returns every order regardless of status.
func (s *GormEntityStore) ListAllOrders(ctx context.Context) ([]*order.Order, error) {
	return orderrepo.NewGormOrderRepository(s.db).GetAll(ctx)
}

// ListEligibleDriverOrders returns the orders the driver may take or carries.
func (s *GormEntityStore) ListEligibleDriverOrders(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*order.Order, error) {
	return orderrepo.NewGormOrderRepository(s.db).GetEligibleForDriver(ctx, driverID)
}

// GetRetailerOrders returns the orders referencing the retailer.
func (s *GormEntityStore) GetRetailerOrders(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*order.Order, error) {
	return orderrepo.NewGormOrderRepository(s.db).GetByRetailer(ctx, retailerID)
}

// GetPickupPointOrders returns the orders bound to the pickup point.
func (s *GormEntityStore) GetPickupPointOrders(
	ctx context.Context,
	pickupPointID kernel.UUID,
) ([]*order.Order, error) {
	return orderrepo.NewGormOrderRepository(s.db).GetByPickupPoint(ctx, pickupPointID)
}

// GetOrder retrieves a single order by id.
func (s *GormEntityStore) GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	return orderrepo.NewGormOrderRepository(s.db).Get(ctx, orderID)
}

// UpdateOrderStatus transitions an order to a legal successor status. The
// transition runs through the domain aggregate, so an illegal move fails
// with *errs.InvalidStateError before any row is touched, and the write is
// conditional on the status the transition started from.
func (s *GormEntityStore) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (*order.Order, error) {
	var updated *order.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := orderrepo.NewGormOrderRepository(tx)

		aggregate, err := repo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		previous := aggregate.Status()
		if err := aggregate.TransitionTo(newStatus, s.now()); err != nil {
			return err
		}

		if err := repo.UpdateStatus(ctx, aggregate, previous); err != nil {
			return err
		}

		updated = aggregate
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CreateOrder persists a new order with its lines. Creation is idempotent
// on the order id: a second insert of the same id conflicts instead of
// duplicating, which lets event-driven callers redeliver safely.
func (s *GormEntityStore) CreateOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := orderrepo.NewGormOrderRepository(tx)

		_, err := repo.Get(ctx, o.ID())
		if err == nil {
			return errs.NewConflictError("order already exists")
		}
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}

		return repo.Add(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

// CreatePickupOrder persists a walk-in order with its lines.
func (s *GormEntityStore) CreatePickupOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.PickupPointID() == nil {
		return nil, errs.NewValueIsRequiredError("pickupPointId")
	}

	return s.CreateOrder(ctx, o)
}

// SubmitApplication persists a pending application. When the applicant's
// most recent application for the role is rejected, the submission becomes
// a resubmission through the aggregate; a pending or approved one conflicts.
func (s *GormEntityStore) SubmitApplication(
	ctx context.Context,
	a *application.Application,
) (*application.Application, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	var stored *application.Application
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := applicationrepo.NewGormApplicationRepository(tx)

		existing, err := repo.GetLatest(ctx, a.Role(), a.Applicant())
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if !errors.As(err, &notFound) {
				return err
			}

			stored = a
			return repo.Add(ctx, a)
		}

		switch {
		case existing.Status().IsPending():
			return errs.NewConflictError("an application for this role is already pending")
		case existing.Status().IsApproved():
			return errs.NewConflictError("this role has already been granted")
		}

		resubmitted, err := existing.Resubmit(a.ID(), a.Payload(), a.DocumentRefs(), a.SubmittedAt())
		if err != nil {
			return err
		}

		stored = resubmitted
		return repo.Add(ctx, resubmitted)
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// GetApplication returns the applicant's most recent application for the role.
func (s *GormEntityStore) GetApplication(
	ctx context.Context,
	role kernel.Role,
	applicant kernel.UUID,
) (*application.Application, error) {
	return applicationrepo.NewGormApplicationRepository(s.db).GetLatest(ctx, role, applicant)
}

// ListPendingApplications returns every application awaiting review.
func (s *GormEntityStore) ListPendingApplications(ctx context.Context) ([]*application.Application, error) {
	return applicationrepo.NewGormApplicationRepository(s.db).GetAllPending(ctx)
}

// ReviewApplication closes a pending application with the given decision.
func (s *GormEntityStore) ReviewApplication(
	ctx context.Context,
	applicationID kernel.UUID,
	decision ports.ReviewDecision,
	reason string,
) (*application.Application, error) {
	if !decision.Valid() {
		return nil, errs.NewValueIsInvalidError("decision")
	}

	var reviewed *application.Application
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := applicationrepo.NewGormApplicationRepository(tx)

		aggregate, err := repo.Get(ctx, applicationID)
		if err != nil {
			return err
		}

		switch decision {
		case ports.DecisionApproved:
			err = aggregate.Approve(s.now())
		case ports.DecisionRejected:
			err = aggregate.Reject(reason, s.now())
		}
		if err != nil {
			return err
		}

		if err := repo.Update(ctx, aggregate); err != nil {
			return err
		}

		reviewed = aggregate
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviewed, nil
}

// GetListings returns the retailer's listings.
func (s *GormEntityStore) GetListings(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*retailer.Listing, error) {
	return listingrepo.NewGormListingRepository(s.db).GetByRetailer(ctx, retailerID)
}
