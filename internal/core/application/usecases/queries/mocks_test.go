package queries_test

import (
	"context"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
	"thumathina/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEntityStore struct{ mock.Mock }

func (m *MockEntityStore) ListAllOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockEntityStore) ListEligibleDriverOrders(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockEntityStore) GetRetailerOrders(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, retailerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockEntityStore) GetPickupPointOrders(
	ctx context.Context,
	pickupPointID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, pickupPointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockEntityStore) GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockEntityStore) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockEntityStore) CreatePickupOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockEntityStore) SubmitApplication(
	ctx context.Context,
	a *application.Application,
) (*application.Application, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockEntityStore) GetApplication(
	ctx context.Context,
	role kernel.Role,
	applicant kernel.UUID,
) (*application.Application, error) {
	args := m.Called(ctx, role, applicant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockEntityStore) ListPendingApplications(ctx context.Context) ([]*application.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*application.Application), args.Error(1)
}

func (m *MockEntityStore) ReviewApplication(
	ctx context.Context,
	applicationID kernel.UUID,
	decision ports.ReviewDecision,
	reason string,
) (*application.Application, error) {
	args := m.Called(ctx, applicationID, decision, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockEntityStore) GetListings(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*retailer.Listing, error) {
	args := m.Called(ctx, retailerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*retailer.Listing), args.Error(1)
}

type MockViewCache struct{ mock.Mock }

func (m *MockViewCache) Read(
	ctx context.Context,
	key ports.ScopeKey,
	fetch ports.FetchFunc,
) (any, error) {
	args := m.Called(ctx, key, fetch)
	return args.Get(0), args.Error(1)
}

func (m *MockViewCache) Invalidate(keys ...ports.ScopeKey) {
	m.Called(keys)
}
