// Package http exposes the entity store over HTTP. The server is the
// authoritative side of the wire contract: clients talk to it through the
// HTTP store adapter, and every semantic failure maps to a stable status
// code carried back as a typed error on the client.
package http

import (
	"errors"
	"net/http"

	"thumathina/internal/adapters/wire"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests against the entity store.
type Server struct {
	store ports.EntityStore
}

// NewServer creates an HTTP server around the given store.
func NewServer(store ports.EntityStore) *Server {
	return &Server{store: store}
}

// Register mounts all routes on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.ListAllOrders)
	api.GET("/orders/eligible", s.ListEligibleDriverOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders", s.CreatePickupOrder)
	api.GET("/retailers/:retailerId/orders", s.GetRetailerOrders)
	api.GET("/retailers/:retailerId/listings", s.GetListings)
	api.GET("/pickup-points/:pickupPointId/orders", s.GetPickupPointOrders)

	api.POST("/applications", s.SubmitApplication)
	api.GET("/applications/latest", s.GetApplication)
	api.GET("/applications/pending", s.ListPendingApplications)
	api.POST("/applications/:applicationId/review", s.ReviewApplication)
}

// ListAllOrders handles GET /api/v1/orders.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	orders, err := s.store.ListAllOrders(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// ListEligibleDriverOrders handles GET /api/v1/orders/eligible?driverId=...
func (s *Server) ListEligibleDriverOrders(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.QueryParam("driverId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	orders, err := s.store.ListEligibleDriverOrders(ctx.Request().Context(), driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	o, err := s.store.GetOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, wire.FromOrder(o))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req wire.UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.store.UpdateOrderStatus(ctx.Request().Context(), orderID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, wire.FromOrder(updated))
}

// CreatePickupOrder handles POST /api/v1/orders.
func (s *Server) CreatePickupOrder(ctx echo.Context) error {
	var req wire.Order
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	o, err := wire.ToOrder(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.store.CreatePickupOrder(ctx.Request().Context(), o)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, wire.FromOrder(created))
}

// GetRetailerOrders handles GET /api/v1/retailers/:retailerId/orders.
func (s *Server) GetRetailerOrders(ctx echo.Context) error {
	retailerID, err := kernel.UUIDFromString(ctx.Param("retailerId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("retailerId", err))
	}

	orders, err := s.store.GetRetailerOrders(ctx.Request().Context(), retailerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// GetListings handles GET /api/v1/retailers/:retailerId/listings.
func (s *Server) GetListings(ctx echo.Context) error {
	retailerID, err := kernel.UUIDFromString(ctx.Param("retailerId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("retailerId", err))
	}

	listings, err := s.store.GetListings(ctx.Request().Context(), retailerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]wire.Listing, 0, len(listings))
	for _, listing := range listings {
		response = append(response, wire.FromListing(listing))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickupPointOrders handles GET /api/v1/pickup-points/:pickupPointId/orders.
func (s *Server) GetPickupPointOrders(ctx echo.Context) error {
	pickupPointID, err := kernel.UUIDFromString(ctx.Param("pickupPointId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("pickupPointId", err))
	}

	orders, err := s.store.GetPickupPointOrders(ctx.Request().Context(), pickupPointID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// SubmitApplication handles POST /api/v1/applications.
func (s *Server) SubmitApplication(ctx echo.Context) error {
	var req wire.Application
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	a, err := wire.ToApplication(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stored, err := s.store.SubmitApplication(ctx.Request().Context(), a)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, wire.FromApplication(stored))
}

// GetApplication handles GET /api/v1/applications/latest?role=...&applicant=...
func (s *Server) GetApplication(ctx echo.Context) error {
	role := kernel.Role(ctx.QueryParam("role"))
	if !role.Valid() {
		return errorResponse(ctx, errs.NewValueIsInvalidError("role"))
	}

	applicant, err := kernel.UUIDFromString(ctx.QueryParam("applicant"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("applicant", err))
	}

	a, err := s.store.GetApplication(ctx.Request().Context(), role, applicant)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, wire.FromApplication(a))
}

// ListPendingApplications handles GET /api/v1/applications/pending.
func (s *Server) ListPendingApplications(ctx echo.Context) error {
	pending, err := s.store.ListPendingApplications(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]wire.Application, 0, len(pending))
	for _, a := range pending {
		response = append(response, wire.FromApplication(a))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReviewApplication handles POST /api/v1/applications/:applicationId/review.
func (s *Server) ReviewApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("applicationId"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("applicationId", err))
	}

	var req wire.ReviewApplicationRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	reviewed, err := s.store.ReviewApplication(
		ctx.Request().Context(),
		applicationID,
		ports.ReviewDecision(req.Decision),
		req.Reason,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, wire.FromApplication(reviewed))
}

func ordersToWire(orders []*order.Order) []wire.Order {
	response := make([]wire.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, wire.FromOrder(o))
	}

	return response
}

// errorResponse maps the typed error taxonomy onto HTTP status codes. The
// mapping is the inverse of the one the HTTP store client applies, so a
// typed error survives a round trip over the wire.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, wire.Error{
		Code:    code,
		Message: err.Error(),
	})
}
