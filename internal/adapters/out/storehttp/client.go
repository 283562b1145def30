// Package storehttp implements the entity store contract over HTTP. It is
// the client half of the wire contract served by adapters/in/http: the
// dispatcher and view cache run in the calling process, and every store
// operation becomes a request to the remote store service.
package storehttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"thumathina/internal/adapters/wire"
	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client talks to a remote entity store service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a store client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTPClient creates a store client with a caller-supplied
// http.Client, used by tests and callers needing custom transports.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ListAllOrders implements ports.EntityStore.
func (c *Client) ListAllOrders(ctx context.Context) ([]*order.Order, error) {
	var response []wire.Order
	if err := c.get(ctx, "/api/v1/orders", &response); err != nil {
		return nil, err
	}

	return toOrders(response)
}

// ListEligibleDriverOrders implements ports.EntityStore.
func (c *Client) ListEligibleDriverOrders(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*order.Order, error) {
	path := "/api/v1/orders/eligible?driverId=" + url.QueryEscape(driverID.String())

	var response []wire.Order
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	return toOrders(response)
}

// GetRetailerOrders implements ports.EntityStore.
func (c *Client) GetRetailerOrders(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*order.Order, error) {
	var response []wire.Order
	if err := c.get(ctx, "/api/v1/retailers/"+retailerID.String()+"/orders", &response); err != nil {
		return nil, err
	}

	return toOrders(response)
}

// GetPickupPointOrders implements ports.EntityStore.
func (c *Client) GetPickupPointOrders(
	ctx context.Context,
	pickupPointID kernel.UUID,
) ([]*order.Order, error) {
	var response []wire.Order
	if err := c.get(ctx, "/api/v1/pickup-points/"+pickupPointID.String()+"/orders", &response); err != nil {
		return nil, err
	}

	return toOrders(response)
}

// GetOrder implements ports.EntityStore.
func (c *Client) GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var response wire.Order
	if err := c.get(ctx, "/api/v1/orders/"+orderID.String(), &response); err != nil {
		return nil, err
	}

	return wire.ToOrder(response)
}

// UpdateOrderStatus implements ports.EntityStore.
func (c *Client) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (*order.Order, error) {
	request := wire.UpdateOrderStatusRequest{Status: newStatus.String()}

	var response wire.Order
	err := c.send(ctx, http.MethodPatch, "/api/v1/orders/"+orderID.String()+"/status", request, &response)
	if err != nil {
		return nil, err
	}

	return wire.ToOrder(response)
}

// CreatePickupOrder implements ports.EntityStore.
func (c *Client) CreatePickupOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var response wire.Order
	if err := c.send(ctx, http.MethodPost, "/api/v1/orders", wire.FromOrder(o), &response); err != nil {
		return nil, err
	}

	return wire.ToOrder(response)
}

// SubmitApplication implements ports.EntityStore.
func (c *Client) SubmitApplication(
	ctx context.Context,
	a *application.Application,
) (*application.Application, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	var response wire.Application
	err := c.send(ctx, http.MethodPost, "/api/v1/applications", wire.FromApplication(a), &response)
	if err != nil {
		return nil, err
	}

	return wire.ToApplication(response)
}

// GetApplication implements ports.EntityStore.
func (c *Client) GetApplication(
	ctx context.Context,
	role kernel.Role,
	applicant kernel.UUID,
) (*application.Application, error) {
	path := fmt.Sprintf(
		"/api/v1/applications/latest?role=%s&applicant=%s",
		url.QueryEscape(string(role)),
		url.QueryEscape(applicant.String()),
	)

	var response wire.Application
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	return wire.ToApplication(response)
}

// ListPendingApplications implements ports.EntityStore.
func (c *Client) ListPendingApplications(ctx context.Context) ([]*application.Application, error) {
	var response []wire.Application
	if err := c.get(ctx, "/api/v1/applications/pending", &response); err != nil {
		return nil, err
	}

	applications := make([]*application.Application, 0, len(response))
	for _, dto := range response {
		a, err := wire.ToApplication(dto)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	return applications, nil
}

// ReviewApplication implements ports.EntityStore.
func (c *Client) ReviewApplication(
	ctx context.Context,
	applicationID kernel.UUID,
	decision ports.ReviewDecision,
	reason string,
) (*application.Application, error) {
	request := wire.ReviewApplicationRequest{
		Decision: string(decision),
		Reason:   reason,
	}

	var response wire.Application
	err := c.send(
		ctx, http.MethodPost,
		"/api/v1/applications/"+applicationID.String()+"/review",
		request, &response,
	)
	if err != nil {
		return nil, err
	}

	return wire.ToApplication(response)
}

// GetListings implements ports.EntityStore.
func (c *Client) GetListings(
	ctx context.Context,
	retailerID kernel.UUID,
) ([]*retailer.Listing, error) {
	var response []wire.Listing
	if err := c.get(ctx, "/api/v1/retailers/"+retailerID.String()+"/listings", &response); err != nil {
		return nil, err
	}

	listings := make([]*retailer.Listing, 0, len(response))
	for _, dto := range response {
		listing, err := wire.ToListing(dto)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportErrorWithCause(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(method, path, resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError maps HTTP status codes back onto the typed error taxonomy;
// the inverse of the server's mapping.
func decodeError(method, path string, resp *http.Response) error {
	var wireErr wire.Error
	message := resp.Status
	if decodeErr := json.NewDecoder(resp.Body).Decode(&wireErr); decodeErr == nil && wireErr.Message != "" {
		message = wireErr.Message
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errs.NewValueIsInvalidError(message)
	case http.StatusUnauthorized:
		return errs.NewAuthorizationError(message)
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError(method+" "+path, message)
	case http.StatusConflict:
		return errs.NewConflictError(message)
	case http.StatusUnprocessableEntity:
		// the message already carries the full transition description
		return fmt.Errorf("%w: %s", errs.ErrInvalidState, message)
	default:
		return errs.NewTransportErrorWithCause(method+" "+path, fmt.Errorf("%s", message))
	}
}

func toOrders(dtos []wire.Order) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := wire.ToOrder(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
