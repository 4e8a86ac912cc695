// Package http implements the inbound REST adapter. It binds the generated
// server interface to the application's command and query handlers and maps
// the core's error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/generated/servers"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultPageSize = 20

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	markOrderReadyHandler   commands.MarkOrderReadyCommandHandler
	deliverOrderHandler     commands.DeliverOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	createDishHandler       commands.CreateDishCommandHandler
	updateDishHandler       commands.UpdateDishCommandHandler
	setDishActiveHandler    commands.SetDishActiveCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createDishHandler commands.CreateDishCommandHandler,
	updateDishHandler commands.UpdateDishCommandHandler,
	setDishActiveHandler commands.SetDishActiveCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		claimOrderHandler:        claimOrderHandler,
		markOrderReadyHandler:    markOrderReadyHandler,
		deliverOrderHandler:      deliverOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		createDishHandler:        createDishHandler,
		updateDishHandler:        updateDishHandler,
		setDishActiveHandler:     setDishActiveHandler,
		createRestaurantHandler:  createRestaurantHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.OrderLineDraft, len(body.Lines))
	for i, line := range body.Lines {
		dishID, lineErr := kernel.UUIDFromBytes(line.DishId[:])
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines[i] = commands.OrderLineDraft{DishID: dishID, Quantity: line.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(requester, restaurantID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(aggregate))
}

// GetOrders handles GET /api/v1/orders - lists one page of a restaurant's
// orders in the requested status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := order.StatusFromString(string(params.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromBytes(params.RestaurantId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	page := 0
	if params.Page != nil {
		page = *params.Page
	}
	pageSize := defaultPageSize
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewGetOrdersByStatusQuery(requester, status, restaurantID, page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		lines := make([]servers.OrderLine, len(o.Lines))
		for j, line := range o.Lines {
			lines[j] = servers.OrderLine{
				DishId:   line.DishID.Bytes(),
				Quantity: line.Quantity,
			}
		}

		response[i] = servers.Order{
			Id:           o.ID.Bytes(),
			CustomerId:   o.CustomerID.Bytes(),
			RestaurantId: o.RestaurantID.Bytes(),
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
			Lines:        lines,
		}
		if o.ChefID != nil {
			chefID := o.ChefID.Bytes()
			response[i].ChefId = &chefID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim - assigns the order
// to the authenticated employee.
func (s *Server) ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(requester, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready - moves the
// order to READY and issues the handoff PIN.
func (s *Server) MarkOrderReady(ctx echo.Context, orderId openapi_types.UUID) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(requester, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver - hands the
// order over after checking the customer's PIN.
func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.DeliverOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(requester, orderID, body.Pin)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels the
// authenticated customer's own pending order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(requester, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDish handles POST /api/v1/dishes - adds a dish to the owner's catalog.
func (s *Server) CreateDish(ctx echo.Context) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.CreateDishJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	categoryID, err := kernel.UUIDFromBytes(body.CategoryId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateDishCommand(
		requester, body.Name, body.Price, body.Description, body.ImageUrl, categoryID, restaurantID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	entity, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDishResponse(entity))
}

// UpdateDish handles PATCH /api/v1/dishes/{dishId} - changes a dish's price
// or description.
func (s *Server) UpdateDish(ctx echo.Context, dishId openapi_types.UUID) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.UpdateDishJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	dishID, err := kernel.UUIDFromBytes(dishId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDishCommand(requester, dishID, body.Price, body.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	entity, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDishResponse(entity))
}

// SetDishActive handles PUT /api/v1/dishes/{dishId}/active - enables or
// disables a dish.
func (s *Server) SetDishActive(ctx echo.Context, dishId openapi_types.UUID) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.SetDishActiveJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	dishID, err := kernel.UUIDFromBytes(dishId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetDishActiveCommand(requester, dishID, &body.Active)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setDishActiveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRestaurant handles POST /api/v1/restaurants - onboards a restaurant
// for a designated owner.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	requester, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.CreateRestaurantJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	ownerID, err := kernel.UUIDFromBytes(body.OwnerId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		requester, body.Name, body.Nit, body.Address, body.Phone, body.LogoUrl, ownerID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	entity, err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Restaurant{
		Id:      entity.ID().Bytes(),
		Name:    entity.Name(),
		Nit:     entity.NIT(),
		Address: entity.Address(),
		Phone:   entity.Phone(),
		LogoUrl: entity.LogoURL(),
		OwnerId: entity.OwnerID().Bytes(),
	})
}

func toDishResponse(entity *dish.Dish) servers.Dish {
	return servers.Dish{
		Id:           entity.ID().Bytes(),
		Name:         entity.Name(),
		Price:        entity.Price(),
		Description:  entity.Description(),
		ImageUrl:     entity.ImageURL(),
		CategoryId:   entity.CategoryID().Bytes(),
		RestaurantId: entity.RestaurantID().Bytes(),
		Active:       entity.IsActive(),
	}
}

func toOrderResponse(aggregate *order.Order) servers.Order {
	lines := make([]servers.OrderLine, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines[i] = servers.OrderLine{
			DishId:   line.DishID().Bytes(),
			Quantity: line.Quantity(),
		}
	}

	response := servers.Order{
		Id:           aggregate.ID().Bytes(),
		CustomerId:   aggregate.CustomerID().Bytes(),
		RestaurantId: aggregate.RestaurantID().Bytes(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		Lines:        lines,
	}
	if aggregate.Chef() != nil {
		chefID := aggregate.Chef().Bytes()
		response.ChefId = &chefID
	}

	return response
}

// writeError maps the core's error kinds to HTTP responses. The kinds form a
// closed set, so anything unclassified is a server fault.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrDependencyFailure):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}
