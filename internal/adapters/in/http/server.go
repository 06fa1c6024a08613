package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"quickcommerce/internal/core/application/usecases/commands"
	"quickcommerce/internal/core/application/usecases/queries"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/pkg/errs"
)

const defaultCancelReason = "Cancelled by customer"

// ExpiryTimers disarms the auto-cancel timer of an order that reached a
// terminal state before timing out.
type ExpiryTimers interface {
	Cancel(orderID int64) bool
}

// Server implements the HTTP API for handling requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	onboardCustomerHandler     commands.OnboardCustomerCommandHandler
	onboardPartnerHandler      commands.OnboardPartnerCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	pickUpOrderHandler         commands.PickUpOrderCommandHandler
	completeOrderHandler       commands.CompleteOrderCommandHandler
	updatePartnerStatusHandler commands.UpdatePartnerStatusCommandHandler

	// Query handlers
	getOrderStatusHandler   queries.GetOrderStatusQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getPartnerStatusHandler queries.GetPartnerStatusQueryHandler
	getTopPartnersHandler   queries.GetTopPartnersQueryHandler

	// nil when auto-cancellation is disabled
	expiryTimers ExpiryTimers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	onboardCustomerHandler commands.OnboardCustomerCommandHandler,
	onboardPartnerHandler commands.OnboardPartnerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	pickUpOrderHandler commands.PickUpOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	updatePartnerStatusHandler commands.UpdatePartnerStatusCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getPartnerStatusHandler queries.GetPartnerStatusQueryHandler,
	getTopPartnersHandler queries.GetTopPartnersQueryHandler,
	expiryTimers ExpiryTimers,
) *Server {
	return &Server{
		onboardCustomerHandler:     onboardCustomerHandler,
		onboardPartnerHandler:      onboardPartnerHandler,
		createOrderHandler:         createOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		pickUpOrderHandler:         pickUpOrderHandler,
		completeOrderHandler:       completeOrderHandler,
		updatePartnerStatusHandler: updatePartnerStatusHandler,
		getOrderStatusHandler:      getOrderStatusHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getPartnerStatusHandler:    getPartnerStatusHandler,
		getTopPartnersHandler:      getTopPartnersHandler,
		expiryTimers:               expiryTimers,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.OnboardCustomer)

	v1.POST("/partners", s.OnboardPartner)
	v1.GET("/partners/top", s.GetTopPartners)
	v1.GET("/partners/:id", s.GetPartner)
	v1.PATCH("/partners/:id/status", s.UpdatePartnerStatus)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.DELETE("/orders/:id", s.CancelOrder)
	v1.POST("/orders/:id/pickup", s.PickUpOrder)
	v1.POST("/orders/:id/complete", s.CompleteOrder)
}

// OnboardCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) OnboardCustomer(ctx echo.Context) error {
	var req NewCustomer
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewOnboardCustomerCommand(req.Name, req.Phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer data: " + err.Error(),
		})
	}

	created, err := s.onboardCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to onboard customer",
		})
	}

	return ctx.JSON(http.StatusCreated, Customer{
		ID:    created.ID(),
		Name:  created.Name(),
		Phone: created.Phone(),
	})
}

// OnboardPartner handles POST /api/v1/partners - registers a new delivery partner.
func (s *Server) OnboardPartner(ctx echo.Context) error {
	var req NewPartner
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewOnboardPartnerCommand(req.Name, req.Phone, req.VehicleNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner data: " + err.Error(),
		})
	}

	created, err := s.onboardPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to onboard partner",
		})
	}

	return ctx.JSON(http.StatusCreated, Partner{
		ID:              created.ID(),
		Name:            created.Name(),
		Phone:           created.Phone(),
		VehicleNumber:   created.VehicleNumber(),
		Status:          created.Status().String(),
		TotalDeliveries: created.TotalDeliveries(),
		AverageRating:   created.AverageRating(),
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, req.ItemName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, toOrderDTO(queries.GetOrderStatusQueryResponse{
		ID:         created.ID(),
		CustomerID: created.CustomerID(),
		ItemName:   created.ItemName(),
		Status:     created.Status(),
		CreatedAt:  created.CreatedAt(),
	}))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	response, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderDTO(response))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all
// orders that are not delivered or cancelled.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderDTO(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order.
// The request body is optional; without it the default reason is used.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	reason := defaultCancelReason
	var req CancelOrderRequest
	if bindErr := ctx.Bind(&req); bindErr == nil && req.Reason != "" {
		reason = req.Reason
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, reason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Order cannot be cancelled")
	}

	if s.expiryTimers != nil {
		s.expiryTimers.Cancel(orderID)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickUpOrder handles POST /api/v1/orders/:id/pickup - the assigned
// partner collects the order.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req PickUpOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPickUpOrderCommand(req.PartnerID, orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid pickup data: " + err.Error(),
		})
	}

	if handleErr := s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Order cannot be picked up")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - the assigned
// partner delivers the order, optionally with a customer rating.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req CompleteOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(req.PartnerID, orderID, req.Rating)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid completion data: " + err.Error(),
		})
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Order cannot be completed")
	}

	if s.expiryTimers != nil {
		s.expiryTimers.Cancel(orderID)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartner handles GET /api/v1/partners/:id - retrieves one partner.
func (s *Server) GetPartner(ctx echo.Context) error {
	partnerID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner id",
		})
	}

	query, err := queries.NewGetPartnerStatusQuery(partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner id",
		})
	}

	response, err := s.getPartnerStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Partner not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve partner",
		})
	}

	return ctx.JSON(http.StatusOK, toPartnerDTO(response))
}

// UpdatePartnerStatus handles PATCH /api/v1/partners/:id/status - toggles
// a partner between Available and Offline.
func (s *Server) UpdatePartnerStatus(ctx echo.Context) error {
	partnerID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner id",
		})
	}

	var req UpdatePartnerStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := partner.ParseStatus(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner status: " + req.Status,
		})
	}

	cmd, err := commands.NewUpdatePartnerStatusCommand(partnerID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	if handleErr := s.updatePartnerStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Partner status cannot be changed")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTopPartners handles GET /api/v1/partners/top - retrieves the partner
// leaderboard. The optional limit query parameter defaults to 5.
func (s *Server) GetTopPartners(ctx echo.Context) error {
	limit := 5
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetTopPartnersQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit",
		})
	}

	partners, err := s.getTopPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve partners",
		})
	}

	response := make([]Partner, len(partners))
	for i, p := range partners {
		response[i] = toPartnerDTO(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderTransitionError maps a failed state transition to an HTTP response.
// Missing aggregates map to 404, everything else to 409.
func (s *Server) orderTransitionError(ctx echo.Context, err error, message string) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	}

	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: message + ": " + err.Error(),
	})
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
