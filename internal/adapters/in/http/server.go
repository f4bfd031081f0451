// Package http exposes the service over a single action-dispatched endpoint,
// the calling convention of the display clients and the ordering automation:
// every request is GET or POST against "/" with an "action" parameter naming
// the operation and the remaining parameters as arguments.
package http

import (
	"errors"
	"net/http"

	"kitchenboard/internal/core/application/usecases/commands"
	"kitchenboard/internal/core/application/usecases/queries"
	"kitchenboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between the action dispatcher and the use case handlers.
type Server struct {
	// Command handlers
	startCookingHandler        commands.StartCookingCommandHandler
	markReadyHandler           commands.MarkReadyCommandHandler
	clearOrderHandler          commands.ClearOrderCommandHandler
	clearAllReadyHandler       commands.ClearAllReadyCommandHandler
	updateMenuStatusHandler    commands.UpdateMenuStatusCommandHandler
	toggleKitchenStatusHandler commands.ToggleKitchenStatusCommandHandler
	reprintOrderHandler        commands.ReprintOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getReadyOrdersHandler      queries.GetReadyOrdersQueryHandler
	getMenuStatusHandler       queries.GetMenuStatusQueryHandler
	checkAvailabilityHandler   queries.CheckItemAvailabilityQueryHandler
	getUnavailableItemsHandler queries.GetUnavailableItemsQueryHandler
	getAvailableByCategory     queries.GetAvailableItemsByCategoryQueryHandler
	getKitchenStatusHandler    queries.GetKitchenStatusQueryHandler
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	startCookingHandler commands.StartCookingCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	clearOrderHandler commands.ClearOrderCommandHandler,
	clearAllReadyHandler commands.ClearAllReadyCommandHandler,
	updateMenuStatusHandler commands.UpdateMenuStatusCommandHandler,
	toggleKitchenStatusHandler commands.ToggleKitchenStatusCommandHandler,
	reprintOrderHandler commands.ReprintOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getReadyOrdersHandler queries.GetReadyOrdersQueryHandler,
	getMenuStatusHandler queries.GetMenuStatusQueryHandler,
	checkAvailabilityHandler queries.CheckItemAvailabilityQueryHandler,
	getUnavailableItemsHandler queries.GetUnavailableItemsQueryHandler,
	getAvailableByCategory queries.GetAvailableItemsByCategoryQueryHandler,
	getKitchenStatusHandler queries.GetKitchenStatusQueryHandler,
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler,
) *Server {
	return &Server{
		startCookingHandler:        startCookingHandler,
		markReadyHandler:           markReadyHandler,
		clearOrderHandler:          clearOrderHandler,
		clearAllReadyHandler:       clearAllReadyHandler,
		updateMenuStatusHandler:    updateMenuStatusHandler,
		toggleKitchenStatusHandler: toggleKitchenStatusHandler,
		reprintOrderHandler:        reprintOrderHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getReadyOrdersHandler:      getReadyOrdersHandler,
		getMenuStatusHandler:       getMenuStatusHandler,
		checkAvailabilityHandler:   checkAvailabilityHandler,
		getUnavailableItemsHandler: getUnavailableItemsHandler,
		getAvailableByCategory:     getAvailableByCategory,
		getKitchenStatusHandler:    getKitchenStatusHandler,
		getDashboardMetricsHandler: getDashboardMetricsHandler,
	}
}

// RegisterRoutes attaches the action dispatcher and the health check.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.dispatch)
	e.POST("/", s.dispatch)
	e.GET("/health", s.health)
}

// successResponse is the envelope for completed actions.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// errorResponse is the envelope for failed actions.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// dispatch routes a request to its use case by the "action" parameter.
// Parameters are read from the query string first, then the form body, so
// both calling styles of the clients work.
func (s *Server) dispatch(ctx echo.Context) error {
	action := param(ctx, "action")

	switch action {
	case "getOrders":
		return s.getOrders(ctx)
	case "getReadyOrders":
		return s.getReadyOrders(ctx)
	case "startCooking":
		return s.startCooking(ctx)
	case "markReady":
		return s.markReady(ctx)
	case "clearOrder":
		return s.clearOrder(ctx)
	case "clearAllReady":
		return s.clearAllReady(ctx)
	case "reprint":
		return s.reprint(ctx)
	case "getMenuStatus":
		return s.getMenuStatus(ctx)
	case "updateMenuStatus":
		return s.updateMenuStatus(ctx)
	case "checkAvailability":
		return s.checkAvailability(ctx)
	case "getUnavailableItems":
		return s.getUnavailableItems(ctx)
	case "getAvailableByCategory":
		return s.getAvailableItemsByCategory(ctx)
	case "toggleStatus":
		return s.toggleKitchenStatus(ctx)
	case "getStatus":
		return s.getKitchenStatus(ctx)
	case "getDashboardMetrics":
		return s.getDashboardMetrics(ctx)
	case "":
		return fail(ctx, http.StatusBadRequest, errors.New("action parameter is required"))
	default:
		return fail(ctx, http.StatusBadRequest, errors.New("unknown action: "+action))
	}
}

func (s *Server) getOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	board, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, board)
}

func (s *Server) getReadyOrders(ctx echo.Context) error {
	query := queries.NewGetReadyOrdersQuery()

	orders, err := s.getReadyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, orders)
}

func (s *Server) startCooking(ctx echo.Context) error {
	cmd, err := commands.NewStartCookingCommand(param(ctx, "orderId"), param(ctx, "staff"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	if err = s.startCookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, nil)
}

func (s *Server) markReady(ctx echo.Context) error {
	cmd, err := commands.NewMarkReadyCommand(param(ctx, "orderId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	if err = s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, nil)
}

func (s *Server) clearOrder(ctx echo.Context) error {
	cmd, err := commands.NewClearOrderCommand(param(ctx, "orderId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	if err = s.clearOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, nil)
}

func (s *Server) clearAllReady(ctx echo.Context) error {
	cmd, err := commands.NewClearAllReadyCommand()
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	cleared, err := s.clearAllReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, map[string]int{"cleared": cleared})
}

func (s *Server) reprint(ctx echo.Context) error {
	cmd, err := commands.NewReprintOrderCommand(param(ctx, "orderId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	if err = s.reprintOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, nil)
}

func (s *Server) getMenuStatus(ctx echo.Context) error {
	query := queries.NewGetMenuStatusQuery()

	items, err := s.getMenuStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, items)
}

func (s *Server) updateMenuStatus(ctx echo.Context) error {
	cmd, err := commands.NewUpdateMenuStatusCommand(
		param(ctx, "itemName"),
		param(ctx, "status"),
		param(ctx, "staff"),
	)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	if err = s.updateMenuStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, nil)
}

func (s *Server) checkAvailability(ctx echo.Context) error {
	query, err := queries.NewCheckItemAvailabilityQuery(param(ctx, "itemName"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	verdict, err := s.checkAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, verdict)
}

func (s *Server) getUnavailableItems(ctx echo.Context) error {
	query := queries.NewGetUnavailableItemsQuery()

	names, err := s.getUnavailableItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, names)
}

func (s *Server) getAvailableItemsByCategory(ctx echo.Context) error {
	query, err := queries.NewGetAvailableItemsByCategoryQuery(param(ctx, "category"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	names, err := s.getAvailableByCategory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, names)
}

func (s *Server) toggleKitchenStatus(ctx echo.Context) error {
	cmd, err := commands.NewToggleKitchenStatusCommand(param(ctx, "status"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, err)
	}

	if err = s.toggleKitchenStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, map[string]string{"status": string(cmd.Status())})
}

func (s *Server) getKitchenStatus(ctx echo.Context) error {
	query := queries.NewGetKitchenStatusQuery()

	status, err := s.getKitchenStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, status)
}

func (s *Server) getDashboardMetrics(ctx echo.Context) error {
	query := queries.NewGetDashboardMetricsQuery(
		param(ctx, "period"),
		param(ctx, "startDate"),
		param(ctx, "endDate"),
	)

	snapshot, err := s.getDashboardMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, snapshot)
}

// param reads a request parameter from the query string, falling back to the
// form body for POSTed actions.
func param(ctx echo.Context, name string) string {
	if v := ctx.QueryParam(name); v != "" {
		return v
	}
	return ctx.FormValue(name)
}

func ok(ctx echo.Context, data any) error {
	return ctx.JSON(http.StatusOK, successResponse{Success: true, Data: data})
}

func fail(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, errorResponse{Success: false, Error: err.Error()})
}

// failFromError maps use case errors to HTTP statuses: missing objects are
// 404, invalid input is 400, everything else is 500.
func failFromError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fail(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return fail(ctx, http.StatusBadRequest, err)
	default:
		return fail(ctx, http.StatusInternalServerError, err)
	}
}
