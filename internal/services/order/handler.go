package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gunturaf/sukab-restaurant/internal/logger"
	"github.com/gunturaf/sukab-restaurant/internal/models"
)

const internalErrorMessage = "An unknown server error has occurred, please try again later."

// Handler adapts HTTP requests to service calls. It parses and
// validates path parameters, delegates to the service, and maps
// results and errors to HTTP responses; no business logic lives here.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates an order handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register mounts all routes on the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Welcome)
	e.GET("/health", h.HealthCheck)

	table := e.Group("/table/:table_number")
	table.POST("/order", h.CreateOrder)
	table.GET("/order", h.ListOrders)
	table.GET("/order/:order_id", h.GetOrder)
	table.DELETE("/order/:order_id", h.DeleteOrder)
}

// Welcome handles GET / requests.
func (h *Handler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to Sukab Restaurant")
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(c echo.Context) error {
	ctx, cancel := contextWithTimeout(c, 5*time.Second)
	defer cancel()

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "order-service",
	}

	if !h.service.HealthCheck(ctx) {
		response["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /table/:table_number/order requests.
func (h *Handler) CreateOrder(c echo.Context) error {
	requestID := requestIDFrom(c)

	tableNumber, err := ParseTableNumber(c.Param("table_number"))
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBadRequest(c, "invalid JSON request body")
	}

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	order, err := h.service.CreateOrder(ctx, tableNumber, &req, requestID)
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /table/:table_number/order requests. A table
// with no orders yields an empty array, never a 404.
func (h *Handler) ListOrders(c echo.Context) error {
	requestID := requestIDFrom(c)

	tableNumber, err := ParseTableNumber(c.Param("table_number"))
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	orders, err := h.service.ListOrders(ctx, tableNumber)
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /table/:table_number/order/:order_id requests.
func (h *Handler) GetOrder(c echo.Context) error {
	requestID := requestIDFrom(c)

	tableNumber, orderID, err := h.pathKeys(c)
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	order, err := h.service.GetOrder(ctx, tableNumber, orderID)
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	return c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /table/:table_number/order/:order_id
// requests.
func (h *Handler) DeleteOrder(c echo.Context) error {
	requestID := requestIDFrom(c)

	tableNumber, orderID, err := h.pathKeys(c)
	if err != nil {
		return h.writeError(c, err, requestID)
	}

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	if err := h.service.CancelOrder(ctx, tableNumber, orderID, requestID); err != nil {
		return h.writeError(c, err, requestID)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) pathKeys(c echo.Context) (int, int64, error) {
	tableNumber, err := ParseTableNumber(c.Param("table_number"))
	if err != nil {
		return 0, 0, err
	}
	orderID, err := ParseOrderID(c.Param("order_id"))
	if err != nil {
		return 0, 0, err
	}
	return tableNumber, orderID, nil
}

// writeError translates error kinds into HTTP responses. This is the
// only place such translation happens; everything below propagates
// errors unchanged.
func (h *Handler) writeError(c echo.Context, err error, requestID string) error {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		return h.writeBadRequest(c, ve.Message)
	case errors.Is(err, models.ErrMenuNotFound):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: true, Message: "menu item not found"})
	case errors.Is(err, models.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: true, Message: "order not found"})
	default:
		h.logger.Error("request_failed", "Unhandled error", requestID, err, map[string]interface{}{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		})
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: true, Message: internalErrorMessage})
	}
}

func (h *Handler) writeBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: true, Message: message})
}

// contextWithTimeout bounds the repository round-trip while keeping
// client-disconnect cancellation from the request context.
func contextWithTimeout(c echo.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), d)
}

// requestIDFrom returns the request ID set by the logging middleware,
// generating one when the middleware is not installed.
func requestIDFrom(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok && id != "" {
		return id
	}
	return logger.GenerateRequestID()
}
