// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/usecase/order"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// OrderController handles order endpoints.
type OrderController struct {
	createUseCase *order.CreateOrderUseCase
	listUseCase   *order.ListOrdersUseCase
	updateUseCase *order.UpdateOrderUseCase
	deleteUseCase *order.DeleteOrderUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	createUseCase *order.CreateOrderUseCase,
	listUseCase *order.ListOrdersUseCase,
	updateUseCase *order.UpdateOrderUseCase,
	deleteUseCase *order.DeleteOrderUseCase,
) *OrderController {
	return &OrderController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), order.CreateOrderInput{
		UserID:         userID,
		CustomerName:   req.CustomerName,
		CustomerNumber: req.CustomerNumber,
		Status:         entity.OrderStatus(req.Status),
		Amount:         req.Amount,
		AmountPaid:     req.AmountPaid,
		Description:    req.Description,
		DueDate:        req.DueDate,
	})
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order))
}

// List handles GET /orders requests. An optional ?status= query filters
// by order status.
func (c *OrderController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), order.ListOrdersInput{
		UserID: userID,
		Status: entity.OrderStatus(ctx.Query("status")),
	})
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output.Orders))
}

// Update handles PATCH /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID",
			Code:  string(domainerror.ErrCodeOrderNotFound),
		})
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	input := order.UpdateOrderInput{
		UserID:      userID,
		OrderID:     orderID,
		AmountPaid:  req.AmountPaid,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// Delete handles DELETE /orders/:id requests.
func (c *OrderController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID",
			Code:  string(domainerror.ErrCodeOrderNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), order.DeleteOrderInput{
		UserID:  userID,
		OrderID: orderID,
	}); err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Order deleted",
	})
}

// handleOrderError maps order errors to HTTP responses.
func (c *OrderController) handleOrderError(ctx *gin.Context, err error) {
	var orderErr *domainerror.OrderError
	if errors.As(err, &orderErr) {
		ctx.JSON(statusCodeForOrderError(orderErr.Code), dto.ErrorResponse{
			Error: orderErr.Message,
			Code:  string(orderErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForOrderError maps order error codes to HTTP status codes.
func statusCodeForOrderError(code domainerror.OrderErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingOrderFields,
		domainerror.ErrCodeInvalidOrderStatus,
		domainerror.ErrCodeInvalidOrderAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedOrder:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
