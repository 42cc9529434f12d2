// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/usecase/inventory"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// InventoryController handles inventory endpoints.
type InventoryController struct {
	createUseCase *inventory.CreateInventoryItemUseCase
	listUseCase   *inventory.ListInventoryItemsUseCase
	updateUseCase *inventory.UpdateInventoryItemUseCase
	deleteUseCase *inventory.DeleteInventoryItemUseCase
}

// NewInventoryController creates a new inventory controller instance.
func NewInventoryController(
	createUseCase *inventory.CreateInventoryItemUseCase,
	listUseCase *inventory.ListInventoryItemsUseCase,
	updateUseCase *inventory.UpdateInventoryItemUseCase,
	deleteUseCase *inventory.DeleteInventoryItemUseCase,
) *InventoryController {
	return &InventoryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /inventory requests.
func (c *InventoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInventoryFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), inventory.CreateInventoryItemInput{
		UserID:        userID,
		InventoryName: req.InventoryName,
		SKU:           req.SKU,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		ApparelType:   req.ApparelType,
		ReorderLevel:  req.ReorderLevel,
	})
	if err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInventoryItemResponse(output.Item))
}

// List handles GET /inventory requests.
func (c *InventoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), inventory.ListInventoryItemsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryListResponse(output.Items))
}

// Update handles PATCH /inventory/:id requests.
func (c *InventoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid inventory item ID",
			Code:  string(domainerror.ErrCodeInventoryItemNotFound),
		})
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInventoryFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), inventory.UpdateInventoryItemInput{
		UserID:        userID,
		ItemID:        itemID,
		InventoryName: req.InventoryName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		ApparelType:   req.ApparelType,
		ReorderLevel:  req.ReorderLevel,
	})
	if err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryItemResponse(output.Item))
}

// Delete handles DELETE /inventory/:id requests.
func (c *InventoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid inventory item ID",
			Code:  string(domainerror.ErrCodeInventoryItemNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), inventory.DeleteInventoryItemInput{
		UserID: userID,
		ItemID: itemID,
	}); err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Inventory item deleted",
	})
}

// handleInventoryError maps inventory errors to HTTP responses.
func (c *InventoryController) handleInventoryError(ctx *gin.Context, err error) {
	var invErr *domainerror.InventoryError
	if errors.As(err, &invErr) {
		ctx.JSON(statusCodeForInventoryError(invErr.Code), dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForInventoryError maps inventory error codes to HTTP status codes.
func statusCodeForInventoryError(code domainerror.InventoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingInventoryFields,
		domainerror.ErrCodeInvalidQuantity:
		return http.StatusBadRequest
	case domainerror.ErrCodeSKUExists:
		return http.StatusConflict
	case domainerror.ErrCodeInventoryItemNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
