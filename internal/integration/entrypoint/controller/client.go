// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/usecase/client"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// ClientController handles client endpoints.
type ClientController struct {
	createUseCase *client.CreateClientUseCase
	listUseCase   *client.ListClientsUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	createUseCase *client.CreateClientUseCase,
	listUseCase *client.ListClientsUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		UserID:      userID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), client.ListClientsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output.Clients))
}

// Update handles PATCH /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), client.UpdateClientInput{
		UserID:      userID,
		ClientID:    clientID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{
		UserID:   userID,
		ClientID: clientID,
	}); err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Client deleted",
	})
}

// handleClientError maps client errors to HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		ctx.JSON(statusCodeForClientError(clientErr.Code), dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForClientError maps client error codes to HTTP status codes.
func statusCodeForClientError(code domainerror.ClientErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingClientFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeClientPhoneExists:
		return http.StatusConflict
	case domainerror.ErrCodeClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedClient:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
