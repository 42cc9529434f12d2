// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelier-crm/backend/internal/application/usecase/dashboard"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase  *dashboard.GetOverviewUseCase
	trendsUseCase    *dashboard.GetOrderTrendsUseCase
	breakdownUseCase *dashboard.GetInventoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *dashboard.GetOverviewUseCase,
	trendsUseCase *dashboard.GetOrderTrendsUseCase,
	breakdownUseCase *dashboard.GetInventoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase:  overviewUseCase,
		trendsUseCase:    trendsUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetOverview handles GET /dashboard/overview requests.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// GetOrderTrends handles GET /dashboard/order-trends requests. An optional
// ?months= query parameter sets the trailing window.
func (c *DashboardController) GetOrderTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months := 0
	if raw := ctx.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months value",
				Code:  string(domainerror.ErrCodeInvalidTrendWindow),
			})
			return
		}
		months = parsed
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), dashboard.GetOrderTrendsInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OrderTrendsResponse{
		Points: output.Points,
	})
}

// GetInventoryBreakdown handles GET /dashboard/inventory-breakdown requests.
func (c *DashboardController) GetInventoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetInventoryBreakdownInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InventoryBreakdownResponse{
		Slices:        output.Slices,
		TotalQuantity: output.TotalQuantity,
	})
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(statusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func statusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTrendWindow:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
