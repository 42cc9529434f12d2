// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/application/usecase/calendar"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// CalendarController handles calendar endpoints.
type CalendarController struct {
	getMonthUseCase *calendar.GetMonthItemsUseCase
	getDateUseCase  *calendar.GetDateItemsUseCase
	clock           adapter.Clock
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(
	getMonthUseCase *calendar.GetMonthItemsUseCase,
	getDateUseCase *calendar.GetDateItemsUseCase,
	clock adapter.Clock,
) *CalendarController {
	return &CalendarController{
		getMonthUseCase: getMonthUseCase,
		getDateUseCase:  getDateUseCase,
		clock:           clock,
	}
}

// GetMonth handles GET /calendar/month requests. The year and month query
// parameters select the month (month is 0-based); when omitted they default
// to the current month.
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	now := c.clock.Now()
	year := now.Year()
	month := int(now.Month()) - 1

	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		year = parsed
	}
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		month = parsed
	}

	output, err := c.getMonthUseCase.Execute(ctx.Request.Context(), calendar.GetMonthItemsInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarMonthResponse(year, month, output.Cells, output.Map))
}

// GetDate handles GET /calendar/date/:dateKey requests.
func (c *CalendarController) GetDate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	dateKey := ctx.Param("dateKey")

	output, err := c.getDateUseCase.Execute(ctx.Request.Context(), calendar.GetDateItemsInput{
		UserID:  userID,
		DateKey: dateKey,
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarDateResponse(dateKey, output.Items))
}

// handleCalendarError maps calendar errors to HTTP responses.
func (c *CalendarController) handleCalendarError(ctx *gin.Context, err error) {
	var calErr *domainerror.CalendarError
	if errors.As(err, &calErr) {
		ctx.JSON(statusCodeForCalendarError(calErr.Code), dto.ErrorResponse{
			Error: calErr.Message,
			Code:  string(calErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCalendarError maps calendar error codes to HTTP status codes.
func statusCodeForCalendarError(code domainerror.CalendarErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateKey,
		domainerror.ErrCodeInvalidMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeMonthFetchFailed,
		domainerror.ErrCodeDateFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
