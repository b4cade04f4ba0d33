// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taxometer/backend/internal/application/usecase/dashboard"
	domainerror "github.com/taxometer/backend/internal/domain/error"
	"github.com/taxometer/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetPeriodSummaryUseCase
	chartUseCase   *dashboard.GetChartSeriesUseCase
	detailUseCase  *dashboard.GetPeriodDetailUseCase
	rangeUseCase   *dashboard.GetDataRangeUseCase
	location       *time.Location
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetPeriodSummaryUseCase,
	chartUseCase *dashboard.GetChartSeriesUseCase,
	detailUseCase *dashboard.GetPeriodDetailUseCase,
	rangeUseCase *dashboard.GetDataRangeUseCase,
	location *time.Location,
) *DashboardController {
	if location == nil {
		location = time.Local
	}
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		chartUseCase:   chartUseCase,
		detailUseCase:  detailUseCase,
		rangeUseCase:   rangeUseCase,
		location:       location,
	}
}

// GetSummary handles GET /dashboard/summary requests.
// Query parameters:
//   - period (required): day, week or month
//   - date (optional): any day inside the period, format YYYY-MM-DD; defaults to today
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	date, ok := c.parseDate(ctx, query.Date)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetPeriodSummaryInput{
		Period: query.Period,
		Date:   date,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(output.Summary))
}

// GetChart handles GET /dashboard/chart requests.
// Query parameters:
//   - period (required): day, week or month
//   - length (optional): number of buckets, 1 to 366; defaults per period
func (c *DashboardController) GetChart(ctx *gin.Context) {
	var query dto.ChartQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidSeriesLength.Error(),
			Code:  string(domainerror.ErrCodeInvalidSeriesLength),
		})
		return
	}

	output, err := c.chartUseCase.Execute(ctx.Request.Context(), dashboard.GetChartSeriesInput{
		Period: query.Period,
		Length: query.Length,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartSeriesResponse(output))
}

// GetDetail handles GET /dashboard/detail requests.
// It accepts the same query parameters as GetSummary and adds the period's shifts.
func (c *DashboardController) GetDetail(ctx *gin.Context) {
	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	date, ok := c.parseDate(ctx, query.Date)
	if !ok {
		return
	}

	output, err := c.detailUseCase.Execute(ctx.Request.Context(), dashboard.GetPeriodDetailInput{
		Period: query.Period,
		Date:   date,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodDetailResponse(output))
}

// GetDataRange handles GET /dashboard/range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	output, err := c.rangeUseCase.Execute(ctx.Request.Context(), dashboard.GetDataRangeInput{})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}

// parseDate reads an optional day parameter, writing the error response itself.
func (c *DashboardController) parseDate(ctx *gin.Context, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}

	date, err := dashboard.ParseDay(value, c.location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidDateFormat.Error(),
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return nil, false
	}
	return &date, true
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	if handleStorageError(ctx, err) {
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeMissingPeriod,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidSeriesLength:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
