// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taxometer/backend/internal/application/usecase/shift"
	domainerror "github.com/taxometer/backend/internal/domain/error"
	"github.com/taxometer/backend/internal/integration/entrypoint/dto"
)

// ShiftController handles shift endpoints.
type ShiftController struct {
	listUseCase    *shift.ListShiftsUseCase
	createUseCase  *shift.CreateShiftUseCase
	getUseCase     *shift.GetShiftUseCase
	updateUseCase  *shift.UpdateShiftUseCase
	deleteUseCase  *shift.DeleteShiftUseCase
	previewUseCase *shift.PreviewShiftUseCase
	location       *time.Location
}

// NewShiftController creates a new shift controller instance.
// Request dates without an offset are read in location.
func NewShiftController(
	listUseCase *shift.ListShiftsUseCase,
	createUseCase *shift.CreateShiftUseCase,
	getUseCase *shift.GetShiftUseCase,
	updateUseCase *shift.UpdateShiftUseCase,
	deleteUseCase *shift.DeleteShiftUseCase,
	previewUseCase *shift.PreviewShiftUseCase,
	location *time.Location,
) *ShiftController {
	if location == nil {
		location = time.Local
	}
	return &ShiftController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		previewUseCase: previewUseCase,
		location:       location,
	}
}

// List handles GET /shifts requests.
func (c *ShiftController) List(ctx *gin.Context) {
	input := shift.ListShiftsInput{}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftListResponse(output))
}

// Create handles POST /shifts requests.
func (c *ShiftController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), shift.CreateShiftInput{Fields: fields})
	if err != nil {
		c.handleShiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.FromShiftOutput(output.Shift))
}

// Preview handles POST /shifts/preview requests.
// It computes the live figures of an unsaved shift.
func (c *ShiftController) Preview(ctx *gin.Context) {
	var req dto.ShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingShiftFields),
		})
		return
	}

	// A preview does not need a valid date yet.
	fields, _ := req.ToFields(c.location)

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), shift.PreviewShiftInput{Fields: fields})
	if err != nil {
		c.handleShiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output.Breakdown))
}

// Get handles GET /shifts/:id requests.
func (c *ShiftController) Get(ctx *gin.Context) {
	input := shift.GetShiftInput{
		ShiftID: ctx.Param("id"),
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromShiftOutput(output.Shift))
}

// Update handles PUT /shifts/:id requests.
// The body replaces every editable field of the shift.
func (c *ShiftController) Update(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	input := shift.UpdateShiftInput{
		ShiftID: ctx.Param("id"),
		Fields:  fields,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromShiftOutput(output.Shift))
}

// Delete handles DELETE /shifts/:id requests.
func (c *ShiftController) Delete(ctx *gin.Context) {
	input := shift.DeleteShiftInput{
		ShiftID: ctx.Param("id"),
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleShiftError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindFields parses the request body into shift fields, writing the error response itself.
func (c *ShiftController) bindFields(ctx *gin.Context) (shift.ShiftFields, bool) {
	var req dto.ShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingShiftFields),
		})
		return shift.ShiftFields{}, false
	}

	fields, err := req.ToFields(c.location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid shift date",
			Code:    string(domainerror.ErrCodeInvalidShiftDate),
			Details: err.Error(),
		})
		return shift.ShiftFields{}, false
	}
	return fields, true
}

// handleShiftError handles shift errors and returns appropriate HTTP responses.
func (c *ShiftController) handleShiftError(ctx *gin.Context, err error) {
	var shiftErr *domainerror.ShiftError
	if errors.As(err, &shiftErr) {
		statusCode := c.getStatusCodeForShiftError(shiftErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: shiftErr.Message,
			Code:  string(shiftErr.Code),
		})
		return
	}

	if handleStorageError(ctx, err) {
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForShiftError maps shift error codes to HTTP status codes.
func (c *ShiftController) getStatusCodeForShiftError(code domainerror.ShiftErrorCode) int {
	switch code {
	case domainerror.ErrCodeShiftNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidShiftDate, domainerror.ErrCodeMissingShiftFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleStorageError writes the response for storage errors and reports whether err was one.
func handleStorageError(ctx *gin.Context, err error) bool {
	var storageErr *domainerror.StorageError
	if !errors.As(err, &storageErr) {
		return false
	}

	statusCode := http.StatusInternalServerError
	switch storageErr.Code {
	case domainerror.ErrCodeStoreNotLoaded, domainerror.ErrCodeBackendUnavailable:
		statusCode = http.StatusServiceUnavailable
	}

	ctx.JSON(statusCode, dto.ErrorResponse{
		Error: storageErr.Message,
		Code:  string(storageErr.Code),
	})
	return true
}
