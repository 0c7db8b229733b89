package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medtrack/medicine-tracker-api/internal/constants"
	"github.com/medtrack/medicine-tracker-api/internal/dto"
	apierrors "github.com/medtrack/medicine-tracker-api/internal/errors"
	"github.com/medtrack/medicine-tracker-api/internal/middleware"
	"github.com/medtrack/medicine-tracker-api/internal/models"
	"github.com/medtrack/medicine-tracker-api/internal/services"
)

// TrackingHandler coordinates dose logging and daily schedule HTTP handlers.
type TrackingHandler struct {
	trackingService *services.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// RecordStatus upserts the log entry for one scheduled dose.
func (h *TrackingHandler) RecordStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type RecordStatusRequest struct {
		MedicineID    uint64 `json:"medicine_id" binding:"required"`
		Date          string `json:"date" binding:"required"`
		ScheduledTime string `json:"scheduled_time" binding:"required"`
		Status        string `json:"status" binding:"required"`
		Notes         string `json:"notes"`
	}

	var req RecordStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "medicine_id, date, scheduled_time and status are required")
		return
	}

	date, err := time.Parse(constants.DateLayout, req.Date)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := h.trackingService.RecordStatus(services.RecordStatusInput{
		UserID:        userID,
		MedicineID:    req.MedicineID,
		Date:          date,
		ScheduledTime: req.ScheduledTime,
		Status:        models.DoseStatus(req.Status),
		Notes:         req.Notes,
	})
	if err != nil {
		respondTrackingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDoseLogDTO(*entry))
}

// ListLogs returns the user's dose log history, optionally bounded by an
// inclusive date range.
func (h *TrackingHandler) ListLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	from, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}

	entries, err := h.trackingService.ListLogs(services.ListLogsInput{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		respondTrackingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDoseLogDTOs(entries))
}

// DailySchedule resolves the dose view for one day. Defaults to today when
// no date parameter is given.
func (h *TrackingHandler) DailySchedule(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	asOf := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(constants.DateLayout, dateStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	doses, err := h.trackingService.DailySchedule(userID, asOf)
	if err != nil {
		respondTrackingError(c, err)
		return
	}

	c.JSON(http.StatusOK, doses)
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name+", expected YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}

func respondTrackingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMedicineNotFound):
		apierrors.NotFound(c, "Medicine not found")
	case errors.Is(err, services.ErrDuplicateDoseLog):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeConflict, err.Error())
	case errors.Is(err, services.ErrInvalidDoseStatus),
		errors.Is(err, services.ErrNotesTooLong),
		errors.Is(err, services.ErrInvalidScheduleTime):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
