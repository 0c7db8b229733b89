package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medtrack/medicine-tracker-api/internal/dto"
	apierrors "github.com/medtrack/medicine-tracker-api/internal/errors"
	"github.com/medtrack/medicine-tracker-api/internal/middleware"
	"github.com/medtrack/medicine-tracker-api/internal/services"
)

// MedicineHandler coordinates medicine registry HTTP handlers.
type MedicineHandler struct {
	medicineService *services.MedicineService
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(medicineService *services.MedicineService) *MedicineHandler {
	return &MedicineHandler{
		medicineService: medicineService,
	}
}

// CreateMedicine registers a new medicine for the current user.
func (h *MedicineHandler) CreateMedicine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateMedicineRequest struct {
		Name      string     `json:"name" binding:"required"`
		Dosage    string     `json:"dosage"`
		Frequency string     `json:"frequency"`
		Times     []string   `json:"times"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		Notes     string     `json:"notes"`
		IsActive  *bool      `json:"is_active"`
	}

	var req CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.medicineService.CreateMedicine(services.CreateMedicineInput{
		UserID:    userID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Times:     req.Times,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondMedicineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMedicineDTO(*medicine))
}

// ListMedicines returns all medicines belonging to the current user.
func (h *MedicineHandler) ListMedicines(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	medicines, err := h.medicineService.ListMedicines(userID)
	if err != nil {
		respondMedicineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineDTOs(medicines))
}

// UpdateMedicine applies a partial update to one of the user's medicines.
func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	medicineID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateMedicineRequest struct {
		Name      *string    `json:"name"`
		Dosage    *string    `json:"dosage"`
		Frequency *string    `json:"frequency"`
		Times     []string   `json:"times"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		Notes     *string    `json:"notes"`
		IsActive  *bool      `json:"is_active"`
	}

	var req UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.medicineService.UpdateMedicine(medicineID, userID, services.UpdateMedicineInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Times:     req.Times,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondMedicineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineDTO(*medicine))
}

// DeleteMedicine removes one of the user's medicines.
func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	medicineID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.medicineService.DeleteMedicine(medicineID, userID); err != nil {
		respondMedicineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medicine removed"})
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid medicine ID")
		return 0, false
	}
	return id, true
}

func respondMedicineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMedicineNotFound):
		apierrors.NotFound(c, "Medicine not found")
	case errors.Is(err, services.ErrMedicineNameRequired),
		errors.Is(err, services.ErrInvalidScheduleTime),
		errors.Is(err, services.ErrInvalidDateRange):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
