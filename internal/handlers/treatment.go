package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/services"
)

type TreatmentHandler struct {
	treatmentService services.TreatmentService
}

func NewTreatmentHandler(treatmentService services.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{treatmentService: treatmentService}
}

func (th *TreatmentHandler) List(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	treatments, err := th.treatmentService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "FETCH_TREATMENTS_ERROR", err)
		return
	}
	RespondOK(c, gin.H{"data": treatments})
}

func (th *TreatmentHandler) Create(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var body struct {
		Name             string `json:"name"`
		FrequencyPerWeek int    `json:"frequency_per_week"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}

	treatment, err := th.treatmentService.Create(c.Request.Context(), userID, body.Name, body.FrequencyPerWeek)
	if err != nil {
		switch {
		case errors.Is(err, pkgerr.ErrInvalidArgument):
			RespondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err)
		case errors.Is(err, pkgerr.ErrNoRoutine):
			RespondError(c, http.StatusBadRequest, "NO_ROUTINE", errors.New("create a routine first before adding treatments"))
		default:
			RespondError(c, http.StatusInternalServerError, "CREATE_TREATMENT_ERROR", err)
		}
		return
	}
	RespondCreated(c, gin.H{"data": treatment})
}

func (th *TreatmentHandler) Update(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_TREATMENT_ID", err)
		return
	}

	var body struct {
		Name             *string `json:"name"`
		FrequencyPerWeek *int    `json:"frequency_per_week"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}

	updated, err := th.treatmentService.Update(c.Request.Context(), userID, treatmentID, services.TreatmentUpdate{
		Name:             body.Name,
		FrequencyPerWeek: body.FrequencyPerWeek,
	})
	if err != nil {
		switch {
		case errors.Is(err, pkgerr.ErrInvalidArgument):
			RespondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err)
		case errors.Is(err, pkgerr.ErrNoRoutine):
			RespondError(c, http.StatusNotFound, "NO_ROUTINE", errors.New("no routine found"))
		case errors.Is(err, pkgerr.ErrNotFound):
			RespondError(c, http.StatusNotFound, "NOT_FOUND", errors.New("treatment not found"))
		default:
			RespondError(c, http.StatusInternalServerError, "UPDATE_TREATMENT_ERROR", err)
		}
		return
	}
	RespondOK(c, gin.H{"data": updated})
}

func (th *TreatmentHandler) Delete(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_TREATMENT_ID", err)
		return
	}

	if err := th.treatmentService.Delete(c.Request.Context(), userID, treatmentID); err != nil {
		switch {
		case errors.Is(err, pkgerr.ErrNoRoutine):
			RespondError(c, http.StatusNotFound, "NO_ROUTINE", errors.New("no routine found"))
		case errors.Is(err, pkgerr.ErrNotFound):
			RespondError(c, http.StatusNotFound, "NOT_FOUND", errors.New("treatment not found"))
		default:
			RespondError(c, http.StatusInternalServerError, "DELETE_TREATMENT_ERROR", err)
		}
		return
	}
	RespondOK(c, gin.H{"data": gin.H{"id": treatmentID}})
}
