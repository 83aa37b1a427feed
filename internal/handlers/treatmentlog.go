package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/services"
)

type TreatmentLogHandler struct {
	logService services.TreatmentLogService
}

func NewTreatmentLogHandler(logService services.TreatmentLogService) *TreatmentLogHandler {
	return &TreatmentLogHandler{logService: logService}
}

// List handles GET /api/tracker/treatment-logs?month=YYYY-MM.
func (lh *TreatmentLogHandler) List(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if !monthRe.MatchString(month) {
		RespondError(c, http.StatusBadRequest, "INVALID_MONTH", errors.New("month query param required in YYYY-MM format"))
		return
	}

	entries, err := lh.logService.ListMonth(c.Request.Context(), userID, month)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "FETCH_LOGS_ERROR", err)
		return
	}
	RespondOK(c, gin.H{"data": entries})
}

// Upsert handles POST /api/tracker/treatment-logs.
func (lh *TreatmentLogHandler) Upsert(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var body struct {
		TreatmentID uuid.UUID `json:"treatment_id"`
		Date        string    `json:"date"`
		Completed   *bool     `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	if body.Completed == nil {
		RespondError(c, http.StatusBadRequest, "INVALID_COMPLETED", errors.New("completed must be a boolean"))
		return
	}

	row, err := lh.logService.Upsert(c.Request.Context(), userID, body.TreatmentID, body.Date, *body.Completed)
	if err != nil {
		switch {
		case errors.Is(err, pkgerr.ErrInvalidArgument):
			RespondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err)
		case errors.Is(err, pkgerr.ErrNoRoutine):
			RespondError(c, http.StatusNotFound, "NO_ROUTINE", errors.New("no routine found"))
		case errors.Is(err, pkgerr.ErrNotFound):
			RespondError(c, http.StatusNotFound, "TREATMENT_NOT_FOUND", errors.New("treatment not found in your routine"))
		default:
			RespondError(c, http.StatusInternalServerError, "CREATE_LOG_ERROR", err)
		}
		return
	}
	RespondCreated(c, gin.H{"data": row})
}
