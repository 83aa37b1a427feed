package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/requestdata"
	"github.com/strandlab/strand-backend/internal/services"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type TrackerHandler struct {
	trackerService services.TrackerService
}

func NewTrackerHandler(trackerService services.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

func userIDFrom(c *gin.Context) (string, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", errors.New("missing user authentication"))
		return "", false
	}
	return rd.UserID, true
}

// GetSummary handles GET /api/tracker/summary. First call for a user with
// legacy rows seeds the normalized routine as a side effect.
func (th *TrackerHandler) GetSummary(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	summary, err := th.trackerService.GetWeeklySummary(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "SUMMARY_ERROR", err)
		return
	}
	if summary == nil {
		RespondError(c, http.StatusNotFound, "NO_ROUTINE", errors.New("no routine found for this user"))
		return
	}
	RespondOK(c, gin.H{"data": summary})
}

// GetHeatmap handles GET /api/tracker/heatmap?month=YYYY-MM.
func (th *TrackerHandler) GetHeatmap(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if !monthRe.MatchString(month) {
		RespondError(c, http.StatusBadRequest, "INVALID_MONTH", errors.New("month query param required in YYYY-MM format"))
		return
	}

	heatmap, err := th.trackerService.GetMonthlyHeatmap(c.Request.Context(), userID, month)
	if err != nil {
		if errors.Is(err, pkgerr.ErrInvalidArgument) {
			RespondError(c, http.StatusBadRequest, "INVALID_MONTH", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "HEATMAP_ERROR", err)
		return
	}
	if heatmap == nil {
		RespondError(c, http.StatusNotFound, "NO_ROUTINE", errors.New("no routine found for this user"))
		return
	}
	RespondOK(c, gin.H{"data": heatmap})
}

// GetRoutine handles GET /api/tracker/routine. Absent routine is data: null,
// not an error; the client uses it to branch into onboarding.
func (th *TrackerHandler) GetRoutine(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	routine, err := th.trackerService.GetRoutine(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "FETCH_ROUTINE_ERROR", err)
		return
	}
	if routine == nil {
		RespondOK(c, gin.H{"data": nil})
		return
	}
	RespondOK(c, gin.H{"data": routine})
}

// CreateRoutine handles POST /api/tracker/routine.
func (th *TrackerHandler) CreateRoutine(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	routine, err := th.trackerService.CreateRoutine(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, pkgerr.ErrRoutineExists) {
			RespondError(c, http.StatusConflict, "ROUTINE_EXISTS", fmt.Errorf("user already has an active routine"))
			return
		}
		RespondError(c, http.StatusInternalServerError, "CREATE_ROUTINE_ERROR", err)
		return
	}
	RespondCreated(c, gin.H{"data": routine})
}
