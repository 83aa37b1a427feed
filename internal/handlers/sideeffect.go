package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/services"
)

type SideEffectHandler struct {
	sideEffectService services.SideEffectService
}

func NewSideEffectHandler(sideEffectService services.SideEffectService) *SideEffectHandler {
	return &SideEffectHandler{sideEffectService: sideEffectService}
}

func (sh *SideEffectHandler) List(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	logs, err := sh.sideEffectService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "FETCH_SIDE_EFFECTS_ERROR", err)
		return
	}
	RespondOK(c, gin.H{"data": logs})
}

func (sh *SideEffectHandler) Upsert(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var body struct {
		WeekStartDate string `json:"week_start_date"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}

	row, err := sh.sideEffectService.Upsert(c.Request.Context(), userID, body.WeekStartDate, body.Notes)
	if err != nil {
		switch {
		case errors.Is(err, pkgerr.ErrInvalidArgument):
			RespondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err)
		case errors.Is(err, pkgerr.ErrNoRoutine):
			RespondError(c, http.StatusBadRequest, "NO_ROUTINE", errors.New("create a routine first"))
		default:
			RespondError(c, http.StatusInternalServerError, "CREATE_SIDE_EFFECT_ERROR", err)
		}
		return
	}
	RespondCreated(c, gin.H{"data": row})
}
