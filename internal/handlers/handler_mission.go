package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// missionHandler handles HTTP requests related to scheduled missions.
type missionHandler struct {
	missionService portssvc.MissionSvcFacade
}

func newMissionHandler(ms portssvc.MissionSvcFacade) *missionHandler {
	return &missionHandler{missionService: ms}
}

func registerMissionRoutes(rg *gin.RouterGroup, missionService portssvc.MissionSvcFacade) {
	h := newMissionHandler(missionService)

	missions := rg.Group("/missions")
	{
		missions.POST("", h.scheduleMission)
		missions.GET("", h.listMissions)
		missions.GET("/:missionID", h.getMission)
		missions.PUT("/:missionID", h.updateMission)
		missions.DELETE("/:missionID", h.deleteMission)
	}
}

// scheduleMission godoc
// @Summary Schedule a mission
// @Description Stores a mission at a client's property and returns a Google Calendar link for it
// @Tags missions
// @Accept  json
// @Produce  json
// @Param   mission body dto.CreateMissionRequest true "Mission details"
// @Success 201 {object} dto.ScheduleMissionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown client"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions [post]
func (h *missionHandler) scheduleMission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMissionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("client_id", req.ClientID))

	mission, link, err := h.missionService.ScheduleMission(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Mission", "schedule mission")
		return
	}

	logger.Info("Mission scheduled", slog.String("mission_id", mission.MissionID))
	c.JSON(http.StatusCreated, dto.ScheduleMissionResponse{
		Mission:      dto.ToMissionResponse(mission),
		CalendarLink: link,
	})
}

// listMissions godoc
// @Summary List missions
// @Tags missions
// @Produce  json
// @Param   clientId query string false "Only missions of this client"
// @Success 200 {array} dto.MissionResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions [get]
func (h *missionHandler) listMissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	missions, err := h.missionService.ListMissions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Mission", "list missions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMissionResponse(missions))
}

// getMission godoc
// @Summary Get a mission
// @Tags missions
// @Produce  json
// @Param   missionID path string true "Mission ID"
// @Success 200 {object} dto.MissionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{missionID} [get]
func (h *missionHandler) getMission(c *gin.Context) {
	missionID := c.Param("missionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("mission_id", missionID))

	mission, err := h.missionService.GetMissionByID(c.Request.Context(), missionID)
	if err != nil {
		respondServiceError(c, logger, err, "Mission", "retrieve mission")
		return
	}
	c.JSON(http.StatusOK, dto.ToMissionResponse(mission))
}

// updateMission godoc
// @Summary Update a mission
// @Tags missions
// @Accept  json
// @Produce  json
// @Param   missionID path string true "Mission ID"
// @Param   mission body dto.UpdateMissionRequest true "Fields to update"
// @Success 200 {object} dto.MissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{missionID} [put]
func (h *missionHandler) updateMission(c *gin.Context) {
	missionID := c.Param("missionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("mission_id", missionID))
	var req dto.UpdateMissionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	mission, err := h.missionService.UpdateMission(c.Request.Context(), missionID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Mission", "update mission")
		return
	}

	logger.Info("Mission updated")
	c.JSON(http.StatusOK, dto.ToMissionResponse(mission))
}

// deleteMission godoc
// @Summary Delete a mission
// @Tags missions
// @Param   missionID path string true "Mission ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{missionID} [delete]
func (h *missionHandler) deleteMission(c *gin.Context) {
	missionID := c.Param("missionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("mission_id", missionID))

	if err := h.missionService.DeleteMission(c.Request.Context(), missionID); err != nil {
		respondServiceError(c, logger, err, "Mission", "delete mission")
		return
	}

	logger.Info("Mission deleted")
	c.Status(http.StatusNoContent)
}
