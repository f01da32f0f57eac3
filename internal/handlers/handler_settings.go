package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
}

// getSettings godoc
// @Summary Get the application settings
// @Description Defaults are returned until settings are saved for the first time
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Settings", "retrieve settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update the application settings
// @Description Tax tables are merged per client category; percentages must lie between 0 and 100
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Settings", "update settings")
		return
	}

	logger.Info("Settings updated")
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
