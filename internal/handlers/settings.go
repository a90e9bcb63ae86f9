package handlers

import (
	"net/http"

	"softronix/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.Settings
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings [get]
// @Security     BearerAuth
func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.services.Settings.Load()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load settings", "settings_load_failed", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary      Save settings
// @Description  Replaces the whole settings form under its fixed key.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  models.Settings  true  "Settings form"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/settings [put]
// @Security     BearerAuth
func (h *Handler) saveSettings(c *gin.Context) {
	var settings models.Settings
	if ok := h.bindJSONOrBadRequest(c, &settings); !ok {
		return
	}
	if err := h.services.Settings.Save(settings); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to save settings", "settings_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
