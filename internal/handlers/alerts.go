package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List alerts
// @Description  Newest first. Acknowledged alerts stay in the feed until dismissed.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, alerts"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/alerts [get]
// @Security     BearerAuth
func (h *Handler) listAlerts(c *gin.Context) {
	alerts := h.services.Alerts.List()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(alerts),
		"alerts": alerts,
	})
}

// @Summary      Acknowledge an alert
// @Tags         alerts
// @Produce      json
// @Param        id   path  string  true  "Alert id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/alerts/{id}/acknowledge [post]
// @Security     BearerAuth
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	h.services.Alerts.Acknowledge(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "acknowledged"})
}

// @Summary      Dismiss an alert
// @Description  Removes the alert permanently; this is not a read marker.
// @Tags         alerts
// @Produce      json
// @Param        id   path  string  true  "Alert id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/alerts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) dismissAlert(c *gin.Context) {
	h.services.Alerts.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "dismissed"})
}
