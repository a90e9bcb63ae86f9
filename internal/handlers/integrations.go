package handlers

import (
	"net/http"

	"softronix/internal/models"

	"github.com/gin-gonic/gin"
)

// AddIntegrationRequest is an exported model for Swagger docs of the
// add-integration payload.
type AddIntegrationRequest struct {
	Name             string `json:"name" example:"AWS IoT Core"`
	Type             string `json:"type" example:"cloud"`
	Status           string `json:"status" example:"disconnected"`
	ConnectionString string `json:"connection_string,omitempty" example:"iot.us-east-1.amazonaws.com"`
	APIKey           string `json:"api_key,omitempty"`
}

// @Summary      List integrations
// @Tags         integrations
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, integrations"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/integrations [get]
// @Security     BearerAuth
func (h *Handler) listIntegrations(c *gin.Context) {
	integrations := h.services.Integrations.List()
	c.JSON(http.StatusOK, gin.H{
		"count":        len(integrations),
		"integrations": integrations,
	})
}

// @Summary      Add an integration
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Param        body  body  AddIntegrationRequest  true  "Integration definition"
// @Success      200   {object}  map[string]interface{}  "integration"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/integrations [post]
// @Security     BearerAuth
func (h *Handler) addIntegration(c *gin.Context) {
	var params models.IntegrationParams
	if ok := h.bindJSONOrBadRequest(c, &params); !ok {
		return
	}
	integration, err := h.services.Integrations.Add(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"integration": integration})
}

// @Summary      Test an integration
// @Description  Marks the integration connected and refreshes its sync
// @Description  timestamp. No endpoint is actually probed.
// @Tags         integrations
// @Produce      json
// @Param        id   path  string  true  "Integration id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/integrations/{id}/test [post]
// @Security     BearerAuth
func (h *Handler) testIntegration(c *gin.Context) {
	h.services.Integrations.Test(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "tested"})
}

// @Summary      Remove an integration
// @Tags         integrations
// @Produce      json
// @Param        id   path  string  true  "Integration id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/integrations/{id} [delete]
// @Security     BearerAuth
func (h *Handler) removeIntegration(c *gin.Context) {
	h.services.Integrations.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
