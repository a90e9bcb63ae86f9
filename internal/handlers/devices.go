package handlers

import (
	"net/http"

	"softronix/internal/models"

	"github.com/gin-gonic/gin"
)

// DeviceConfigRequest is an exported model for Swagger docs of the configure
// payload. All fields are optional; absent fields are left untouched.
type DeviceConfigRequest struct {
	Name            *string  `json:"name,omitempty" example:"Smart Thermostat - Office"`
	Location        *string  `json:"location,omitempty" example:"Office Building A"`
	FirmwareVersion *string  `json:"firmware_version,omitempty" example:"v2.1.4"`
	Temperature     *float64 `json:"temperature,omitempty" example:"22.5"`
	Humidity        *float64 `json:"humidity,omitempty" example:"45"`
}

// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	devices := h.services.Devices.List()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(devices),
		"devices": devices,
	})
}

// @Summary      Get one device
// @Tags         devices
// @Produce      json
// @Param        id   path  string  true  "Device id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/devices/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDevice(c *gin.Context) {
	d, ok := h.services.Devices.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Toggle a device
// @Description  Flips the active flag and online/offline status. Devices in
// @Description  maintenance and unknown ids are silent no-ops.
// @Tags         devices
// @Produce      json
// @Param        id   path  string  true  "Device id"
// @Success      200  {object}  map[string]interface{}  "status, devices"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/devices/{id}/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleDevice(c *gin.Context) {
	h.services.Devices.Toggle(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"status":  "toggled",
		"devices": h.services.Devices.List(),
	})
}

// @Summary      Configure a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Device id"
// @Param        body  body  DeviceConfigRequest  true  "Config fields to merge"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/devices/{id}/config [put]
// @Security     BearerAuth
func (h *Handler) configureDevice(c *gin.Context) {
	var cfg models.DeviceConfig
	if ok := h.bindJSONOrBadRequest(c, &cfg); !ok {
		return
	}
	if err := h.services.Devices.Configure(c.Param("id"), cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "configured",
		"devices": h.services.Devices.List(),
	})
}
