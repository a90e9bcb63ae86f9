package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type chartExportRequest struct {
	Type string `json:"type" binding:"required"`
	Data any    `json:"data"`
}

// @Summary      Export data
// @Description  Streams a JSON download of one collection ("devices",
// @Description  "alerts", "automation", "integrations", "maintenance") or all
// @Description  five for "all" or any unknown kind.
// @Tags         data
// @Produce      json
// @Param        type  query  string  false  "Collection to export"  Enums(devices,alerts,automation,integrations,maintenance,all)
// @Success      200   {string}  string  "JSON file"
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/data/export [get]
// @Security     BearerAuth
func (h *Handler) exportData(c *gin.Context) {
	kind := c.DefaultQuery("type", "all")
	file, err := h.services.Data.Export(kind)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to export data", "data_export_failed", err, "kind", kind)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", file.Payload)
}

// @Summary      Export chart data
// @Description  Wraps the posted chart data in a {type, timestamp, data}
// @Description  envelope and streams it as a JSON download.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  chartExportRequest  true  "Chart type and data"
// @Success      200   {string}  string  "JSON file"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/data/export/chart [post]
// @Security     BearerAuth
func (h *Handler) exportChart(c *gin.Context) {
	var req chartExportRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	file, err := h.services.Data.ExportChart(req.Type, req.Data)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to export chart", "chart_export_failed", err, "type", req.Type)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", file.Payload)
}

// @Summary      Import data
// @Description  Accepts an arbitrary JSON object and acknowledges it. The
// @Description  payload is not merged into any collection.
// @Tags         data
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/data/import [post]
// @Security     BearerAuth
func (h *Handler) importData(c *gin.Context) {
	var payload map[string]any
	if ok := h.bindJSONOrBadRequest(c, &payload); !ok {
		return
	}
	h.services.Data.Import(payload)
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}

// @Summary      Clear all data
// @Description  Resets devices to the seed set and empties alerts, automation
// @Description  rules and maintenance tasks. Integrations are untouched.
// @Tags         data
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, alerts"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/data/clear [post]
// @Security     BearerAuth
func (h *Handler) clearAllData(c *gin.Context) {
	h.services.Data.ClearAll()
	c.JSON(http.StatusOK, gin.H{
		"status": "cleared",
		"alerts": h.services.Alerts.List(),
	})
}
