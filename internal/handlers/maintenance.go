package handlers

import (
	"net/http"

	"softronix/internal/models"

	"github.com/gin-gonic/gin"
)

// ScheduleTaskRequest is an exported model for Swagger docs of the schedule
// payload.
type ScheduleTaskRequest struct {
	DeviceID          string `json:"device_id" example:"1"`
	DeviceName        string `json:"device_name,omitempty" example:"Smart Thermostat - Office"`
	Type              string `json:"type" example:"Filter Replacement"`
	ScheduledDate     string `json:"scheduled_date" example:"2025-09-15T09:00:00Z"`
	Priority          string `json:"priority" example:"high"`
	Status            string `json:"status,omitempty" example:"pending"`
	AssignedTo        string `json:"assigned_to,omitempty" example:"John Smith"`
	EstimatedDuration int    `json:"estimated_duration" example:"30"`
}

// @Summary      List maintenance tasks
// @Tags         maintenance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, tasks"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/maintenance [get]
// @Security     BearerAuth
func (h *Handler) listMaintenanceTasks(c *gin.Context) {
	tasks := h.services.Maintenance.List()
	c.JSON(http.StatusOK, gin.H{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// @Summary      Schedule maintenance
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body  ScheduleTaskRequest  true  "Task definition"
// @Success      200   {object}  map[string]interface{}  "task"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/maintenance [post]
// @Security     BearerAuth
func (h *Handler) scheduleMaintenance(c *gin.Context) {
	var params models.TaskParams
	if ok := h.bindJSONOrBadRequest(c, &params); !ok {
		return
	}
	task, err := h.services.Maintenance.Schedule(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// @Summary      Complete a maintenance task
// @Description  Marks the task completed and pushes the owning device's next
// @Description  maintenance 90 days out.
// @Tags         maintenance
// @Produce      json
// @Param        id   path  string  true  "Task id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/maintenance/{id}/complete [post]
// @Security     BearerAuth
func (h *Handler) completeMaintenance(c *gin.Context) {
	h.services.Maintenance.Complete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
