package handlers

import (
	"net/http"

	"softronix/internal/models"

	"github.com/gin-gonic/gin"
)

// AddRuleRequest is an exported model for Swagger docs of the add-rule payload.
type AddRuleRequest struct {
	Name      string `json:"name" example:"Temperature Alert"`
	Condition string `json:"condition" example:"Temperature > 25°C"`
	Action    string `json:"action" example:"Send notification & adjust HVAC"`
	IsActive  bool   `json:"is_active" example:"true"`
}

// @Summary      List automation rules
// @Tags         automation
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, rules"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/automation [get]
// @Security     BearerAuth
func (h *Handler) listAutomationRules(c *gin.Context) {
	rules := h.services.Automation.List()
	c.JSON(http.StatusOK, gin.H{
		"count": len(rules),
		"rules": rules,
	})
}

// @Summary      Add an automation rule
// @Description  Condition and action are stored as free text; no engine evaluates them.
// @Tags         automation
// @Accept       json
// @Produce      json
// @Param        body  body  AddRuleRequest  true  "Rule definition"
// @Success      200   {object}  map[string]interface{}  "rule"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/automation [post]
// @Security     BearerAuth
func (h *Handler) addAutomationRule(c *gin.Context) {
	var params models.RuleParams
	if ok := h.bindJSONOrBadRequest(c, &params); !ok {
		return
	}
	rule, err := h.services.Automation.Add(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// @Summary      Toggle an automation rule
// @Tags         automation
// @Produce      json
// @Param        id   path  string  true  "Rule id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/automation/{id}/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleAutomationRule(c *gin.Context) {
	h.services.Automation.Toggle(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "toggled"})
}

// @Summary      Delete an automation rule
// @Tags         automation
// @Produce      json
// @Param        id   path  string  true  "Rule id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/automation/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteAutomationRule(c *gin.Context) {
	h.services.Automation.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
