package models

import "time"

// AutomationRule is a stored automation definition. Condition and action are
// free text; no rule engine evaluates them.
type AutomationRule struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Condition     string     `json:"condition"`
	Action        string     `json:"action"`
	IsActive      bool       `json:"is_active"`
	LastTriggered *time.Time `json:"last_triggered,omitempty"`
	TriggerCount  int        `json:"trigger_count"`
}

// RuleParams is the caller-supplied part of a new rule; the store assigns the
// id and zeroes the trigger counter.
type RuleParams struct {
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
	IsActive  bool   `json:"is_active"`
}
