package types

import (
	"encoding/json"
	"time"
)

type Operation string

const (
	OperationCreated Operation = "created"
	OperationUpdated Operation = "updated"
	OperationDeleted Operation = "deleted"
)

type EntityChanged struct {
	Entity    string    `json:"entity"`
	ID        string    `json:"id"`
	Operation Operation `json:"operation"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EntityChanged) ContentType() string {
	return "application/json"
}
func (e *EntityChanged) TopicName() string {
	return e.Entity + "." + string(e.Operation)
}
func (e *EntityChanged) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type AlertStatusChanged struct {
	AlertID   string      `json:"alertId"`
	OldStatus AlertStatus `json:"oldStatus"`
	NewStatus AlertStatus `json:"newStatus"`
	Actor     string      `json:"actor"`
	Comment   string      `json:"comment,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func (e *AlertStatusChanged) ContentType() string {
	return "application/json"
}
func (e *AlertStatusChanged) TopicName() string {
	return "alert.statusChanged"
}
func (e *AlertStatusChanged) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type AutomationExecuted struct {
	Log AutomationLog `json:"log"`
}

func (e *AutomationExecuted) ContentType() string {
	return "application/json"
}
func (e *AutomationExecuted) TopicName() string {
	return "automation.executed"
}
func (e *AutomationExecuted) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

// Notification is emitted by the notify action of an automation.
type Notification struct {
	AutomationID string            `json:"automationId"`
	Channel      string            `json:"channel,omitempty"`
	Recipient    string            `json:"recipient,omitempty"`
	Message      string            `json:"message"`
	Params       map[string]string `json:"params,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

func (e *Notification) ContentType() string {
	return "application/json"
}
func (e *Notification) TopicName() string {
	return "automation.notification"
}
func (e *Notification) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}
