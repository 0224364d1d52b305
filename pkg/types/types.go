package types

import (
	"time"
)

// Meta holds the identity and timestamps shared by every stored entity.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) GetMeta() *Meta {
	return m
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "new"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusSnoozed      AlertStatus = "snoozed"
	AlertStatusEscalated    AlertStatus = "escalated"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusNew, AlertStatusAcknowledged, AlertStatusResolved, AlertStatusSnoozed, AlertStatusEscalated:
		return true
	}
	return false
}

type Alert struct {
	Meta

	RuleID   string      `json:"ruleId,omitempty"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Severity Severity    `json:"severity"`
	Status   AlertStatus `json:"status"`

	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	AcknowledgedBy string     `json:"acknowledgedBy,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy     string     `json:"resolvedBy,omitempty"`
	SnoozedUntil   *time.Time `json:"snoozedUntil,omitempty"`
	EscalatedAt    *time.Time `json:"escalatedAt,omitempty"`
	EscalatedTo    string     `json:"escalatedTo,omitempty"`

	// EscalationLevel counts the escalations performed so far and indexes the
	// next recipient in the rule's escalation order.
	EscalationLevel int `json:"escalationLevel,omitempty"`

	Source     string            `json:"source"`
	Department string            `json:"department"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelTeams Channel = "teams"
	ChannelSlack Channel = "slack"
	ChannelSMS   Channel = "sms"
	ChannelInApp Channel = "in-app"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelTeams, ChannelSlack, ChannelSMS, ChannelInApp:
		return true
	}
	return false
}

type RecipientType string

const (
	RecipientUser  RecipientType = "user"
	RecipientGroup RecipientType = "group"
	RecipientRole  RecipientType = "role"
)

type AlertRecipient struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Type     RecipientType      `json:"type"`
	Order    int                `json:"order"`
	Contacts map[Channel]string `json:"contacts,omitempty"`
}

type AlertRule struct {
	Meta

	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Condition         string           `json:"condition"`
	NaturalLanguage   string           `json:"naturalLanguage,omitempty"`
	Threshold         *float64         `json:"threshold,omitempty"`
	Severity          Severity         `json:"severity,omitempty"`
	Channels          []Channel        `json:"channels"`
	Recipients        []AlertRecipient `json:"recipients"`
	Department        string           `json:"department"`
	Enabled           bool             `json:"enabled"`
	EscalationMinutes int              `json:"escalationMinutes"`
}

type RuleCategory string

const (
	CategoryRevenue     RuleCategory = "revenue"
	CategoryPTO         RuleCategory = "pto"
	CategoryPerformance RuleCategory = "performance"
	CategoryGeneric     RuleCategory = "generic"
)

// AlertPromptRule is a rule skeleton extracted from free text. It is not
// persisted until it is turned into an AlertRule.
type AlertPromptRule struct {
	AlertRule
	Category RuleCategory `json:"category"`
}

type TriggerType string

const (
	TriggerSchedule  TriggerType = "schedule"
	TriggerEvent     TriggerType = "event"
	TriggerCondition TriggerType = "condition"
)

type Frequency string

const (
	FrequencyHourly  Frequency = "hourly"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Trigger struct {
	Type        TriggerType    `json:"type" yaml:"type"`
	Config      map[string]any `json:"config,omitempty" yaml:"config"`
	Description string         `json:"description,omitempty" yaml:"description"`
}

func (t Trigger) Frequency() Frequency {
	if t.Config == nil {
		return ""
	}
	f, _ := t.Config["frequency"].(string)
	return Frequency(f)
}

type Action struct {
	Type        string         `json:"type" yaml:"type"`
	Params      map[string]any `json:"params,omitempty" yaml:"params"`
	Description string         `json:"description,omitempty" yaml:"description"`
}

type AutomationStatus string

const (
	AutomationActive AutomationStatus = "active"
	AutomationPaused AutomationStatus = "paused"
	AutomationDraft  AutomationStatus = "draft"
	AutomationError  AutomationStatus = "error"
)

func (s AutomationStatus) Valid() bool {
	switch s {
	case AutomationActive, AutomationPaused, AutomationDraft, AutomationError:
		return true
	}
	return false
}

type Automation struct {
	Meta

	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Trigger     Trigger          `json:"trigger"`
	Actions     []Action         `json:"actions"`
	Status      AutomationStatus `json:"status"`
	LastRun     *time.Time       `json:"lastRun,omitempty"`
	NextRun     *time.Time       `json:"nextRun,omitempty"`
	CreatedBy   string           `json:"createdBy,omitempty"`
	IsSystem    bool             `json:"isSystem"`
	SuggestedBy string           `json:"suggestedBy,omitempty"`
}

type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogWarning LogStatus = "warning"
	LogError   LogStatus = "error"
)

type AutomationLog struct {
	ID             string    `json:"id"`
	AutomationID   string    `json:"automationId"`
	AutomationName string    `json:"automationName"`
	Timestamp      time.Time `json:"timestamp"`
	Status         LogStatus `json:"status"`
	Message        string    `json:"message"`
	Details        string    `json:"details,omitempty"`
}

type Collection[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	TotalCount uint64 `json:"totalCount"`
}

func NewCollection[T any](data []T) Collection[T] {
	if data == nil {
		data = []T{}
	}
	return Collection[T]{
		Data:       data,
		Count:      uint64(len(data)),
		TotalCount: uint64(len(data)),
	}
}
