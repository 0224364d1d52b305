package application

import (
	"io"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/alerts"
	"github.com/diwise/alert-mgmt/internal/pkg/application/executor"
	"github.com/diwise/alert-mgmt/internal/pkg/application/scheduler"
	"github.com/diwise/alert-mgmt/pkg/types"
	yaml "gopkg.in/yaml.v2"
)

type AlertsConfig struct {
	SnoozeMinutes     int    `yaml:"snoozeMinutes"`
	FallbackRecipient string `yaml:"fallbackRecipient"`
	AutoEscalate      *bool  `yaml:"autoEscalate"`
}

type SchedulerConfig struct {
	IntervalSeconds int `yaml:"intervalSeconds"`
}

type RecipientSeed struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Type     string            `yaml:"type"`
	Order    int               `yaml:"order"`
	Contacts map[string]string `yaml:"contacts"`
}

type RuleSeed struct {
	ID                string          `yaml:"id"`
	Name              string          `yaml:"name"`
	Description       string          `yaml:"description"`
	Condition         string          `yaml:"condition"`
	NaturalLanguage   string          `yaml:"naturalLanguage"`
	Threshold         *float64        `yaml:"threshold"`
	Severity          string          `yaml:"severity"`
	Channels          []string        `yaml:"channels"`
	Recipients        []RecipientSeed `yaml:"recipients"`
	Department        string          `yaml:"department"`
	Enabled           *bool           `yaml:"enabled"`
	EscalationMinutes int             `yaml:"escalationMinutes"`
}

type AutomationSeed struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Category    string         `yaml:"category"`
	Trigger     types.Trigger  `yaml:"trigger"`
	Actions     []types.Action `yaml:"actions"`
	Status      string         `yaml:"status"`
	IsSystem    bool           `yaml:"isSystem"`
}

type Config struct {
	Alerts        AlertsConfig            `yaml:"alerts"`
	Scheduler     SchedulerConfig         `yaml:"scheduler"`
	Notifications []executor.Notification `yaml:"notifications"`
	Rules         []RuleSeed              `yaml:"rules"`
	Automations   []AutomationSeed        `yaml:"automations"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}

func (c *Config) alertsConfig() alerts.Config {
	cfg := alerts.DefaultConfig()
	if c == nil {
		return cfg
	}

	if c.Alerts.SnoozeMinutes > 0 {
		cfg.SnoozeDuration = time.Duration(c.Alerts.SnoozeMinutes) * time.Minute
	}
	if c.Alerts.FallbackRecipient != "" {
		cfg.FallbackRecipient = c.Alerts.FallbackRecipient
	}
	if c.Alerts.AutoEscalate != nil {
		cfg.AutoEscalate = *c.Alerts.AutoEscalate
	}

	return cfg
}

func (c *Config) schedulerInterval() time.Duration {
	if c == nil || c.Scheduler.IntervalSeconds <= 0 {
		return scheduler.DefaultInterval
	}
	return time.Duration(c.Scheduler.IntervalSeconds) * time.Second
}

func (c *Config) executorConfig() *executor.Config {
	if c == nil {
		return nil
	}
	return &executor.Config{Notifications: c.Notifications}
}

func (s RuleSeed) toRule() types.AlertRule {
	rule := types.AlertRule{
		Meta:              types.Meta{ID: s.ID},
		Name:              s.Name,
		Description:       s.Description,
		Condition:         s.Condition,
		NaturalLanguage:   s.NaturalLanguage,
		Threshold:         s.Threshold,
		Severity:          types.Severity(s.Severity),
		Channels:          []types.Channel{},
		Recipients:        []types.AlertRecipient{},
		Department:        s.Department,
		Enabled:           s.Enabled == nil || *s.Enabled,
		EscalationMinutes: s.EscalationMinutes,
	}

	for _, ch := range s.Channels {
		rule.Channels = append(rule.Channels, types.Channel(ch))
	}

	for _, r := range s.Recipients {
		contacts := map[types.Channel]string{}
		for ch, address := range r.Contacts {
			contacts[types.Channel(ch)] = address
		}
		rule.Recipients = append(rule.Recipients, types.AlertRecipient{
			ID:       r.ID,
			Name:     r.Name,
			Type:     types.RecipientType(r.Type),
			Order:    r.Order,
			Contacts: contacts,
		})
	}

	return rule
}

func (s AutomationSeed) toAutomation() types.Automation {
	return types.Automation{
		Meta:        types.Meta{ID: s.ID},
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Trigger:     s.Trigger,
		Actions:     s.Actions,
		Status:      types.AutomationStatus(s.Status),
		CreatedBy:   "system",
		IsSystem:    s.IsSystem,
	}
}
