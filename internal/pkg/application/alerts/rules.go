package alerts

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/alert-mgmt/internal/pkg/application/entities"
	"github.com/diwise/alert-mgmt/internal/pkg/application/nlrule"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

func (svc *alertSvc) CreateRule(ctx context.Context, rule types.AlertRule) (types.AlertRule, error) {
	if rule.Severity == "" {
		rule.Severity = types.SeverityMedium
	}
	if rule.Channels == nil {
		rule.Channels = []types.Channel{}
	}
	if rule.Recipients == nil {
		rule.Recipients = []types.AlertRecipient{}
	}

	if err := ValidateRule(rule); err != nil {
		return types.AlertRule{}, err
	}

	return svc.rules.Create(ctx, rule)
}

func (svc *alertSvc) GetRule(ctx context.Context, ruleID string) (types.AlertRule, error) {
	return svc.rules.Get(ctx, ruleID)
}

func (svc *alertSvc) GetRules(ctx context.Context) (types.Collection[types.AlertRule], error) {
	rules, err := svc.rules.List(ctx)
	if err != nil {
		return types.Collection[types.AlertRule]{}, err
	}
	return types.NewCollection(rules), nil
}

func (svc *alertSvc) UpdateRule(ctx context.Context, ruleID string, fields map[string]any) (types.AlertRule, error) {
	merge := entities.MergePatch[types.AlertRule](fields)

	return svc.rules.Update(ctx, ruleID, func(r *types.AlertRule) error {
		if err := merge(r); err != nil {
			return err
		}
		return ValidateRule(*r)
	})
}

func (svc *alertSvc) DeleteRule(ctx context.Context, ruleID string) error {
	return svc.rules.Delete(ctx, ruleID)
}

// CreateNaturalLanguageRule parses text into a rule skeleton and stores it
// under a new id.
func (svc *alertSvc) CreateNaturalLanguageRule(ctx context.Context, text string) (rule types.AlertRule, err error) {
	ctx, span := tracer.Start(ctx, "create-natural-language-rule")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if strings.TrimSpace(text) == "" {
		return types.AlertRule{}, fmt.Errorf("%w: no rule text given", types.ErrValidation)
	}

	skeleton := nlrule.Parse(text)
	skeleton.ID = ""

	return svc.CreateRule(ctx, skeleton.AlertRule)
}

func ValidateRule(rule types.AlertRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return fmt.Errorf("%w: rule has no name", types.ErrValidation)
	}
	if rule.EscalationMinutes <= 0 {
		return fmt.Errorf("%w: escalation minutes must be positive", types.ErrValidation)
	}
	if rule.Severity != "" && !rule.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", types.ErrValidation, rule.Severity)
	}
	for _, c := range rule.Channels {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown channel %q", types.ErrValidation, c)
		}
	}
	for i, r := range rule.Recipients {
		if i > 0 && r.Order <= rule.Recipients[i-1].Order {
			return fmt.Errorf("%w: recipient order must be strictly increasing", types.ErrValidation)
		}
		switch r.Type {
		case types.RecipientUser, types.RecipientGroup, types.RecipientRole:
		default:
			return fmt.Errorf("%w: unknown recipient type %q", types.ErrValidation, r.Type)
		}
	}
	return nil
}
