package nlrule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/google/uuid"
)

const DefaultEscalationMinutes = 30

var DefaultChannels = []types.Channel{types.ChannelInApp, types.ChannelEmail}

// ruleNamespace seeds the name based ids of parsed skeletons.
var ruleNamespace = uuid.MustParse("5f0c9c7e-4d0b-4e53-9d6f-2a8a3f0b7c11")

type extraction struct {
	threshold *float64
	condition string
}

type classifier struct {
	category   types.RuleCategory
	name       string
	department string
	matches    *regexp.Regexp
	extract    func(text string) extraction
}

// classifiers are tried in order and the first match wins.
var classifiers = []classifier{
	{
		category:   types.CategoryRevenue,
		name:       "Revenue Alert",
		department: "sales",
		matches:    regexp.MustCompile(`revenue|sales`),
		extract:    revenue,
	},
	{
		category:   types.CategoryPTO,
		name:       "PTO Request Alert",
		department: "hr",
		matches:    regexp.MustCompile(`pto|time off|leave`),
		extract:    pto,
	},
	{
		category:   types.CategoryPerformance,
		name:       "System Performance Alert",
		department: "it",
		matches:    regexp.MustCompile(`response time|load|server`),
		extract:    performance,
	},
}

var generic = classifier{
	category:   types.CategoryGeneric,
	name:       "Alert Rule",
	department: "all",
	extract: func(string) extraction {
		return extraction{condition: "custom"}
	},
}

var (
	currencyShorthand = regexp.MustCompile(`\$(\d+)[kK]`)
	thousands         = regexp.MustCompile(`(\d+),?000`)
	days              = regexp.MustCompile(`(\d+)\s+days`)
	duration          = regexp.MustCompile(`(\d+)\s+(second|minute|hour|day)s?`)
	above             = regexp.MustCompile(`\b(above|exceeds?|over|more than|greater than|rises?)\b`)

	highSeverity = regexp.MustCompile(`\b(critical|urgent|immediately)\b`)
	lowSeverity  = regexp.MustCompile(`\b(minor|low)\b`)
)

// Parse turns free text into a rule skeleton. It never fails: text that
// matches no category yields a generic rule without a threshold.
func Parse(text string) types.AlertPromptRule {
	lower := strings.ToLower(text)

	c := generic
	for _, candidate := range classifiers {
		if candidate.matches.MatchString(lower) {
			c = candidate
			break
		}
	}

	x := c.extract(lower)

	return types.AlertPromptRule{
		AlertRule: types.AlertRule{
			Meta:              types.Meta{ID: uuid.NewSHA1(ruleNamespace, []byte(text)).String()},
			Name:              c.name,
			Description:       text,
			Condition:         x.condition,
			NaturalLanguage:   text,
			Threshold:         x.threshold,
			Severity:          severity(lower),
			Channels:          append([]types.Channel{}, DefaultChannels...),
			Recipients:        []types.AlertRecipient{},
			Department:        c.department,
			Enabled:           true,
			EscalationMinutes: DefaultEscalationMinutes,
		},
		Category: c.category,
	}
}

func severity(text string) types.Severity {
	if highSeverity.MatchString(text) {
		return types.SeverityHigh
	}
	if lowSeverity.MatchString(text) {
		return types.SeverityLow
	}
	return types.SeverityMedium
}

func comparison(text string) string {
	if above.MatchString(text) {
		return ">"
	}
	return "<"
}

// revenue thresholds are expressed in thousands.
func revenue(text string) extraction {
	n, ok := firstNumber(text, currencyShorthand, thousands)
	if !ok {
		return extraction{condition: fmt.Sprintf("revenue %s threshold", comparison(text))}
	}
	return extraction{
		threshold: &n,
		condition: fmt.Sprintf("revenue %s %s", comparison(text), format(n*1000)),
	}
}

func pto(text string) extraction {
	n, ok := firstNumber(text, days)
	if !ok {
		return extraction{condition: "pto_request submitted"}
	}
	return extraction{
		threshold: &n,
		condition: fmt.Sprintf("pto_days > %s", format(n)),
	}
}

func performance(text string) extraction {
	m := duration.FindStringSubmatch(text)
	if m == nil {
		return extraction{condition: "response_time > threshold"}
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return extraction{condition: "response_time > threshold"}
	}
	return extraction{
		threshold: &n,
		condition: fmt.Sprintf("response_time > %s %ss", format(n), m[2]),
	}
}

func firstNumber(text string, patterns ...*regexp.Regexp) (float64, bool) {
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func format(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
