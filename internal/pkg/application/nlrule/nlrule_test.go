package nlrule

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestRevenueBelowThreshold(t *testing.T) {
	is := is.New(t)

	rule := Parse("Alert me if revenue drops below $100K")

	is.Equal(types.CategoryRevenue, rule.Category)
	is.Equal("Revenue Alert", rule.Name)
	is.Equal("sales", rule.Department)
	is.True(rule.Threshold != nil)
	is.Equal(100.0, *rule.Threshold)
	is.True(strings.Contains(rule.Condition, "100000"))
	is.Equal("revenue < 100000", rule.Condition)
	is.Equal(types.SeverityMedium, rule.Severity)
	is.Equal("Alert me if revenue drops below $100K", rule.NaturalLanguage)
	is.Equal([]types.Channel{types.ChannelInApp, types.ChannelEmail}, rule.Channels)
	is.True(rule.Enabled)
	is.Equal(30, rule.EscalationMinutes)
}

func TestRevenueThresholdVariants(t *testing.T) {
	is := is.New(t)

	cases := map[string]float64{
		"sales under 50,000 this week":           50,
		"notify when revenue exceeds 250000":     250,
		"sales target of $75k missed":            75,
		"URGENT: revenue above 1,000 in a day ok": 1,
	}

	for text, expected := range cases {
		rule := Parse(text)
		is.True(rule.Threshold != nil)
		is.Equal(expected, *rule.Threshold)
	}

	is.Equal("revenue > 250000", Parse("notify when revenue exceeds 250000").Condition)
}

func TestPTOAndPerformance(t *testing.T) {
	is := is.New(t)

	rule := Parse("Tell HR when someone requests more than 5 days of time off")
	is.Equal(types.CategoryPTO, rule.Category)
	is.Equal("hr", rule.Department)
	is.Equal(5.0, *rule.Threshold)
	is.Equal("pto_days > 5", rule.Condition)

	rule = Parse("Critical: server response time above 3 seconds")
	is.Equal(types.CategoryPerformance, rule.Category)
	is.Equal("it", rule.Department)
	is.Equal("System Performance Alert", rule.Name)
	is.Equal(3.0, *rule.Threshold)
	is.Equal(types.SeverityHigh, rule.Severity)
}

func TestFirstMatchingCategoryWins(t *testing.T) {
	is := is.New(t)

	rule := Parse("sales server is on leave")
	is.Equal(types.CategoryRevenue, rule.Category)
}

func TestMissingThresholdIsNotAnError(t *testing.T) {
	is := is.New(t)

	rule := Parse("let me know about any leave requests")
	is.Equal(types.CategoryPTO, rule.Category)
	is.True(rule.Threshold == nil)
}

func TestGenericFallback(t *testing.T) {
	is := is.New(t)

	rule := Parse("something minor happened")
	is.Equal(types.CategoryGeneric, rule.Category)
	is.Equal("Alert Rule", rule.Name)
	is.Equal("all", rule.Department)
	is.True(rule.Threshold == nil)
	is.Equal(types.SeverityLow, rule.Severity)
}

func TestBelowIsNotLowSeverity(t *testing.T) {
	is := is.New(t)

	is.Equal(types.SeverityMedium, Parse("revenue below 10000").Severity)
	is.Equal(types.SeverityLow, Parse("low revenue").Severity)
}

func TestParseIsDeterministic(t *testing.T) {
	is := is.New(t)

	text := "Alert me immediately if the server load is high"
	is.Equal(Parse(text), Parse(text))
	is.True(Parse(text).ID != Parse(text+" ").ID)
}

func TestParseIsTotal(t *testing.T) {
	is := is.New(t)
	r := rand.New(rand.NewSource(1))

	inputs := []string{""}
	for i := 0; i < 999; i++ {
		inputs = append(inputs, randomString(r))
	}

	for _, in := range inputs {
		rule := Parse(in)
		is.True(rule.ID != "")
		is.Equal(in, rule.NaturalLanguage)
		is.True(rule.Severity.Valid())
	}
}

func randomString(r *rand.Rand) string {
	words := []string{"revenue", "sales", "$", "k", "000", ",", "pto", "days", "leave", "server", "load",
		"seconds", "critical", "low", "below", " ", "\n", "99999999999999999999999999999999", "ä", "\xff"}

	var sb strings.Builder
	n := r.Intn(20)
	for i := 0; i < n; i++ {
		if r.Intn(3) == 0 {
			sb.WriteRune(rune(r.Intn(0x2FFF)))
			continue
		}
		sb.WriteString(words[r.Intn(len(words))])
	}
	return sb.String()
}
