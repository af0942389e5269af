package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/fitnova/central/internal/domain"
)

const (
	oneDay = 24 * time.Hour

	defaultRangeDays = 7
)

type windowFunc func(now time.Time) (start, end time.Time)

// rangeRule matches a label either by exact equality or by a pattern
// anchored on word boundaries, so "110 days" never reads as "10 days".
type rangeRule struct {
	exact       []string
	pattern     *regexp.Regexp
	granularity domain.Granularity
	window      windowFunc
}

func (r rangeRule) matches(label string) bool {
	for _, e := range r.exact {
		if label == e {
			return true
		}
	}
	return r.pattern != nil && r.pattern.MatchString(label)
}

func trailing(days int) windowFunc {
	return func(now time.Time) (time.Time, time.Time) {
		return now.Add(-time.Duration(days) * oneDay), now
	}
}

// mondayOf returns midnight of the Monday starting t's week.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

// Order matters: daily before weekly before ranges before yearly, and the
// narrower window first inside each family.
var rangeRules = []rangeRule{
	{
		pattern:     regexp.MustCompile(`\byesterday\b`),
		granularity: domain.GranularityDaily,
		window: func(now time.Time) (time.Time, time.Time) {
			end := startOfDay(now)
			return end.AddDate(0, 0, -1), end
		},
	},
	{
		exact:       []string{"day"},
		pattern:     regexp.MustCompile(`\b(today|daily)\b`),
		granularity: domain.GranularityDaily,
		window: func(now time.Time) (time.Time, time.Time) {
			return startOfDay(now), now
		},
	},
	{
		pattern:     regexp.MustCompile(`\bthis week\b`),
		granularity: domain.GranularityWeekly,
		window: func(now time.Time) (time.Time, time.Time) {
			return mondayOf(now), now
		},
	},
	{
		pattern:     regexp.MustCompile(`\blast week\b`),
		granularity: domain.GranularityWeekly,
		window: func(now time.Time) (time.Time, time.Time) {
			end := mondayOf(now)
			return end.AddDate(0, 0, -7), end
		},
	},
	{
		pattern:     regexp.MustCompile(`\bweek(s|ly)?\b`),
		granularity: domain.GranularityWeekly,
		window:      trailing(7),
	},
	{
		pattern:     regexp.MustCompile(`\b10 ?d(ays?)?\b`),
		granularity: domain.Granularity10Days,
		window:      trailing(10),
	},
	{
		pattern:     regexp.MustCompile(`\b30 ?d(ays?)?\b`),
		granularity: domain.Granularity30Days,
		window:      trailing(30),
	},
	{
		exact:       []string{"month"},
		pattern:     regexp.MustCompile(`\b((this|last|past) month|monthly)\b`),
		granularity: domain.GranularityMonthly,
		window:      trailing(30),
	},
	{
		pattern:     regexp.MustCompile(`\b(3 ?months?|quarter(ly)?)\b`),
		granularity: domain.GranularityQuarterly,
		window:      trailing(90),
	},
	{
		pattern:     regexp.MustCompile(`\b(6 ?months?|half[ _]year)\b`),
		granularity: domain.GranularityHalfYear,
		window:      trailing(180),
	},
	{
		pattern:     regexp.MustCompile(`\b(year(s|ly)?|annual(ly)?)\b`),
		granularity: domain.GranularityYearly,
		window:      trailing(365),
	},
}

// ResolveTimeRange maps a short code ("weekly", "10d") or a phrase ("how
// did I do last week?") to a concrete window. Unrecognized input resolves
// to the trailing seven days.
func ResolveTimeRange(label string, now time.Time) domain.TimeWindow {
	normalized := strings.ToLower(strings.TrimSpace(label))

	for _, rule := range rangeRules {
		if rule.matches(normalized) {
			start, end := rule.window(now)
			return domain.TimeWindow{Start: start, End: end, Granularity: rule.granularity}
		}
	}

	return defaultWindow(now)
}

// ResolveCustomRange parses explicit bounds. Anything unparseable, or a
// start after the end, falls back to the default window.
func ResolveCustomRange(start, end string, now time.Time) domain.TimeWindow {
	s, okStart := parseBound(start, now.Location())
	e, okEnd := parseBound(end, now.Location())
	if !okStart || !okEnd || s.After(e) {
		return defaultWindow(now)
	}
	return domain.TimeWindow{Start: s, End: e, Granularity: domain.GranularityCustom}
}

func defaultWindow(now time.Time) domain.TimeWindow {
	start, end := trailing(defaultRangeDays)(now)
	return domain.TimeWindow{Start: start, End: end, Granularity: domain.GranularityWeekly}
}

var boundLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseBound(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range boundLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
