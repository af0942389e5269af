package domain

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	dateColumn := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	west := time.FixedZone("UTC-5", -5*3600)
	east := time.FixedZone("UTC+9", 9*3600)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", dateColumn, dateColumn, true},
		{"later the same day", dateColumn, dateColumn.Add(23 * time.Hour), true},
		{"next day", dateColumn, dateColumn.AddDate(0, 0, 1), false},
		{"local evening west of UTC", time.Date(2026, 10, 15, 22, 0, 0, 0, west), dateColumn, true},
		{"local morning east of UTC", time.Date(2026, 10, 15, 6, 0, 0, 0, east), dateColumn, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidators(t *testing.T) {
	if !ValidTaskType("diet") || ValidTaskType("nap") {
		t.Error("ValidTaskType")
	}
	if !ValidTaskStatus("modified") || ValidTaskStatus("done") {
		t.Error("ValidTaskStatus")
	}
	if !ValidAction("substitute_exercise") || ValidAction("rest") {
		t.Error("ValidAction")
	}
	if !ValidResponseType("warn") || ValidResponseType("shout") {
		t.Error("ValidResponseType")
	}
}
