package services

import (
	"fmt"
	"testing"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

func task(done bool) models.ScheduledTask {
	return models.ScheduledTask{Title: "Session", Pillar: models.PillarMove, Done: done}
}

func TestCalcCompliance_StartDateWeeks(t *testing.T) {
	// Program started Wednesday Jan 7: week 1 runs Jan 7–13, week 2
	// starts Jan 14.
	tasksByDate := map[string][]models.ScheduledTask{
		"2026-01-07": {task(true), task(true)},
		"2026-01-13": {task(false), task(true)},
		"2026-01-14": {task(false)},
		"2026-01-05": {task(true)}, // before the program start, excluded
	}

	summary := CalcCompliance(tasksByDate, "2026-01-07")
	if summary == nil {
		t.Fatal("expected summary, got nil")
	}
	if len(summary.WeeklyRates) != 2 {
		t.Fatalf("expected 2 weeks, got %d: %+v", len(summary.WeeklyRates), summary.WeeklyRates)
	}

	week1 := summary.WeeklyRates[0]
	if week1.Label != "Week 1" {
		t.Errorf("first label = %q, want 'Week 1'", week1.Label)
	}
	if week1.Done != 3 || week1.Total != 4 || week1.Rate != 75 {
		t.Errorf("week 1 = %d/%d at %d%%, want 3/4 at 75%%", week1.Done, week1.Total, week1.Rate)
	}

	week2 := summary.WeeklyRates[1]
	if week2.Label != "Week 2" || week2.Rate != 0 {
		t.Errorf("week 2 = %+v, want 'Week 2' at 0%%", week2)
	}

	// 3 of 5 tasks done overall (the pre-start task does not count).
	if summary.Overall != 60 {
		t.Errorf("overall = %d%%, want 60%%", summary.Overall)
	}
}

func TestCalcCompliance_ISOWeekFallback(t *testing.T) {
	// No start date: Jan 26 (Mon) and Feb 1 (Sun) share an ISO week,
	// Feb 2 opens the next one.
	tasksByDate := map[string][]models.ScheduledTask{
		"2026-01-26": {task(true)},
		"2026-02-01": {task(false)},
		"2026-02-02": {task(true)},
	}

	summary := CalcCompliance(tasksByDate, "")
	if summary == nil {
		t.Fatal("expected summary, got nil")
	}
	if len(summary.WeeklyRates) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(summary.WeeklyRates))
	}
	if summary.WeeklyRates[0].Label != "Jan 26 – Feb 1" {
		t.Errorf("first label = %q, want 'Jan 26 – Feb 1'", summary.WeeklyRates[0].Label)
	}
	if summary.WeeklyRates[0].Done != 1 || summary.WeeklyRates[0].Total != 2 {
		t.Errorf("first week = %d/%d, want 1/2",
			summary.WeeklyRates[0].Done, summary.WeeklyRates[0].Total)
	}
}

func TestCalcCompliance_MalformedStartDateFallsBack(t *testing.T) {
	tasksByDate := map[string][]models.ScheduledTask{
		"2026-01-26": {task(true)},
	}
	summary := CalcCompliance(tasksByDate, "next tuesday")
	if summary == nil {
		t.Fatal("expected summary, got nil")
	}
	if summary.WeeklyRates[0].Label != "Jan 26 – Feb 1" {
		t.Errorf("malformed start date should use calendar weeks, got label %q",
			summary.WeeklyRates[0].Label)
	}
}

func TestCalcCompliance_Empty(t *testing.T) {
	if got := CalcCompliance(map[string][]models.ScheduledTask{}, "2026-01-07"); got != nil {
		t.Errorf("expected nil for no tasks, got %+v", got)
	}
	empty := map[string][]models.ScheduledTask{"2026-01-07": {}}
	if got := CalcCompliance(empty, "2026-01-07"); got != nil {
		t.Errorf("expected nil for empty task lists, got %+v", got)
	}
}

func TestCalcCompliance_RecentRateWindow(t *testing.T) {
	// Six program weeks: the first two fully done, the last four fully
	// missed. Overall blends them; the recent rate sees only the misses.
	tasksByDate := make(map[string][]models.ScheduledTask)
	start := "2026-01-05"
	for week := 0; week < 6; week++ {
		date := fmt.Sprintf("2026-01-%02d", 5+week*7)
		if week >= 4 {
			date = fmt.Sprintf("2026-02-%02d", 5+week*7-31)
		}
		tasksByDate[date] = []models.ScheduledTask{task(week < 2)}
	}

	summary := CalcCompliance(tasksByDate, start)
	if summary == nil {
		t.Fatal("expected summary, got nil")
	}
	if len(summary.WeeklyRates) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(summary.WeeklyRates))
	}
	if summary.Overall != 33 {
		t.Errorf("overall = %d%%, want 33%%", summary.Overall)
	}
	if summary.RecentRate != 0 {
		t.Errorf("recent rate = %d%%, want 0%% over the trailing 4 weeks", summary.RecentRate)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, test := range tests {
		if got := percent(test.done, test.total); got != test.want {
			t.Errorf("percent(%d, %d) = %d, want %d", test.done, test.total, got, test.want)
		}
	}
}
