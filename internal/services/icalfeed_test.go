package services

import (
	"strings"
	"testing"
	"time"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

func TestBuildCalendarFeed(t *testing.T) {
	client := models.Client{ID: "c1", Name: "Jane Doe"}
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.ScheduledTask{
		{ID: "t1", Date: "2026-03-14", Title: "Lower Push Strength", Pillar: models.PillarMove,
			Category: "Strength", Points: 1, Notes: "75 min", CreatedAt: created},
		{ID: "t2", Date: "2026-03-15", Title: "Recovery Flow", Pillar: models.PillarRecover,
			Category: "Recovery", Points: 1, Done: true, CreatedAt: created},
		{ID: "t3", Date: "not-a-date", Title: "Broken", CreatedAt: created},
	}
	events := []models.Event{
		{ID: "e1", Date: "2026-03-20", Title: "Check-in Call", CreatedAt: created},
	}

	feed := BuildCalendarFeed(client, tasks, events)

	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Fatal("feed is not a calendar")
	}
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("expected 3 events (broken task dropped), got %d", got)
	}
	if !strings.Contains(feed, "UID:task-t1@apex-dashboard") {
		t.Error("missing stable task UID")
	}
	if !strings.Contains(feed, "UID:event-e1@apex-dashboard") {
		t.Error("missing stable event UID")
	}
	if !strings.Contains(feed, "✓ Recovery Flow") {
		t.Error("completed task should carry the check prefix")
	}
	if !strings.Contains(feed, "Check-in Call") {
		t.Error("missing event summary")
	}
}

func TestPERMSAverage(t *testing.T) {
	tests := []struct {
		scores models.PERMSScores
		want   float64
	}{
		{models.PERMSScores{P: 7, E: 7, R: 7, M: 7, S: 7}, 7},
		{models.PERMSScores{P: 8, E: 6, R: 7, M: 5, S: 9}, 7},
		{models.PERMSScores{P: 1, E: 2, R: 2, M: 2, S: 2}, 1.8},
		{models.PERMSScores{}, 0},
	}
	for _, test := range tests {
		if got := PERMSAverage(test.scores); got != test.want {
			t.Errorf("PERMSAverage(%+v) = %v, want %v", test.scores, got, test.want)
		}
	}
}
