package services

import (
	"testing"
	"time"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

func TestParseSchedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tasks := ParseSchedule("Day 1 Mar 14 Lower Push Strength 75 min", now)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Date != "2026-03-14" {
		t.Errorf("date = %q, want 2026-03-14", task.Date)
	}
	if task.Pillar != models.PillarMove {
		t.Errorf("pillar = %q, want move", task.Pillar)
	}
	if task.Category != "Strength" {
		t.Errorf("category = %q, want Strength", task.Category)
	}
	if task.Title != "Lower Push Strength" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Points != 1 {
		t.Errorf("points = %d, want 1", task.Points)
	}
	if task.Notes != "75 min" {
		t.Errorf("notes = %q, want '75 min'", task.Notes)
	}
}

func TestParseSchedule_MultipleEntriesOneLine(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	text := "Day 1 Mar 14 Lower Push Strength 75 min Day 2 Mar 15 Recovery Flow 30 min"

	tasks := ParseSchedule(text, now)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Lower Push Strength" || tasks[1].Title != "Recovery Flow" {
		t.Errorf("unexpected titles: %q, %q", tasks[0].Title, tasks[1].Title)
	}
	if tasks[1].Pillar != models.PillarRecover {
		t.Errorf("second pillar = %q, want recover", tasks[1].Pillar)
	}
}

func TestParseSchedule_Points(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		duration string
		want     int
	}{
		{"0", 1},
		{"30", 1},
		{"59", 1},
		{"60", 1},
		{"119", 1},
		{"120", 2},
		{"179", 2},
		{"180", 3},
	}
	for _, test := range tests {
		tasks := ParseSchedule("Day 1 Mar 2 Tempo Run "+test.duration+" min", now)
		if len(tasks) != 1 {
			t.Fatalf("%s min: expected 1 task, got %d", test.duration, len(tasks))
		}
		if tasks[0].Points != test.want {
			t.Errorf("%s min: points = %d, want %d", test.duration, tasks[0].Points, test.want)
		}
	}
}

func TestParseSchedule_YearRollover(t *testing.T) {
	now := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)

	tasks := ParseSchedule("Day 1 Jan 5 Mobility Flow 30 min", now)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Date != "2027-01-05" {
		t.Errorf("date = %q, want 2027-01-05", tasks[0].Date)
	}

	// The month immediately behind the current one stays in-year.
	tasks = ParseSchedule("Day 1 Nov 28 Mobility Flow 30 min", now)
	if tasks[0].Date != "2026-11-28" {
		t.Errorf("date = %q, want 2026-11-28", tasks[0].Date)
	}
}

func TestParseSchedule_CollapsesWhitespace(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tasks := ParseSchedule("Day 2 Mar 15 Zone   2    Bike 120 min", now)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Zone 2 Bike" {
		t.Errorf("title = %q, want 'Zone 2 Bike'", tasks[0].Title)
	}
	if tasks[0].Category != "Conditioning" {
		t.Errorf("category = %q, want Conditioning", tasks[0].Category)
	}
	if tasks[0].Points != 2 {
		t.Errorf("points = %d, want 2", tasks[0].Points)
	}
}

func TestParseSchedule_NoMatches(t *testing.T) {
	tasks := ParseSchedule("quarterly check-in notes, nothing scheduled", time.Now())
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestClassifyWorkout(t *testing.T) {
	tests := []struct {
		title    string
		pillar   models.Pillar
		category string
	}{
		{"Foam Roll + Stretch", models.PillarRecover, "Recovery"},
		{"Box Breath Practice", models.PillarRecover, "Recovery"},
		{"Tempo Run", models.PillarMove, "Conditioning"},
		{"HIIT Circuit", models.PillarMove, "Conditioning"},
		{"Upper Pull Strength", models.PillarMove, "Strength"},
		{"Ocean Swim", models.PillarMove, "Conditioning"},
		{"Recovery Run", models.PillarRecover, "Recovery"}, // recovery outranks run
		{"Hill Hike", models.PillarMove, "General Activity"},
	}
	for _, test := range tests {
		pillar, category := classifyWorkout(test.title)
		if pillar != test.pillar || category != test.category {
			t.Errorf("classifyWorkout(%q) = %s/%s, want %s/%s",
				test.title, pillar, category, test.pillar, test.category)
		}
	}
}
