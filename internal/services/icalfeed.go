package services

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// BuildCalendarFeed renders a client's scheduled tasks and events as an
// iCalendar feed for the shared "Add to Calendar" link. Tasks and
// events are all-day entries keyed by their stored IDs so calendar
// clients update rather than duplicate on refresh.
func BuildCalendarFeed(client models.Client, tasks []models.ScheduledTask, events []models.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//APEX Dashboard//Schedule//EN")
	cal.SetXWRCalName(fmt.Sprintf("APEX · %s", client.Name))

	for _, task := range tasks {
		date, err := time.Parse("2006-01-02", task.Date)
		if err != nil {
			continue
		}
		entry := cal.AddEvent(fmt.Sprintf("task-%s@apex-dashboard", task.ID))
		summary := task.Title
		if task.Done {
			summary = "✓ " + summary
		}
		entry.SetSummary(summary)
		description := fmt.Sprintf("%s · %s · %dpts", task.Pillar, task.Category, task.Points)
		if task.Notes != "" {
			description += " · " + task.Notes
		}
		entry.SetDescription(description)
		entry.SetAllDayStartAt(date)
		entry.SetAllDayEndAt(date.AddDate(0, 0, 1))
		entry.SetDtStampTime(task.CreatedAt.UTC())
	}

	for _, event := range events {
		date, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}
		entry := cal.AddEvent(fmt.Sprintf("event-%s@apex-dashboard", event.ID))
		entry.SetSummary(event.Title)
		if event.Notes != "" {
			entry.SetDescription(event.Notes)
		}
		entry.SetAllDayStartAt(date)
		entry.SetAllDayEndAt(date.AddDate(0, 0, 1))
		entry.SetDtStampTime(event.CreatedAt.UTC())
	}

	return cal.Serialize()
}
