package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// WeekKey returns the ISO-8601 week key (YYYY-W##) for a date. Weeks
// start on Monday and week 1 is the week containing the year's first
// Thursday, so a late-December date can belong to week 1 of the
// following year and an early-January date to week 52/53 of the prior
// year.
func WeekKey(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// DateKey formats a date as the YYYY-MM-DD key used throughout the
// schedule.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// MondayOfWeek reconstructs the Monday of an ISO week key. January 4th
// always falls in week 1, so the Monday of week 1 is the Monday of the
// week containing Jan 4; later weeks are whole-week offsets from there.
func MondayOfWeek(key string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("parsing week key %q: %w", key, err)
	}
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("parsing week key %q: week %d out of range", key, week)
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	mondayOfWeek1 := jan4.AddDate(0, 0, -offset)
	return mondayOfWeek1.AddDate(0, 0, (week-1)*7), nil
}

// WeekLabel renders a week key as its Monday–Sunday date range, e.g.
// "Jan 26 – Feb 1".
func WeekLabel(key string) (string, error) {
	monday, err := MondayOfWeek(key)
	if err != nil {
		return "", err
	}
	sunday := monday.AddDate(0, 0, 6)
	return fmt.Sprintf("%s – %s", monday.Format("Jan 2"), sunday.Format("Jan 2")), nil
}

func weekRangeLabel(dayInWeek time.Time) string {
	offset := (int(dayInWeek.Weekday()) + 6) % 7
	monday := dayInWeek.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return fmt.Sprintf("%s – %s", monday.Format("Jan 2"), sunday.Format("Jan 2"))
}

// AggregatePoints buckets weekly point records into the requested
// period. Weekly input passes through unchanged; monthly buckets use
// floor((week-1)/4.33) clamped to month index 11 (4.33 approximates
// 52/12 weeks per month); quarterly buckets use ceil(week/13); annual
// buckets by year. Pillar totals sum arithmetically within a bucket and
// buckets emit sorted ascending by key.
func AggregatePoints(records []models.WeeklyPointRecord, period models.Period) []models.WeeklyPointRecord {
	if period == models.PeriodWeekly || period == "" {
		return records
	}

	buckets := make(map[string]*models.WeeklyPointRecord)
	for _, record := range records {
		var year, week int
		if _, err := fmt.Sscanf(record.Week, "%d-W%d", &year, &week); err != nil {
			continue
		}

		var key, label string
		switch period {
		case models.PeriodMonthly:
			monthIndex := int(float64(week-1) / 4.33)
			if monthIndex > 11 {
				monthIndex = 11
			}
			key = fmt.Sprintf("%d-%02d", year, monthIndex+1)
			label = fmt.Sprintf("%s %d", time.Month(monthIndex+1), year)
		case models.PeriodQuarterly:
			quarter := (week + 12) / 13
			key = fmt.Sprintf("%d-Q%d", year, quarter)
			label = fmt.Sprintf("Q%d %d", quarter, year)
		case models.PeriodAnnual:
			key = fmt.Sprintf("%d", year)
			label = key
		default:
			return records
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.WeeklyPointRecord{Week: key, Label: label}
			buckets[key] = bucket
		}
		bucket.Move += record.Move
		bucket.Recover += record.Recover
		bucket.Fuel += record.Fuel
		bucket.Connect += record.Connect
		bucket.Breathe += record.Breathe
		bucket.Misc += record.Misc
	}

	aggregated := make([]models.WeeklyPointRecord, 0, len(buckets))
	for _, bucket := range buckets {
		aggregated = append(aggregated, *bucket)
	}
	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].Week < aggregated[j].Week
	})
	return aggregated
}
