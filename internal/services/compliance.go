package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// recentWindowWeeks bounds the "recent" compliance and momentum windows.
const recentWindowWeeks = 4

type weekBucket struct {
	order string
	label string
	done  int
	total int
}

// CalcCompliance reduces a date→tasks mapping to per-week completion
// rates. When startDate (YYYY-MM-DD) is set, weeks are relative to the
// program start (week 1 begins on the start date) and dates before it
// are excluded; otherwise calendar ISO weeks apply. Returns nil when
// the mapping holds no tasks — a brand-new client, not an error.
func CalcCompliance(tasksByDate map[string][]models.ScheduledTask, startDate string) *models.ComplianceSummary {
	var start time.Time
	hasStart := false
	if startDate != "" {
		if parsed, err := time.Parse("2006-01-02", startDate); err == nil {
			start = parsed
			hasStart = true
		}
	}

	buckets := make(map[string]*weekBucket)
	for dateKey, tasks := range tasksByDate {
		if len(tasks) == 0 {
			continue
		}
		date, err := time.Parse("2006-01-02", dateKey)
		if err != nil {
			continue
		}

		var order, label string
		if hasStart {
			days := int(date.Sub(start).Hours() / 24)
			if days < 0 {
				continue
			}
			week := days/7 + 1
			// Zero-padded so lexicographic bucket order matches numeric order.
			order = fmt.Sprintf("%05d", week)
			label = fmt.Sprintf("Week %d", week)
		} else {
			order = WeekKey(date)
			label = weekRangeLabel(date)
		}

		bucket, ok := buckets[order]
		if !ok {
			bucket = &weekBucket{order: order, label: label}
			buckets[order] = bucket
		}
		for _, task := range tasks {
			bucket.total++
			if task.Done {
				bucket.done++
			}
		}
	}

	if len(buckets) == 0 {
		return nil
	}

	ordered := make([]*weekBucket, 0, len(buckets))
	for _, bucket := range buckets {
		ordered = append(ordered, bucket)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	summary := &models.ComplianceSummary{
		WeeklyRates: make([]models.WeeklyRate, 0, len(ordered)),
	}
	allDone, allTotal := 0, 0
	for _, bucket := range ordered {
		summary.WeeklyRates = append(summary.WeeklyRates, models.WeeklyRate{
			Label: bucket.label,
			Rate:  percent(bucket.done, bucket.total),
			Done:  bucket.done,
			Total: bucket.total,
		})
		allDone += bucket.done
		allTotal += bucket.total
	}
	summary.Overall = percent(allDone, allTotal)

	recent := ordered
	if len(recent) > recentWindowWeeks {
		recent = recent[len(recent)-recentWindowWeeks:]
	}
	recentDone, recentTotal := 0, 0
	for _, bucket := range recent {
		recentDone += bucket.done
		recentTotal += bucket.total
	}
	summary.RecentRate = percent(recentDone, recentTotal)

	return summary
}

// percent rounds done/total to the nearest whole percent; a zero total
// yields 0, never a division error.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
