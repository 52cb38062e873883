package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// dayEntryPattern matches the fixed layout of a Bridge Athletic
// schedule PDF once its text layer is extracted:
// "Day <n> <Mon> <day> <workout title> <n> min".
var dayEntryPattern = regexp.MustCompile(
	`Day\s+\d+\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{1,2})\s+(.+?)\s+(\d+)\s*min`)

var monthIndex = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// classificationRule maps a workout title onto a pillar and category.
// Rules are evaluated top to bottom, first match wins, so more specific
// rules must stay above overlapping general ones.
type classificationRule struct {
	pattern  *regexp.Regexp
	pillar   models.Pillar
	category string
}

var classificationRules = []classificationRule{
	{regexp.MustCompile(`(?i)\b(recovery|mobility|stretch|yoga|foam\s*roll|breath)\b`), models.PillarRecover, "Recovery"},
	{regexp.MustCompile(`(?i)\b(run|sprint|tempo|track|jog)\b`), models.PillarMove, "Conditioning"},
	{regexp.MustCompile(`(?i)\b(conditioning|circuit|hiit|metcon|cardio)\b`), models.PillarMove, "Conditioning"},
	{regexp.MustCompile(`(?i)\b(strength|squat|deadlift|press|lower\s+(push|pull)|upper\s+(push|pull)|full\s+body)\b`), models.PillarMove, "Strength"},
	{regexp.MustCompile(`(?i)\b(swim|bike|cycle|row|paddle)\b`), models.PillarMove, "Conditioning"},
}

func classifyWorkout(title string) (models.Pillar, string) {
	for _, rule := range classificationRules {
		if rule.pattern.MatchString(title) {
			return rule.pillar, rule.category
		}
	}
	return models.PillarMove, "General Activity"
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseSchedule extracts scheduled tasks from the text layer of a
// vendor workout PDF. The source text carries no year, so the year is
// inferred from now: a parsed month more than one month behind the
// current month is assumed to belong to the next calendar year
// (schedules generated near December for January). Zero matches return
// an empty slice; that is the caller's "no schedule detected" signal,
// not an error. A malformed duration defaults to 0 and the entry still
// earns its minimum point.
func ParseSchedule(text string, now time.Time) []models.ScheduledTask {
	matches := dayEntryPattern.FindAllStringSubmatch(text, -1)
	tasks := make([]models.ScheduledTask, 0, len(matches))

	for _, match := range matches {
		month := monthIndex[match[1]]
		day, err := strconv.Atoi(match[2])
		if err != nil || day < 1 || day > 31 {
			continue
		}

		year := now.Year()
		if int(now.Month())-int(month) > 1 {
			year++
		}
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		title := strings.TrimSpace(whitespaceRun.ReplaceAllString(match[3], " "))
		pillar, category := classifyWorkout(title)

		duration, err := strconv.Atoi(match[4])
		if err != nil || duration < 0 {
			duration = 0
		}
		points := duration / 60
		if points < 1 {
			points = 1
		}

		notes := ""
		if duration > 0 {
			notes = strconv.Itoa(duration) + " min"
		}

		tasks = append(tasks, models.ScheduledTask{
			Date:     DateKey(date),
			Pillar:   pillar,
			Category: category,
			Title:    title,
			Points:   points,
			Notes:    notes,
		})
	}

	return tasks
}
