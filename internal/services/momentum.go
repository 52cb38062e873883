package services

import (
	"math"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// CalcMomentum compares the average weekly point total of the older
// half of the trailing four weeks against the newer half. Momentum is
// undefined (nil) with fewer than two weeks of data, and undefined on a
// flat-zero older half — a from-zero baseline has no meaningful
// percentage change.
func CalcMomentum(records []models.WeeklyPointRecord) *models.MomentumResult {
	if len(records) < 2 {
		return nil
	}

	window := records
	if len(window) > recentWindowWeeks {
		window = window[len(window)-recentWindowWeeks:]
	}

	split := (len(window) + 1) / 2
	olderAvg := averageTotal(window[:split])
	newerAvg := averageTotal(window[split:])

	if olderAvg == 0 {
		return nil
	}

	change := int(math.Round((newerAvg - olderAvg) / olderAvg * 100))
	return &models.MomentumResult{
		PercentChange: change,
		IsUp:          change >= 0,
		WindowSize:    len(window),
	}
}

func averageTotal(records []models.WeeklyPointRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, record := range records {
		sum += record.Total()
	}
	return float64(sum) / float64(len(records))
}
