package services

import (
	"math"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// PERMSAverage reduces a quarterly assessment to its mean score,
// rounded to one decimal for display.
func PERMSAverage(scores models.PERMSScores) float64 {
	avg := (scores.P + scores.E + scores.R + scores.M + scores.S) / 5
	return math.Round(avg*10) / 10
}
