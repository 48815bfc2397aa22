package services

import (
	"fmt"
	"math"

	"github.com/c14220110/hms-console/internal/dashboard/models"
)

// ComputeTrend compares the recent sub-count against the count that preceded
// it (total - recent). Half percentages round towards positive infinity, so
// 2.5 becomes 3 and -2.5 becomes -2. A recent count larger than total is not
// rejected and yields a negative trend.
func ComputeTrend(total, recent int) models.Trend {
	previous := total - recent
	if previous == 0 {
		if recent > 0 {
			return models.Trend{Label: "+100%", Class: models.TrendNeutral}
		}
		return models.Trend{Label: "0%", Class: models.TrendNeutral}
	}

	percent := int(math.Floor(float64(recent)/float64(previous)*100 + 0.5))
	if percent >= 0 {
		return models.Trend{Label: fmt.Sprintf("+%d%%", percent), Class: models.TrendUp}
	}
	return models.Trend{Label: fmt.Sprintf("%d%%", percent), Class: models.TrendDown}
}
