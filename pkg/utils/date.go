package utils

import (
	"time"

	"stock-sentiment-dashboard/pkg/common"
)

// DefaultReportRange returns the start and end dates of the last three days ending at now,
// formatted as YYYY-MM-DD in now's location.
func DefaultReportRange(now time.Time) (start, end string) {
	return now.AddDate(0, 0, -2).Format(common.ReportDateLayout), now.Format(common.ReportDateLayout)
}
