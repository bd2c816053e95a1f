package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DamianMlM/yummy-bakery-web/internal/reports"
)

const dayLayout = "2006-01-02"

// parseRange reads start/end query params (YYYY-MM-DD, local). Both default
// to today. A reversed pair is repaired here, at the boundary: end is
// clamped up to start, mirroring the date-picker guard.
func parseRange(c *gin.Context) reports.Range {
	today := time.Now()

	start := today
	if raw := c.Query("start"); raw != "" {
		if t, err := time.ParseInLocation(dayLayout, raw, time.Local); err == nil {
			start = t
		}
	}
	end := today
	if raw := c.Query("end"); raw != "" {
		if t, err := time.ParseInLocation(dayLayout, raw, time.Local); err == nil {
			end = t
		}
	}

	if start.After(end) {
		end = start
	}
	return reports.NewRange(start, end)
}
