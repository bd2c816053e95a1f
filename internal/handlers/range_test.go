package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func rangeContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/dashboard"+query, nil)
	return c
}

func TestParseRangeExplicitBounds(t *testing.T) {
	r := parseRange(rangeContext(t, "?start=2026-03-10&end=2026-03-12"))

	wantStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 3, 12, 23, 59, 59, 0, time.Local)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("range = %v .. %v, want %v .. %v", r.Start, r.End, wantStart, wantEnd)
	}
	if r.IsSingleDay() {
		t.Error("three-day range reported as single day")
	}
}

func TestParseRangeDefaultsToToday(t *testing.T) {
	r := parseRange(rangeContext(t, ""))

	now := time.Now()
	wantStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if !r.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", r.Start, wantStart)
	}
	if !r.IsSingleDay() {
		t.Error("default range should be a single day")
	}
}

func TestParseRangeClampsReversedPair(t *testing.T) {
	r := parseRange(rangeContext(t, "?start=2026-03-12&end=2026-03-10"))

	wantStart := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 3, 12, 23, 59, 59, 0, time.Local)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("range = %v .. %v, want clamped to %v .. %v", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestParseRangeIgnoresMalformedDates(t *testing.T) {
	r := parseRange(rangeContext(t, "?start=10/03/2026&end=bogus"))

	if !r.IsSingleDay() {
		t.Error("malformed params should fall back to today")
	}
}
