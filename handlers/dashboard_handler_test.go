package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/report"
)

var testLoc = time.FixedZone("ICT", 7*60*60)

func resolveQuery(t *testing.T, query string) (report.Period, report.TimeSlotFilter, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/report?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewDashboardHandler(testLoc)
	return h.resolvePeriod(c)
}

func TestResolvePeriodDefaultsToDaily(t *testing.T) {
	p, slot, err := resolveQuery(t, "")
	assert.NoError(t, err)
	assert.Equal(t, report.PeriodDaily, p.Kind)
	assert.Equal(t, report.SlotAll, slot)
}

func TestResolvePeriodDailyWithDate(t *testing.T) {
	p, slot, err := resolveQuery(t, "period=daily&date=2024-06-17&slot=morning")
	assert.NoError(t, err)
	assert.Equal(t, report.SlotMorning, slot)
	assert.Equal(t, time.Date(2024, time.June, 17, 0, 0, 0, 0, testLoc), p.Start)
	assert.Equal(t, time.Date(2024, time.June, 17, 23, 59, 59, 0, testLoc), p.End)
}

func TestResolvePeriodWeekly(t *testing.T) {
	p, _, err := resolveQuery(t, "period=weekly&date=2024-06-19")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 17, 0, 0, 0, 0, testLoc), p.Start)
}

func TestResolvePeriodMonthly(t *testing.T) {
	p, _, err := resolveQuery(t, "period=monthly&month=2024-06")
	assert.NoError(t, err)
	assert.Equal(t, 2024, p.Year)
	assert.Equal(t, time.June, p.Month)
}

func TestResolvePeriodInvalid(t *testing.T) {
	cases := []string{
		"period=yearly",
		"period=daily&slot=noon",
		"period=daily&date=17-06-2024",
		"period=monthly&month=June",
	}
	for _, q := range cases {
		_, _, err := resolveQuery(t, q)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok, "query %q", q)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code, "query %q", q)
	}
}
