package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylepulse/internal/domain/trend"
)

func testRouter() http.Handler {
	snapshot := &trend.Snapshot{
		RunID: "run-1",
		Weeks: []string{"2025-W29", "2025-W30"},
		Buckets: []trend.WeekBucket{
			{Week: "2025-W29", Tag: "denim", Posts: 2, AvgEngagement: 10},
			{Week: "2025-W30", Tag: "denim", Posts: 5, AvgEngagement: 20},
			{Week: "2025-W30", Tag: "red", Posts: 1, AvgEngagement: 99},
		},
		Rising: []trend.RisingTag{
			{Tag: "denim", Recent: 7, Prior: 0, Delta: 7},
			{Tag: "red", Recent: 1, Prior: 0, Delta: 1},
		},
	}

	handler := NewTrendHandler(snapshot)
	router := chi.NewRouter()
	router.Get("/api/v1/summary", handler.GetSummary)
	router.Get("/api/v1/rising", handler.GetRising)
	router.Get("/api/v1/tags/{tag}", handler.GetTagSeries)
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetSummary(t *testing.T) {
	rec := get(t, testRouter(), "/api/v1/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var buckets []trend.WeekBucket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	assert.Len(t, buckets, 3)
}

func TestGetSummaryFiltersByTagAndWeek(t *testing.T) {
	rec := get(t, testRouter(), "/api/v1/summary?tag=denim&week=2025-W30")
	require.Equal(t, http.StatusOK, rec.Code)

	var buckets []trend.WeekBucket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	require.Len(t, buckets, 1)
	assert.Equal(t, 5, buckets[0].Posts)
}

func TestGetSummaryRejectsBadMinPosts(t *testing.T) {
	rec := get(t, testRouter(), "/api/v1/summary?min_posts=lots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRisingLimit(t *testing.T) {
	rec := get(t, testRouter(), "/api/v1/rising?n=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var rising []trend.RisingTag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rising))
	require.Len(t, rising, 1)
	assert.Equal(t, "denim", rising[0].Tag)
}

func TestGetTagSeries(t *testing.T) {
	rec := get(t, testRouter(), "/api/v1/tags/red")
	require.Equal(t, http.StatusOK, rec.Code)

	var series trend.TagSeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &series))
	assert.Equal(t, []string{"2025-W29", "2025-W30"}, series.Weeks)
	assert.Equal(t, []int{0, 1}, series.Posts)
}

func TestGetTagSeriesUnknownTag(t *testing.T) {
	rec := get(t, testRouter(), "/api/v1/tags/nosuchtag")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
