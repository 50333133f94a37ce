// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/steamlens/internal/cache"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/pipeline"
)

// testResponse mirrors models.APIResponse with the data left raw.
type testResponse struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func listing(name, publisher string, year int, genres, price string, positive, negative int64, owners string) dataset.Record {
	d := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := decimal.RequireFromString(price)
	avg, med := 120.0, 60.0
	return dataset.Record{
		Name:            name,
		Publisher:       publisher,
		ReleaseDate:     &d,
		Genres:          genres,
		Price:           &p,
		PositiveRatings: positive,
		NegativeRatings: negative,
		Owners:          owners,
		AveragePlaytime: &avg,
		MedianPlaytime:  &med,
	}
}

// testRecords holds four listings: two in 2016, one in 2013 and one in 2005.
func testRecords() []dataset.Record {
	return []dataset.Record{
		listing("Dota 2", "Valve", 2013, "Action;Free to Play;Strategy", "0", 863507, 142079, "100,000,000-200,000,000"),
		listing("Stardew Valley", "ConcernedApe", 2016, "Indie;RPG;Simulation", "10.99", 140000, 3000, "5,000,000-10,000,000"),
		listing("DOOM", "Bethesda", 2016, "Action", "19.99", 90000, 8000, "2,000,000-5,000,000"),
		listing("Psychonauts", "Double Fine", 2005, "Adventure;Indie", "7.99", 9000, 400, "500,000-1,000,000"),
	}
}

func newTestEngine() *pipeline.Engine {
	return pipeline.NewEngine(pipeline.Preprocess(testRecords()), pipeline.DefaultOptions())
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"https://dash.example.com"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	engine := newTestEngine()
	stats := DatasetStatsFrom("testdata.csv", "csv", engine.Stats(), 15*time.Millisecond)
	return NewHandler(engine, cache.New("test", time.Minute), testConfig(), stats, "test")
}

func newTestRouter(t *testing.T, h *Handler, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	return NewRouter(h, NewChiMiddleware(ChiMiddlewareConfigFrom(cfg.Security))).SetupChi()
}

func doGet(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func decodeData(t *testing.T, resp testResponse, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, v); err != nil {
		t.Fatalf("Failed to decode data %q: %v", string(resp.Data), err)
	}
}
