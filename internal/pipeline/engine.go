// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"sync"
	"time"

	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

// Stage names used for metrics and logs.
const (
	StageSummary        = "summary"
	StageTrend          = "trend"
	StageTopGames       = "top_games"
	StageTopGenres      = "top_genres"
	StageTopPublishers  = "top_publishers"
	StagePrices         = "price_categories"
	StageDensity        = "review_density"
	StageOwnership      = "ownership"
	StageMedianPlaytime = "median_playtime"
	StageRatioScatter   = "ratio_scatter"
	StageDashboard      = "dashboard"
)

// Options are the tunable constants of the pipeline.
type Options struct {
	TopN         int
	DensityBins  int
	RecentCutoff int
}

// DefaultOptions returns the stock ranking size, bin count and cutoff year.
func DefaultOptions() Options {
	return Options{
		TopN:         DefaultTopN,
		DensityBins:  DefaultDensityBins,
		RecentCutoff: DefaultRecentCutoff,
	}
}

// Engine answers queries against one preprocessed table. The table is
// never written after NewEngine, so every method is safe for concurrent use.
type Engine struct {
	table   *Table
	periods PeriodTable
	opts    Options
	filters *models.FilterOptions
	stats   TableStats
}

// NewEngine wraps table. Zero option fields take their defaults.
func NewEngine(table *Table, opts Options) *Engine {
	def := DefaultOptions()
	if opts.TopN <= 0 {
		opts.TopN = def.TopN
	}
	if opts.DensityBins <= 0 {
		opts.DensityBins = def.DensityBins
	}
	if opts.RecentCutoff == 0 {
		opts.RecentCutoff = def.RecentCutoff
	}
	periods := NewPeriodTable(opts.RecentCutoff)
	return &Engine{
		table:   table,
		periods: periods,
		opts:    opts,
		filters: BuildFilterOptions(periods, table.Exploded),
		stats:   table.Stats(),
	}
}

// Options returns the effective engine options.
func (e *Engine) Options() Options {
	return e.opts
}

// Stats returns row counts of the working table.
func (e *Engine) Stats() TableStats {
	return e.stats
}

// FilterOptions lists the values accepted by each selection control.
func (e *Engine) FilterOptions() *models.FilterOptions {
	return e.filters
}

func (e *Engine) subsets(q Query, stage string) (Subsets, error) {
	spec, err := e.periods.Lookup(q.Period)
	if err != nil {
		metrics.RecordStageError(stage)
		return Subsets{}, err
	}
	return Select(e.table.Rows, spec), nil
}

func (e *Engine) limit(q Query) int {
	if q.Limit > 0 {
		return q.Limit
	}
	return e.opts.TopN
}

// Summary computes the KPI record with deltas against the previous window.
func (e *Engine) Summary(q Query) (*models.Summary, error) {
	s, err := e.subsets(q, StageSummary)
	if err != nil {
		return nil, err
	}
	return e.summary(s), nil
}

func (e *Engine) summary(s Subsets) *models.Summary {
	defer metrics.ObserveStage(StageSummary, time.Now())
	return Summarize(s)
}

// Trend counts releases per year of the current window.
func (e *Engine) Trend(q Query) (*models.ReleaseTrend, error) {
	s, err := e.subsets(q, StageTrend)
	if err != nil {
		return nil, err
	}
	return e.trend(s), nil
}

func (e *Engine) trend(s Subsets) *models.ReleaseTrend {
	defer metrics.ObserveStage(StageTrend, time.Now())
	years, undated := YearlyReleases(s.Current)
	return &models.ReleaseTrend{Period: string(s.Period), Years: years, Undated: undated}
}

// TopGames ranks the current window's games by positive ratings.
func (e *Engine) TopGames(q Query) (*models.TopGames, error) {
	s, err := e.subsets(q, StageTopGames)
	if err != nil {
		return nil, err
	}
	return e.topGames(s, e.limit(q)), nil
}

func (e *Engine) topGames(s Subsets, n int) *models.TopGames {
	defer metrics.ObserveStage(StageTopGames, time.Now())
	games, bars := TopGamesByPositive(s.Current, n)
	return &models.TopGames{Period: string(s.Period), Games: games, Bars: bars}
}

// TopGenres ranks the current window's genres by frequency.
func (e *Engine) TopGenres(q Query) (*models.TopGenres, error) {
	s, err := e.subsets(q, StageTopGenres)
	if err != nil {
		return nil, err
	}
	return e.topGenres(s, e.limit(q)), nil
}

func (e *Engine) topGenres(s Subsets, n int) *models.TopGenres {
	defer metrics.ObserveStage(StageTopGenres, time.Now())
	return &models.TopGenres{
		Period: string(s.Period),
		Genres: TopGenresByFrequency(Explode(s.Current), n),
	}
}

// TopPublishers ranks the current window's publishers by mean positive ratings.
func (e *Engine) TopPublishers(q Query) (*models.TopPublishers, error) {
	s, err := e.subsets(q, StageTopPublishers)
	if err != nil {
		return nil, err
	}
	return e.topPublishers(s, e.limit(q)), nil
}

func (e *Engine) topPublishers(s Subsets, n int) *models.TopPublishers {
	defer metrics.ObserveStage(StageTopPublishers, time.Now())
	return &models.TopPublishers{
		Period:     string(s.Period),
		Publishers: TopPublishersByMeanPositive(s.Current, n),
	}
}

// Prices splits the current window into Free and Paid.
func (e *Engine) Prices(q Query) (*models.PriceDistribution, error) {
	s, err := e.subsets(q, StagePrices)
	if err != nil {
		return nil, err
	}
	return e.prices(s), nil
}

func (e *Engine) prices(s Subsets) *models.PriceDistribution {
	defer metrics.ObserveStage(StagePrices, time.Now())
	categories, unpriced := PriceCategories(s.Current)
	return &models.PriceDistribution{
		Period:     string(s.Period),
		Categories: categories,
		Total:      len(s.Current),
		Unpriced:   unpriced,
	}
}

// Density bins review ratio against price inside the selected bracket.
func (e *Engine) Density(q Query) (*models.DensityGrid, error) {
	bracket, err := LookupBracket(q.Bracket)
	if err != nil {
		metrics.RecordStageError(StageDensity)
		return nil, err
	}
	s, err := e.subsets(q, StageDensity)
	if err != nil {
		return nil, err
	}
	return e.density(s, bracket), nil
}

func (e *Engine) density(s Subsets, bracket BracketSpec) *models.DensityGrid {
	defer metrics.ObserveStage(StageDensity, time.Now())
	h, unrated := ReviewDensity(s.Current, bracket, e.opts.DensityBins)
	return densityGrid(s.Period, bracket, e.opts.DensityBins, h, unrated)
}

// Ownership builds the owners/average-playtime polar table.
func (e *Engine) Ownership(q Query) (*models.OwnershipPolar, error) {
	s, err := e.subsets(q, StageOwnership)
	if err != nil {
		return nil, err
	}
	return e.ownership(s, q.GenreFilter(), PlaytimeAverage, StageOwnership), nil
}

// MedianPlaytime builds the owners/median-playtime polar table.
func (e *Engine) MedianPlaytime(q Query) (*models.OwnershipPolar, error) {
	s, err := e.subsets(q, StageMedianPlaytime)
	if err != nil {
		return nil, err
	}
	return e.ownership(s, q.GenreFilter(), PlaytimeMedian, StageMedianPlaytime), nil
}

func (e *Engine) ownership(s Subsets, genre string, metric PlaytimeMetric, stage string) *models.OwnershipPolar {
	defer metrics.ObserveStage(stage, time.Now())
	out := OwnershipPolarTable(s.Current, genre, metric)
	out.Period = string(s.Period)
	if genre == "" {
		out.Genre = AllGenres
	}
	return out
}

// RatioScatter lists (genre, price, ratio) points at or below the price cap.
func (e *Engine) RatioScatter(q Query) (*models.RatioScatter, error) {
	s, err := e.subsets(q, StageRatioScatter)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveStage(StageRatioScatter, time.Now())
	maxPrice := q.MaxPrice
	if maxPrice <= 0 {
		maxPrice = DefaultScatterMaxPrice
	}
	return &models.RatioScatter{
		Period:   string(s.Period),
		MaxPrice: maxPrice,
		Points:   RatioByGenre(s.Current, maxPrice),
	}, nil
}

// Dashboard computes every chart of one query. The period is selected once
// and the aggregations run concurrently over the shared subsets.
func (e *Engine) Dashboard(q Query) (*models.Dashboard, error) {
	bracket, err := LookupBracket(q.Bracket)
	if err != nil {
		metrics.RecordStageError(StageDashboard)
		return nil, err
	}
	s, err := e.subsets(q, StageDashboard)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveStage(StageDashboard, time.Now())

	n := e.limit(q)
	genre := q.GenreFilter()
	out := &models.Dashboard{}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	run(func() { out.Summary = e.summary(s) })
	run(func() { out.Trend = e.trend(s) })
	run(func() { out.TopGames = e.topGames(s, n) })
	run(func() { out.TopGenres = e.topGenres(s, n) })
	run(func() { out.TopPublishers = e.topPublishers(s, n) })
	run(func() { out.Prices = e.prices(s) })
	run(func() { out.Density = e.density(s, bracket) })
	run(func() { out.Ownership = e.ownership(s, genre, PlaytimeAverage, StageOwnership) })
	wg.Wait()

	return out, nil
}
