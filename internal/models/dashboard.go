// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

// Summary holds the four KPI indicators for a period.
//
// MeanPrice is null when no row of the period carries a price. Comparison
// reports deltas against the previous window; every delta is null when the
// period has no previous window or that window is empty.
type Summary struct {
	Period     string       `json:"period"`
	Games      int          `json:"games"`
	Publishers int          `json:"publishers"`
	TopGenre   string       `json:"top_genre"`
	MeanPrice  *float64     `json:"mean_price"`
	Comparison SummaryDelta `json:"comparison"`
}

// SummaryDelta compares the current window to the previous one.
//
// MeanPriceDeltaPct is null when the previous mean price is zero, in
// addition to every case where Available is false.
type SummaryDelta struct {
	Available         bool     `json:"available"`
	PreviousGames     *int     `json:"previous_games"`
	GamesDelta        *int     `json:"games_delta"`
	PreviousMeanPrice *float64 `json:"previous_mean_price"`
	MeanPriceDelta    *float64 `json:"mean_price_delta"`
	MeanPriceDeltaPct *float64 `json:"mean_price_delta_pct"`
}

// YearCount is the number of releases in one year.
type YearCount struct {
	Year  int `json:"year"`
	Games int `json:"games"`
}

// ReleaseTrend is the yearly release line for a period.
type ReleaseTrend struct {
	Period  string      `json:"period"`
	Years   []YearCount `json:"years"`
	Undated int         `json:"undated"`
}

// GameReviews is one ranked game with both review counts.
type GameReviews struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Positive int64  `json:"positive_ratings"`
	Negative int64  `json:"negative_ratings"`
}

// ReviewBar is one bar of the grouped review chart in long form.
type ReviewBar struct {
	Name       string `json:"name"`
	ReviewType string `json:"review_type"`
	Count      int64  `json:"count"`
}

// TopGames ranks games by positive ratings.
type TopGames struct {
	Period string        `json:"period"`
	Games  []GameReviews `json:"games"`
	Bars   []ReviewBar   `json:"bars"`
}

// GenreCount is a genre with its frequency in the exploded view.
type GenreCount struct {
	Genre string `json:"genre"`
	Games int    `json:"games"`
}

// TopGenres ranks genres by frequency.
type TopGenres struct {
	Period string       `json:"period"`
	Genres []GenreCount `json:"genres"`
}

// PublisherScore is a publisher with the mean of its positive ratings.
type PublisherScore struct {
	Publisher           string  `json:"publisher"`
	MeanPositiveRatings float64 `json:"mean_positive_ratings"`
	Games               int     `json:"games"`
}

// TopPublishers ranks publishers by mean positive ratings.
type TopPublishers struct {
	Period     string           `json:"period"`
	Publishers []PublisherScore `json:"publishers"`
}

// CategoryCount is the size of one price category.
type CategoryCount struct {
	Category string  `json:"category"`
	Games    int     `json:"games"`
	Share    float64 `json:"share"`
}

// PriceDistribution is the Free/Paid split. The category counts sum to
// Total. Games without a listed price are Paid and also counted in Unpriced.
type PriceDistribution struct {
	Period     string          `json:"period"`
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
	Unpriced   int             `json:"unpriced"`
}

// DensityGrid is a 2-D histogram of review ratio (x) against price (y).
// Counts[i][j] covers RatioEdges[i]..RatioEdges[i+1] and PriceEdges[j]..PriceEdges[j+1].
type DensityGrid struct {
	Period       string    `json:"period"`
	Bracket      string    `json:"bracket"`
	BracketLabel string    `json:"bracket_label"`
	Bins         int       `json:"bins"`
	RatioEdges   []float64 `json:"ratio_edges"`
	PriceEdges   []float64 `json:"price_edges"`
	Counts       [][]int   `json:"counts"`
	Total        int       `json:"total"`
	Unrated      int       `json:"unrated"`
}

// GenreAngle is the polar angle assigned to a genre.
type GenreAngle struct {
	Genre string  `json:"genre"`
	Theta float64 `json:"theta"`
}

// PolarPoint is one (game, genre) marker of the ownership chart.
type PolarPoint struct {
	Name          string  `json:"name"`
	Genre         string  `json:"genre"`
	Theta         float64 `json:"theta"`
	Owners        float64 `json:"owners"`
	OwnersImputed bool    `json:"owners_imputed"`
	Playtime      float64 `json:"playtime_minutes"`
	MarkerSize    float64 `json:"marker_size"`
}

// OwnershipPolar is the polar-ready ownership table.
type OwnershipPolar struct {
	Period        string       `json:"period"`
	Genre         string       `json:"genre"`
	Playtime      string       `json:"playtime"`
	ImputedOwners *float64     `json:"imputed_owners"`
	Angles        []GenreAngle `json:"angles"`
	Points        []PolarPoint `json:"points"`
	Dropped       int          `json:"dropped"`
}

// RatioPoint is one (game, genre) point of the ratio scatter.
type RatioPoint struct {
	Name          string  `json:"name"`
	Genre         string  `json:"genre"`
	Price         float64 `json:"price"`
	PositiveRatio float64 `json:"positive_ratio"`
}

// RatioScatter relates review ratio to price per genre.
type RatioScatter struct {
	Period   string       `json:"period"`
	MaxPrice float64      `json:"max_price"`
	Points   []RatioPoint `json:"points"`
}

// FilterOption is one entry of a selection control.
type FilterOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FilterOptions lists the values accepted by each selection control.
type FilterOptions struct {
	Periods  []FilterOption `json:"periods"`
	Brackets []FilterOption `json:"brackets"`
	Genres   []string       `json:"genres"`
}

// Dashboard bundles every aggregation for one query.
type Dashboard struct {
	Summary       *Summary           `json:"summary"`
	Trend         *ReleaseTrend      `json:"trend"`
	TopGames      *TopGames          `json:"top_games"`
	TopGenres     *TopGenres         `json:"top_genres"`
	TopPublishers *TopPublishers     `json:"top_publishers"`
	Prices        *PriceDistribution `json:"prices"`
	Density       *DensityGrid       `json:"density"`
	Ownership     *OwnershipPolar    `json:"ownership"`
}

// DatasetStats describes the loaded table.
type DatasetStats struct {
	Source         string `json:"source"`
	Reader         string `json:"reader"`
	Rows           int    `json:"rows"`
	ExplodedRows   int    `json:"exploded_rows"`
	UndatedRows    int    `json:"undated_rows"`
	UnpricedRows   int    `json:"unpriced_rows"`
	UnratedRows    int    `json:"unrated_rows"`
	UnparsedOwners int    `json:"unparsed_owners"`
	DistinctGenres int    `json:"distinct_genres"`
	EarliestYear   int    `json:"earliest_year,omitempty"`
	LatestYear     int    `json:"latest_year,omitempty"`
	LoadTimeMS     int64  `json:"load_time_ms"`
}
