// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package models defines the JSON shapes served by the API.

Response envelope:
  - APIResponse: status, data, metadata and optional error
  - Metadata: timestamp, query time, cache flag
  - APIError: code, message, details

Chart payloads, one per aggregation:
  - Summary (with SummaryDelta against the previous window)
  - ReleaseTrend, TopGames, TopGenres, TopPublishers
  - PriceDistribution, DensityGrid, OwnershipPolar, RatioScatter
  - Dashboard bundles the charts of one query

Optional numbers are pointers so that "not computable" serialises as null
rather than as a misleading zero.
*/
package models
