// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package pipeline turns loaded listing records into the tables behind each
dashboard chart.

The stages run in a fixed order:

	Preprocess   records -> Table (derived columns + exploded genre view)
	Select       Table + PeriodSpec -> Subsets (current, optional previous)
	Aggregators  Subsets -> one response model each

Aggregators are pure functions of their inputs. Engine binds them to one
immutable Table and adds period lookup, option defaults and stage metrics;
Engine.Dashboard runs every aggregator of a query concurrently.

Undefined values are explicit: a listing with no ratings or unreadable
rating counts has a NaN PositiveRatio and never enters ratio-based charts, a missing price is a nil
pointer, and a delta that cannot be computed is a nil pointer in the
response rather than zero.
*/
package pipeline
