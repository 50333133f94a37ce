// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package cache provides a thread-safe in-memory cache with TTL support.

The API memoizes aggregation results by query so that repeated dashboard
requests skip recomputation. Keys come from GenerateKey, which hashes the
JSON form of the query:

	key := cache.GenerateKey("summary", query)
	if v, ok := c.Get(key); ok {
	    return v.(*models.Summary)
	}

Expired entries are removed lazily on Get and in bulk by a Janitor, which
runs under the supervisor tree:

	c := cache.New("analytics", 5*time.Minute)
	tree.AddDataService(cache.NewJanitor(c, time.Minute))

Hits, misses, evictions and size are exported as Prometheus metrics labelled
with the cache name.
*/
package cache
