// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package supervisor runs the server's long-lived services under suture v4.

The tree has two layers so that background upkeep cannot take the API down:

	RootSupervisor ("steamlens")
	├── DataSupervisor ("data-layer")
	│   └── cache.Janitor
	└── APISupervisor ("api-layer")
	    └── services.HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events
(start, failure, restart, backoff) are logged through sutureslog, so callers
pass a *slog.Logger; logging.NewSlogLogger bridges that to zerolog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("supervisor tree")
	}
	tree.AddDataService(cache.NewJanitor(resultCache, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

After shutdown, UnstoppedServiceReport lists anything that exceeded the
shutdown timeout.
*/
package supervisor
