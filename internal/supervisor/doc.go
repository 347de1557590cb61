// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for Reelmatch using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("reelmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheSweeperService (when the recommendation cache has a TTL)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a crashing sweeper backs off
without restarting the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

# Failure Handling

Every failure increments a counter that decays over FailureDecay seconds.
Once it exceeds FailureThreshold, restarts wait FailureBackoff. A service
that returns nil is not restarted; one that returns an error is.

Supervisor events (starts, failures, backoff, stop timeouts) are logged
through sutureslog, which bridges suture's event hook to log/slog.

# Debugging Shutdown

Services still running after ShutdownTimeout are listed by
UnstoppedServiceReport.
*/
package supervisor
