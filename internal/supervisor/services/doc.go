// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

Each wrapper translates a component's lifecycle into suture's
context-aware Serve pattern and names itself through fmt.Stringer so
supervisor events identify it.

HTTP Server (HTTPServerService):
  - Runs ListenAndServe until the context is canceled
  - Shuts down gracefully within a bounded timeout

Cache Sweeper (CacheSweeperService):
  - Periodically drops expired memoized rankings
  - Only registered when the recommendation cache has a TTL
*/
package services
