// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

/*
Package supervisor runs the long-lived parts of the service under a suture v4
tree:

	RootSupervisor ("desire-club")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A service that returns an error is restarted with suture's backoff; lifecycle
events are written through sutureslog into the zerolog logger. Canceling the
context passed to Serve shuts the tree down, giving each service up to
ShutdownTimeout to stop.
*/
package supervisor
