// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server runs the fintrack HTTP API and the optional gRPC health endpoint
// side by side.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Shutdown stops both listeners, letting in-flight requests finish.
	Shutdown()
}
