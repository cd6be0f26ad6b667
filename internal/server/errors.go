// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoListeners is returned by NewServer when no handler was built.
	errNoListeners = errors.New("neither HTTP nor gRPC handler is configured")
	// errNothingToRun is returned by run when both servers are nil.
	errNothingToRun = errors.New("nothing to run")
)
