// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader means a protected route was called without
	// an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty Authorization header")

	// ErrNoAccountInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoAccountInContext = errors.New("no authenticated account in request context")
)
