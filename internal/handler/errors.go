// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransport means the server config enables neither HTTP nor gRPC.
var errNoTransport = errors.New("no HTTP or gRPC address configured")
