// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the fintrack terminal client commands.
//
// [NewRootCommand] builds the cobra command tree. Before any subcommand runs
// the client configuration is resolved, a file logger is opened and the
// bearer token saved by the last login is loaded into the server adapter.
package cli
