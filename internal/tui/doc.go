// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders fintrack data for the terminal.
//
// The Render* functions produce static text used by the one-shot client
// commands. [RunDashboard] runs a bubbletea program that keeps the
// dashboard on screen and refreshes it on a timer.
package tui
