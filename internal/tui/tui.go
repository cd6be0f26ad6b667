// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RunDashboard starts a full screen view of the dashboard that reloads
// every interval until the user quits or ctx is cancelled.
func RunDashboard(ctx context.Context, fetch DashboardFetcher, interval time.Duration) error {
	model := newDashboardModel(ctx, fetch, interval)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
