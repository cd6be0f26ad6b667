// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardFetcher loads the current dashboard from the server.
type DashboardFetcher func(ctx context.Context) (models.Dashboard, error)

// dashboardModel periodically refreshes the dashboard and shows a spinner
// while a request is in flight.
type dashboardModel struct {
	ctx      context.Context
	fetch    DashboardFetcher
	interval time.Duration
	now      func() time.Time

	spinner   spinner.Model
	loading   bool
	dashboard *models.Dashboard
	updatedAt time.Time
	lastErr   error

	// refreshGen is the generation of the only refresh tick still honoured.
	refreshGen int
}

func newDashboardModel(ctx context.Context, fetch DashboardFetcher, interval time.Duration) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:      ctx,
		fetch:    fetch,
		interval: interval,
		now:      time.Now,
		spinner:  s,
		loading:  true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.refreshGen++
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		}
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		if msg.err == nil {
			d := msg.dashboard
			m.dashboard = &d
			m.updatedAt = msg.at
		}
		m.refreshGen++
		return m, m.cmdScheduleRefresh()

	case refreshTickMsg:
		if m.loading || msg.gen != m.refreshGen {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) View() string {
	header := "Dashboard"
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var body string
	switch {
	case m.dashboard != nil:
		body = RenderDashboard(*m.dashboard)
	case m.loading:
		body = "Loading..."
	}

	if m.lastErr != nil {
		body += "\n\n" + errorStyle.Render("Error: "+m.lastErr.Error())
	}

	help := "r: refresh  q: quit"
	if !m.updatedAt.IsZero() {
		help = "updated " + m.updatedAt.Format(time.TimeOnly) + "  " + help
	}

	return appStyle.Render(renderPage(header, body, help))
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx, fetch, now := m.ctx, m.fetch, m.now
	return func() tea.Msg {
		d, err := fetch(ctx)
		return dashboardLoadedMsg{dashboard: d, at: now(), err: err}
	}
}

func (m dashboardModel) cmdScheduleRefresh() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	gen := m.refreshGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return refreshTickMsg{gen: gen}
	})
}
