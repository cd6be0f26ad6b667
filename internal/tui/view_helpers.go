// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/shopspring/decimal"
)

const uiDivider = "──────────────────────────────────────────────────────"

const dateLayout = "2006-01-02"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// formatMoney renders an amount with two fractional digits.
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
