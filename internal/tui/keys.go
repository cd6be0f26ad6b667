// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	refresh key.Binding
	quit    key.Binding
}

var keys = keyMap{
	refresh: key.NewBinding(key.WithKeys("r")),
	quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}
