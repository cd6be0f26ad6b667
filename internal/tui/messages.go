// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
)

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	at        time.Time
	err       error
}

type refreshTickMsg struct {
	gen int
}
