// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// NAVIGATION BAR COMPONENT
// =============================================================================

// NavBar renders the row of view tabs shown while a session is active.
type NavBar struct {
	tabs   []string
	active int
	width  int
}

// NewNavBar creates a navigation bar over the given tab labels.
func NewNavBar(tabs []string) *NavBar {
	return &NavBar{tabs: tabs, width: 80}
}

// SetWidth updates the bar width.
func (n *NavBar) SetWidth(width int) {
	n.width = width
}

// SetActive selects a tab by index. Out-of-range indexes are ignored.
func (n *NavBar) SetActive(index int) {
	if index < 0 || index >= len(n.tabs) {
		return
	}
	n.active = index
}

// Active returns the selected tab index.
func (n *NavBar) Active() int {
	return n.active
}

// Next cycles the selection forward, wrapping at the end.
func (n *NavBar) Next() {
	if len(n.tabs) == 0 {
		return
	}
	n.active = (n.active + 1) % len(n.tabs)
}

// View renders the tab row.
func (n *NavBar) View(theme *styles.Theme) string {
	parts := make([]string, 0, len(n.tabs))
	for i, tab := range n.tabs {
		if i == n.active {
			parts = append(parts, theme.NavTabActive.Render(tab))
		} else {
			parts = append(parts, theme.NavTab.Render(tab))
		}
	}
	return theme.NavBar.Width(n.width).Render(strings.Join(parts, ""))
}
