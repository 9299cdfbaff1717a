package tui

import "github.com/charmbracelet/lipgloss"

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	lo := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapW = max(10, lo.contentW-sw-1)
	lo.mapH = lo.contentH
	if p := m.popup(lo.contentW); p != "" {
		ph := lipgloss.Height(p)
		lo.mapY += ph
		lo.mapH = max(4, lo.contentH-ph)
	}
	return lo
}

// popup renders the inspect box, or "" when none is shown.
func (m Model) popup(contentW int) string {
	if m.inspectPopup == "" || m.showAttrs || m.queryMode {
		return ""
	}
	return popupStyle.MaxWidth(max(20, min(48, contentW/2))).Render(m.inspectPopup)
}

// inMap reports whether a screen cell falls on the court canvas and returns
// it in canvas coordinates.
func (lo layout) inMap(x, y int) (int, int, bool) {
	cx, cy := x-lo.mapX, y-lo.mapY
	if cx < 0 || cy < 0 || cx >= lo.mapW || cy >= lo.mapH {
		return 0, 0, false
	}
	return cx, cy, true
}
