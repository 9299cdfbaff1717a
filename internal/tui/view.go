package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.mapH-2)
	}

	header := titleStyle.Render(" courtview ─ terminal shot chart ")
	if m.set.Len() > 0 {
		header += dimStyle.Render("  " + m.set.Source + "  " + m.summary())
	}
	header = lipgloss.NewStyle().Width(lo.contentW).MaxHeight(1).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(lo.mapW, max(32, colW+4))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.queryMode:
		m.ta.SetWidth(min(lo.mapW-4, 80))
		box := boxStyle.Render(titleStyle.Render("shotchartdetail query") + "\n" + m.ta.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	default:
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.renderCourt(lo.mapW, lo.mapH))
	}

	popup := m.popup(lo.contentW)

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	status := m.status
	if m.fetching {
		status = "⟳ " + status
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+status+" "), m.renderHelp())
	coords := m.renderHover()
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	rows := []string{header}
	if popup != "" {
		rows = append(rows, popup)
	}
	ui := lipgloss.JoinVertical(lipgloss.Left, append(rows, body, footer)...)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderHover shows the cursor position in feet and the snapped shot.
func (m Model) renderHover() string {
	if !m.hovering || !m.hoverHasXY {
		return ""
	}
	s := fmt.Sprintf("  x=%.1fft y=%.1fft", m.hoverPos[0]/10, m.hoverPos[1]/10)
	if m.hoverShot >= 0 && m.hoverShot < m.set.Len() {
		sh := m.set.Shots[m.hoverShot]
		who := sh.PlayerName
		if who == "" {
			who = fmt.Sprintf("#%d", m.hoverShot+1)
		}
		style := missedStyle
		if sh.Made {
			style = madeStyle
		}
		return dimStyle.Render(s+"  ") + style.Render(fmt.Sprintf("%s %s %.0fft", who, result(sh), sh.Distance)) + "  "
	}
	return dimStyle.Render(s + "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"1 made",
		"2 missed",
		"3 court",
		"o outer",
		"Tab files",
		"q query",
		"a table",
		"i inspect",
		"e svg",
		"h help",
		"^c quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
