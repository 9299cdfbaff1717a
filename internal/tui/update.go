package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"courtview/internal/plot"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().mapH-2)
		}
	case shotsFetchedMsg:
		m.fetching = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Dur("took", msg.took).Msg("fetch shots")
			m.status = "fetch error: " + msg.err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setShots(msg.set)
		m.status = fmt.Sprintf("fetched %s in %s  %s", msg.set.Source, msg.took.Round(time.Millisecond), m.summary())
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.queryMode {
			return m.updateQuery(msg)
		}
		if m.showAttrs {
			switch msg.String() {
			case "up", "down", "pgup", "pgdown", "home", "end", "k", "j":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			case "enter":
				if i := m.tbl.Cursor(); i >= 0 && i < m.set.Len() {
					m.showAttrs = false
					m.inspectPopup = shotDetails(i, m.set.Shots[i])
					m.hoverShot = i
				}
				return m, nil
			}
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "1":
			m.layers.Made = !m.layers.Made
			m.status = fmt.Sprintf("made: %v", m.layers.Made)
		case "2":
			m.layers.Missed = !m.layers.Missed
			m.status = fmt.Sprintf("missed: %v", m.layers.Missed)
		case "3":
			m.layers.Court = !m.layers.Court
			m.status = fmt.Sprintf("court: %v", m.layers.Court)
		case "o":
			m.courtOpts.OuterLines = !m.courtOpts.OuterLines
			m.status = fmt.Sprintf("outer lines: %v", m.courtOpts.OuterLines)
		case "+", "=":
			if m.view.Zoom < 64 {
				m.view.Zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.view.Zoom)
			}
		case "-", "_":
			if m.view.Zoom > 0.05 {
				m.view.Zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.view.Zoom)
			}
		case "0":
			m.view = plot.View{Zoom: 1}
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().mapH-2)
			}
		case "q":
			m.queryMode = true
			m.inspectPopup = ""
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "query: key=value stats parameters"
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			m.inspect()
		case "e":
			path := m.exportName()
			if err := m.exportSVG(path); err != nil {
				m.log.Error().Err(err).Str("path", path).Msg("export svg")
				m.status = "export error: " + err.Error()
			} else {
				m.status = "exported " + filepath.Base(path)
			}
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.view.OffsetY--
		case "down":
			m.view.OffsetY++
		case "left":
			m.view.OffsetX -= 2
		case "right":
			m.view.OffsetX += 2
		}
	case tea.MouseMsg:
		lo := m.layout()
		if cx, cy, ok := lo.inMap(msg.X, msg.Y); ok {
			m.hover(cx, cy)
		} else {
			m.hovering = false
			m.hoverShot = -1
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.queryMode = false
		m.ta.Blur()
		m.status = "query canceled"
		return m, nil
	case "enter":
		q := strings.TrimSpace(m.ta.Value())
		p, err := m.applyQuery(q)
		if err != nil {
			m.status = "query error: " + err.Error()
			return m, nil
		}
		m.params = p
		m.queryMode = false
		m.ta.Blur()
		m.fetching = true
		m.status = fmt.Sprintf("fetching shots for PlayerID=%s TeamID=%s Season=%s ...", p.PlayerID, p.TeamID, p.Season)
		m.log.Info().Str("player", p.PlayerID).Str("team", p.TeamID).Str("season", p.Season).Msg("fetch shots")
		return m, fetchShots(m.fetcher, p, m.timeout)
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// inspect opens a popup for the visible shot nearest the hovered cell or
// the canvas center.
func (m *Model) inspect() {
	pt, ok := m.inspectTarget()
	if !ok {
		m.inspectPopup = "nothing to inspect"
		m.status = m.inspectPopup
		return
	}
	i := m.nearestVisible(pt)
	if i < 0 {
		m.inspectPopup = "no shots nearby"
		m.status = m.inspectPopup
		return
	}
	m.inspectPopup = shotDetails(i, m.set.Shots[i])
	m.hoverShot = i
	m.status = "inspect popup"
}
