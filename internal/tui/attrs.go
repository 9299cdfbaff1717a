package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"courtview/internal/shots"
)

var shotColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Player", Width: 18},
	{Title: "Q", Width: 2},
	{Title: "Action", Width: 18},
	{Title: "Zone", Width: 16},
	{Title: "Ft", Width: 3},
	{Title: "X", Width: 5},
	{Title: "Y", Width: 5},
	{Title: "Result", Width: 6},
}

func shotRow(i int, s shots.Shot) table.Row {
	return table.Row{
		fmt.Sprintf("%d", i+1),
		s.PlayerName,
		fmt.Sprintf("%d", s.Period),
		s.ActionType,
		s.ZoneBasic,
		fmt.Sprintf("%.0f", s.Distance),
		fmt.Sprintf("%.0f", s.X),
		fmt.Sprintf("%.0f", s.Y),
		result(s),
	}
}

func result(s shots.Shot) string {
	if s.Made {
		return "made"
	}
	return "missed"
}

// refreshAttrs rebuilds the shot table from the loaded set.
func (m *Model) refreshAttrs() {
	if m.set.Len() == 0 {
		m.showAttrs = false
		m.status = "no shots loaded"
		return
	}
	rows := make([]table.Row, 0, m.set.Len())
	for i, s := range m.set.Shots {
		rows = append(rows, shotRow(i, s))
	}
	// clear rows first so columns and rows never disagree
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(shotColumns)
	m.tbl.SetRows(rows)
}
