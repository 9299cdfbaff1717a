package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"courtview/internal/shots"
	"courtview/internal/stats"
)

var errNoFetcher = errors.New("stats client not configured")

type shotsFetchedMsg struct {
	set  shots.Set
	err  error
	took time.Duration
}

// fetchShots queries shotchartdetail off the update loop.
func fetchShots(f ShotFetcher, p stats.ShotChartParams, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return shotsFetchedMsg{err: errNoFetcher}
		}
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := f.ShotChartDetail(ctx, p)
		if err != nil {
			return shotsFetchedMsg{err: err, took: time.Since(start)}
		}
		set, err := shots.FromResponse(resp)
		if err != nil {
			return shotsFetchedMsg{err: err, took: time.Since(start)}
		}
		set.Source = "shotchartdetail " + p.Season
		return shotsFetchedMsg{set: set, took: time.Since(start)}
	}
}

// applyQuery parses the query box into a copy of the current parameters.
func (m Model) applyQuery(q string) (stats.ShotChartParams, error) {
	p := m.params
	pairs, err := stats.ParseQuery(q)
	if err != nil {
		return p, err
	}
	for _, kv := range pairs {
		if err := p.Set(kv[0], kv[1]); err != nil {
			return m.params, err
		}
	}
	return p, nil
}
