package shots

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"courtview/internal/stats"
)

// ShotChartSet is the result set name shotchartdetail reports shots under.
const ShotChartSet = "Shot_Chart_Detail"

// FromResponse extracts shots from a shotchartdetail response, falling back
// to the first result set when the named one is absent.
func FromResponse(resp *stats.Response) (Set, error) {
	rs, ok := resp.Set(ShotChartSet)
	if !ok {
		if len(resp.Sets) == 0 {
			return Set{}, ErrNoShots
		}
		rs = resp.Sets[0]
	}
	return FromResultSet(rs)
}

// FromResultSet converts a result set with LOC_X/LOC_Y columns into shots.
// Rows whose coordinates are not numbers are skipped.
func FromResultSet(rs stats.ResultSet) (Set, error) {
	idxX, idxY := rs.Column("LOC_X"), rs.Column("LOC_Y")
	if idxX < 0 || idxY < 0 {
		return Set{}, ErrMissingColumns
	}
	idx := func(name string) int { return rs.Column(name) }
	cols := struct {
		game, event, player, name, team, teamName, period, action, shotType, zone, dist, made int
	}{
		idx("GAME_ID"), idx("GAME_EVENT_ID"), idx("PLAYER_ID"), idx("PLAYER_NAME"),
		idx("TEAM_ID"), idx("TEAM_NAME"), idx("PERIOD"), idx("ACTION_TYPE"),
		idx("SHOT_TYPE"), idx("SHOT_ZONE_BASIC"), idx("SHOT_DISTANCE"), idx("SHOT_MADE_FLAG"),
	}

	set := Set{Source: rs.Name}
	for _, row := range rs.Rows {
		x, okX := number(at(row, idxX))
		y, okY := number(at(row, idxY))
		if !okX || !okY {
			continue
		}
		made, _ := number(at(row, cols.made))
		dist, _ := number(at(row, cols.dist))
		event, _ := number(at(row, cols.event))
		player, _ := number(at(row, cols.player))
		team, _ := number(at(row, cols.team))
		period, _ := number(at(row, cols.period))
		set.Shots = append(set.Shots, Shot{
			GameID:     str(at(row, cols.game)),
			EventID:    int(event),
			PlayerID:   int(player),
			PlayerName: str(at(row, cols.name)),
			TeamID:     int(team),
			TeamName:   str(at(row, cols.teamName)),
			Period:     int(period),
			ActionType: str(at(row, cols.action)),
			ShotType:   str(at(row, cols.shotType)),
			ZoneBasic:  str(at(row, cols.zone)),
			Distance:   dist,
			X:          x,
			Y:          y,
			Made:       made == 1,
		})
	}
	if len(set.Shots) == 0 {
		return Set{}, ErrNoShots
	}
	return set, nil
}

// LoadJSON reads a saved shotchartdetail response.
func LoadJSON(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	resp, err := stats.ParseResponse(data)
	if err != nil {
		return Set{}, fmt.Errorf("shots: %s: %w", path, err)
	}
	set, err := FromResponse(resp)
	if err != nil {
		return Set{}, fmt.Errorf("shots: %s: %w", path, err)
	}
	set.Source = path
	return set, nil
}

// Load picks a loader by file extension.
func Load(path string) (Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	}
	return Set{}, fmt.Errorf("%w: %s", errUnsupportedFile, filepath.Ext(path))
}

// Supported reports whether Load understands the file's extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".csv":
		return true
	}
	return false
}

func at(row []any, i int) any {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}
