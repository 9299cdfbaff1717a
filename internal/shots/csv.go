package shots

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads shots from a CSV file with a header row.
// Column detection (case-insensitive): loc_x|x and loc_y|y are required;
// shot_made_flag|made, player_name, action_type, shot_distance, period,
// game_id are picked up when present.
func LoadCSV(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return Set{}, fmt.Errorf("shots: read %s: %w", path, err)
	}
	if len(recs) == 0 {
		return Set{}, fmt.Errorf("shots: %s: %w", path, ErrNoShots)
	}
	header := recs[0]
	col := func(names ...string) int {
		for i, h := range header {
			lh := strings.ToLower(strings.TrimSpace(h))
			for _, n := range names {
				if lh == n {
					return i
				}
			}
		}
		return -1
	}
	idxX, idxY := col("loc_x", "x"), col("loc_y", "y")
	if idxX == -1 || idxY == -1 {
		return Set{}, fmt.Errorf("shots: %s: %w", path, ErrMissingColumns)
	}
	idxMade := col("shot_made_flag", "made")
	idxName := col("player_name")
	idxAction := col("action_type")
	idxDist := col("shot_distance")
	idxPeriod := col("period")
	idxGame := col("game_id")

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	set := Set{Source: path}
	for _, row := range recs[1:] {
		x, err1 := strconv.ParseFloat(cell(row, idxX), 64)
		y, err2 := strconv.ParseFloat(cell(row, idxY), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		sh := Shot{
			X:          x,
			Y:          y,
			Made:       parseMade(cell(row, idxMade)),
			PlayerName: cell(row, idxName),
			ActionType: cell(row, idxAction),
			GameID:     cell(row, idxGame),
		}
		sh.Distance, _ = strconv.ParseFloat(cell(row, idxDist), 64)
		sh.Period, _ = strconv.Atoi(cell(row, idxPeriod))
		set.Shots = append(set.Shots, sh)
	}
	if len(set.Shots) == 0 {
		return Set{}, fmt.Errorf("shots: %s: %w", path, ErrNoShots)
	}
	return set, nil
}

func parseMade(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "made", "y", "yes":
		return true
	}
	return false
}
