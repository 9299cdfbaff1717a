package stats

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	SeasonTypeRegular  = "Regular Season"
	SeasonTypePlayoffs = "Playoffs"
)

// ShotChartParams are the query parameters of shotchartdetail. The endpoint
// expects every key to be present, blank when unused.
type ShotChartParams struct {
	LeagueID       string
	Season         string
	SeasonType     string
	PlayerID       string
	TeamID         string
	GameID         string
	ContextMeasure string
	LastNGames     string
	Month          string
	OpponentTeamID string
	Period         string
	DateFrom       string
	DateTo         string
	PlayerPosition string
	Outcome        string
	Location       string
	VsConference   string
	VsDivision     string
	SeasonSegment  string
	GameSegment    string
	RookieYear     string
}

// DefaultShotChartParams returns all field goal attempts of the regular
// season with no player, team or game filter.
func DefaultShotChartParams() ShotChartParams {
	return ShotChartParams{
		LeagueID:       "00",
		SeasonType:     SeasonTypeRegular,
		PlayerID:       "0",
		TeamID:         "0",
		ContextMeasure: "FGA",
		LastNGames:     "0",
		Month:          "0",
		OpponentTeamID: "0",
		Period:         "0",
	}
}

// Values encodes the parameters, including the keys the endpoint requires
// but this client never sets.
func (p ShotChartParams) Values() url.Values {
	v := url.Values{}
	for k, f := range p.fields() {
		v.Set(k, *f)
	}
	for _, k := range []string{"AheadBehind", "ClutchTime", "ContextFilter", "EndPeriod", "EndRange", "PointDiff", "Position", "RangeType", "StartPeriod", "StartRange"} {
		v.Set(k, "")
	}
	return v
}

// Set assigns a parameter by its query name, case-insensitively.
func (p *ShotChartParams) Set(key, value string) error {
	return setField(p.fields(), key, value)
}

func (p *ShotChartParams) fields() map[string]*string {
	return map[string]*string{
		"LeagueID":       &p.LeagueID,
		"Season":         &p.Season,
		"SeasonType":     &p.SeasonType,
		"PlayerID":       &p.PlayerID,
		"TeamID":         &p.TeamID,
		"GameID":         &p.GameID,
		"ContextMeasure": &p.ContextMeasure,
		"LastNGames":     &p.LastNGames,
		"Month":          &p.Month,
		"OpponentTeamID": &p.OpponentTeamID,
		"Period":         &p.Period,
		"DateFrom":       &p.DateFrom,
		"DateTo":         &p.DateTo,
		"PlayerPosition": &p.PlayerPosition,
		"Outcome":        &p.Outcome,
		"Location":       &p.Location,
		"VsConference":   &p.VsConference,
		"VsDivision":     &p.VsDivision,
		"SeasonSegment":  &p.SeasonSegment,
		"GameSegment":    &p.GameSegment,
		"RookieYear":     &p.RookieYear,
	}
}

// TeamDashParams are the query parameters of teamdashptshots.
type TeamDashParams struct {
	LeagueID       string
	Season         string
	SeasonType     string
	TeamID         string
	LastNGames     string
	Month          string
	Period         string
	OpponentTeamID string
	DateFrom       string
	DateTo         string
	Location       string
	Outcome        string
	SeasonSegment  string
	GameSegment    string
	VsConference   string
	VsDivision     string
	PORound        string
}

func DefaultTeamDashParams() TeamDashParams {
	return TeamDashParams{
		LeagueID:       "00",
		SeasonType:     SeasonTypeRegular,
		LastNGames:     "0",
		Month:          "0",
		Period:         "0",
		OpponentTeamID: "0",
	}
}

func (p *TeamDashParams) fields() map[string]*string {
	return map[string]*string{
		"LeagueID":       &p.LeagueID,
		"Season":         &p.Season,
		"SeasonType":     &p.SeasonType,
		"TeamID":         &p.TeamID,
		"LastNGames":     &p.LastNGames,
		"Month":          &p.Month,
		"Period":         &p.Period,
		"OpponentTeamID": &p.OpponentTeamID,
		"DateFrom":       &p.DateFrom,
		"DateTo":         &p.DateTo,
		"Location":       &p.Location,
		"Outcome":        &p.Outcome,
		"SeasonSegment":  &p.SeasonSegment,
		"GameSegment":    &p.GameSegment,
		"VsConference":   &p.VsConference,
		"VsDivision":     &p.VsDivision,
		"PORound":        &p.PORound,
	}
}

func (p TeamDashParams) Values() url.Values {
	v := url.Values{}
	for k, f := range p.fields() {
		v.Set(k, *f)
	}
	return v
}

func (p *TeamDashParams) Set(key, value string) error {
	return setField(p.fields(), key, value)
}

func setField(fields map[string]*string, key, value string) error {
	for name, f := range fields {
		if strings.EqualFold(name, key) {
			*f = value
			return nil
		}
	}
	known := make([]string, 0, len(fields))
	for name := range fields {
		known = append(known, name)
	}
	sort.Strings(known)
	return fmt.Errorf("stats: unknown parameter %q (known: %s)", key, strings.Join(known, ", "))
}

// ParseQuery reads "Key=Value" pairs separated by whitespace or '&'. A '+'
// in a value stands for a space, so "SeasonType=Regular+Season" works from
// a single-line prompt.
func ParseQuery(s string) ([][2]string, error) {
	var out [][2]string
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == '&' || r == ' ' || r == '\t' || r == '\n' }) {
		k, v, ok := strings.Cut(tok, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("stats: expected key=value, got %q", tok)
		}
		v, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("stats: bad value for %s: %w", k, err)
		}
		out = append(out, [2]string{k, v})
	}
	return out, nil
}
