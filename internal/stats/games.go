package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultScoreboardURL is the live data feed of today's games. It lives on
// the cdn, not under the stats base URL.
const DefaultScoreboardURL = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"

// PlayByPlaySet is the result set of playbyplayv2 holding the events.
const PlayByPlaySet = "PlayByPlay"

// ErrNoVideo is returned when an event has no video asset.
var ErrNoVideo = errors.New("stats: event has no video")

var playDescriptions = []string{"HOMEDESCRIPTION", "NEUTRALDESCRIPTION", "VISITORDESCRIPTION"}

// PlayByPlay fetches playbyplayv2 for one game. Zero periods mean all.
func (c *Client) PlayByPlay(ctx context.Context, gameID string, startPeriod, endPeriod int) (*Response, error) {
	v := url.Values{}
	v.Set("GameID", gameID)
	v.Set("StartPeriod", strconv.Itoa(startPeriod))
	v.Set("EndPeriod", strconv.Itoa(endPeriod))
	return c.Get(ctx, "playbyplayv2", v)
}

// PlayFilter selects play-by-play events.
type PlayFilter struct {
	// PlayerID matches PLAYER1_ID, the player credited with the event.
	PlayerID string
	// Keyword matches any of the three description columns, ignoring case.
	Keyword string
	// VideoOnly keeps events with VIDEO_AVAILABLE_FLAG set.
	VideoOnly bool
}

// Match reports whether an event record passes the filter.
func (f PlayFilter) Match(rec map[string]any) bool {
	if f.PlayerID != "" && Text(rec["PLAYER1_ID"]) != f.PlayerID {
		return false
	}
	if f.VideoOnly && Text(rec["VIDEO_AVAILABLE_FLAG"]) != "1" {
		return false
	}
	if f.Keyword == "" {
		return true
	}
	kw := strings.ToLower(f.Keyword)
	for _, col := range playDescriptions {
		if strings.Contains(strings.ToLower(Text(rec[col])), kw) {
			return true
		}
	}
	return false
}

// BoxScorePlayerTrack fetches boxscoreplayertrackv2 for one game.
func (c *Client) BoxScorePlayerTrack(ctx context.Context, gameID string) (*Response, error) {
	v := url.Values{}
	v.Set("GameID", gameID)
	return c.Get(ctx, "boxscoreplayertrackv2", v)
}

// CommonAllPlayers fetches every player the league has on record for a
// season, current or not.
func (c *Client) CommonAllPlayers(ctx context.Context, leagueID, season string) (*Response, error) {
	v := url.Values{}
	v.Set("LeagueID", leagueID)
	v.Set("Season", season)
	v.Set("IsOnlyCurrentSeason", "0")
	return c.Get(ctx, "commonallplayers", v)
}

// VideoURL resolves the video of a single game event. Its resultSets is an
// object keyed by name rather than a list of tables, so the body is read
// directly.
func (c *Client) VideoURL(ctx context.Context, gameID, eventID string) (string, error) {
	v := url.Values{}
	v.Set("GameID", gameID)
	v.Set("GameEventID", eventID)
	body, err := c.GetRaw(ctx, "videoeventsasset", v)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("stats: videoeventsasset: invalid json body (%d bytes)", len(body))
	}
	u := gjson.GetBytes(body, "resultSets.Meta.videoUrls.0.lurl").String()
	if u == "" {
		return "", fmt.Errorf("game %s event %s: %w", gameID, eventID, ErrNoVideo)
	}
	return u, nil
}

// Download copies the body of an absolute URL into w.
func (c *Client) Download(ctx context.Context, u string, w io.Writer) (int64, error) {
	body, err := c.fetch(ctx, u, "download")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(body)
	return int64(n), err
}

// TeamLine is one side of a live game.
type TeamLine struct {
	Tricode string
	City    string
	Name    string
	Score   int
	Periods []int
}

func (t TeamLine) String() string {
	return fmt.Sprintf("(%s) %s %s", t.Tricode, t.City, t.Name)
}

// Game is one entry of the live scoreboard.
type Game struct {
	ID     string
	Status string
	Home   TeamLine
	Away   TeamLine
}

// Scoreboard fetches the live scoreboard. An empty u means
// DefaultScoreboardURL.
func (c *Client) Scoreboard(ctx context.Context, u string) ([]Game, error) {
	if u == "" {
		u = DefaultScoreboardURL
	}
	body, err := c.fetch(ctx, u, "scoreboard")
	if err != nil {
		return nil, err
	}
	return ParseScoreboard(body)
}

// ParseScoreboard decodes the live scoreboard feed.
func ParseScoreboard(body []byte) ([]Game, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("stats: scoreboard: invalid json body (%d bytes)", len(body))
	}
	games := gjson.GetBytes(body, "scoreboard.games")
	if !games.IsArray() {
		return nil, errors.New("stats: scoreboard: missing games")
	}
	var out []Game
	for _, g := range games.Array() {
		out = append(out, Game{
			ID:     g.Get("gameId").String(),
			Status: g.Get("gameStatusText").String(),
			Home:   parseTeamLine(g.Get("homeTeam")),
			Away:   parseTeamLine(g.Get("awayTeam")),
		})
	}
	return out, nil
}

func parseTeamLine(t gjson.Result) TeamLine {
	line := TeamLine{
		Tricode: t.Get("teamTricode").String(),
		City:    t.Get("teamCity").String(),
		Name:    t.Get("teamName").String(),
		Score:   int(t.Get("score").Int()),
	}
	for _, p := range t.Get("periods").Array() {
		line.Periods = append(line.Periods, int(p.Get("score").Int()))
	}
	return line
}
