package stats

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playByPlayBody = `{"resource":"playbyplay","resultSets":[{"name":"PlayByPlay",
"headers":["GAME_ID","EVENTNUM","PLAYER1_ID","HOMEDESCRIPTION","NEUTRALDESCRIPTION","VISITORDESCRIPTION","VIDEO_AVAILABLE_FLAG"],
"rowSet":[
["0042100401",7,1628369,"Tatum 26' 3PT Jump Shot",null,null,1],
["0042100401",9,201939,null,null,"Curry REBOUND (Off:0 Def:1)",1],
["0042100401",12,1628369,"Tatum REBOUND (Off:1 Def:0)",null,null,0],
["0042100401",13,0,null,"Start of 2nd Period",null,0]]}]}`

const scoreboardBody = `{"scoreboard":{"gameDate":"2022-06-16","games":[{
"gameId":"0042100406","gameStatusText":"Final",
"homeTeam":{"teamName":"Celtics","teamCity":"Boston","teamTricode":"BOS","score":90,
 "periods":[{"period":1,"score":22},{"period":2,"score":17},{"period":3,"score":27},{"period":4,"score":24}]},
"awayTeam":{"teamName":"Warriors","teamCity":"Golden State","teamTricode":"GSW","score":103,
 "periods":[{"period":1,"score":27},{"period":2,"score":27},{"period":3,"score":22},{"period":4,"score":27}]}}]}}`

func TestSearch(t *testing.T) {
	rs := ResultSet{
		Name:    "CommonAllPlayers",
		Headers: []string{"PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_CITY"},
		Rows: [][]any{
			{201939.0, "Stephen Curry", "Golden State"},
			{1628369.0, "Jayson Tatum", "Boston"},
			{203110.0, "Draymond Green", "Golden State"},
		},
	}
	got := rs.Search("CURRY", "DISPLAY_FIRST_LAST")
	assert.Equal(t, "CommonAllPlayers", got.Name)
	assert.Equal(t, rs.Headers, got.Headers)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, 201939.0, got.Rows[0][0])

	assert.Len(t, rs.Search("golden", "DISPLAY_FIRST_LAST", "TEAM_CITY").Rows, 2)
	assert.Empty(t, rs.Search("golden", "DISPLAY_FIRST_LAST").Rows)
	// numbers match on their display form
	assert.Len(t, rs.Search("201939", "PERSON_ID").Rows, 1)
}

func TestText(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "30.1", Text(30.1))
	assert.Equal(t, "1610612744", Text(1610612744.0))
	assert.Equal(t, "20", Text(20.0))
	assert.Equal(t, "x", Text("x"))
	assert.Equal(t, "true", Text(true))
}

func TestPlayFilter(t *testing.T) {
	resp, err := ParseResponse([]byte(playByPlayBody))
	require.NoError(t, err)
	rs, ok := resp.Set(PlayByPlaySet)
	require.True(t, ok)

	tests := []struct {
		name   string
		filter PlayFilter
		events []float64
	}{
		{"all", PlayFilter{}, []float64{7, 9, 12, 13}},
		{"player", PlayFilter{PlayerID: "1628369"}, []float64{7, 12}},
		{"keyword any side", PlayFilter{Keyword: "rebound"}, []float64{9, 12}},
		{"neutral description", PlayFilter{Keyword: "2nd period"}, []float64{13}},
		{"player and keyword", PlayFilter{PlayerID: "1628369", Keyword: "reb"}, []float64{12}},
		{"video only", PlayFilter{PlayerID: "1628369", Keyword: "reb", VideoOnly: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.Filter(tt.filter.Match)
			var events []float64
			for _, row := range got.Rows {
				events = append(events, row[1].(float64))
			}
			assert.Equal(t, tt.events, events)
		})
	}
}

func TestPlayByPlay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playbyplayv2", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "0042100401", q.Get("GameID"))
		assert.Equal(t, "1", q.Get("StartPeriod"))
		assert.Equal(t, "0", q.Get("EndPeriod"))
		_, _ = w.Write([]byte(playByPlayBody))
	}))
	defer server.Close()

	c := New(server.URL, time.Second, zerolog.Nop())
	resp, err := c.PlayByPlay(context.Background(), "0042100401", 1, 0)
	require.NoError(t, err)
	rs, ok := resp.Set(PlayByPlaySet)
	require.True(t, ok)
	assert.Len(t, rs.Rows, 4)
}

func TestBoxScoreAndPlayers(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"resultSets":[{"name":"PlayerStats","headers":["PLAYER_ID"],"rowSet":[[1]]}]}`))
	}))
	defer server.Close()

	c := New(server.URL, time.Second, zerolog.Nop())
	_, err := c.BoxScorePlayerTrack(context.Background(), "0042100401")
	require.NoError(t, err)
	_, err = c.CommonAllPlayers(context.Background(), "00", "2021-22")
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/boxscoreplayertrackv2?GameID=0042100401", paths[0])
	assert.Equal(t, "/commonallplayers?IsOnlyCurrentSeason=0&LeagueID=00&Season=2021-22", paths[1])
}

func TestVideoURL(t *testing.T) {
	body := `{"resource":"videoeventsasset","resultSets":{"Meta":{"videoUrls":[{"uuid":"a","lurl":"https://videos.example/a_1280x720.mp4"}]},"playlist":[]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("GameEventID") {
		case "7":
			_, _ = w.Write([]byte(body))
		default:
			_, _ = w.Write([]byte(`{"resultSets":{"Meta":{"videoUrls":[]}}}`))
		}
	}))
	defer server.Close()

	c := New(server.URL, time.Second, zerolog.Nop())
	u, err := c.VideoURL(context.Background(), "0042100401", "7")
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example/a_1280x720.mp4", u)

	_, err = c.VideoURL(context.Background(), "0042100401", "8")
	assert.ErrorIs(t, err, ErrNoVideo)
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp4 bytes"))
	}))
	defer server.Close()

	c := New("", time.Second, zerolog.Nop())
	var buf bytes.Buffer
	n, err := c.Download(context.Background(), server.URL+"/clip.mp4", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "mp4 bytes", buf.String())
}

func TestScoreboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todaysScoreboard_00.json", r.URL.Path)
		_, _ = w.Write([]byte(scoreboardBody))
	}))
	defer server.Close()

	c := New("", time.Second, zerolog.Nop())
	games, err := c.Scoreboard(context.Background(), server.URL+"/todaysScoreboard_00.json")
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "0042100406", g.ID)
	assert.Equal(t, "Final", g.Status)
	assert.Equal(t, "(BOS) Boston Celtics", g.Home.String())
	assert.Equal(t, "(GSW) Golden State Warriors", g.Away.String())
	assert.Equal(t, []int{22, 17, 27, 24}, g.Home.Periods)
	assert.Equal(t, 103, g.Away.Score)

	_, err = ParseScoreboard([]byte(`{"scoreboard":{}}`))
	assert.Error(t, err)
	_, err = ParseScoreboard([]byte(`nope`))
	assert.Error(t, err)
}

func TestSelectDistinct(t *testing.T) {
	rs := ResultSet{
		Name:    "CommonAllPlayers",
		Headers: []string{"PERSON_ID", "TEAM_ID", "TEAM_NAME"},
		Rows: [][]any{
			{201939.0, 1610612744.0, "Warriors"},
			{203110.0, 1610612744.0, "Warriors"},
			{1628369.0, 1610612738.0},
		},
	}
	teams := rs.Select("team_name", "TEAM_ID", "NOPE").Distinct()
	assert.Equal(t, []string{"TEAM_NAME", "TEAM_ID"}, teams.Headers)
	assert.Equal(t, [][]any{{"Warriors", 1610612744.0}, {nil, 1610612738.0}}, teams.Rows)
}
