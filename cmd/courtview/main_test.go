package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCSV(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "shots.csv")
	require.NoError(t, os.WriteFile(p, []byte("LOC_X,LOC_Y,SHOT_MADE_FLAG\n0,200,1\n-220,0,0\n"), 0o644))
	return p
}

func isBraille(r rune) bool { return r > 0x2800 && r <= 0x28FF }

func TestRoot_ASCII(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--ascii", "--log-level", "none", "--config", dir, "--width", "60", "--height", "30", writeCSV(t, dir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 30)
	assert.True(t, strings.ContainsFunc(out, isBraille))
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "×")
}

func TestRoot_SVG(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "chart.svg")
	_, err := execute(t, "--svg", svg, "--log-level", "none", "--config", dir, "--outer-lines", "--color", "red", "--line-width", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `width="1000" height="1000"`)
	assert.Contains(t, s, "stroke:red;stroke-width:1.00")
	assert.NotContains(t, s, "stroke:black")
}

func TestRoot_SVGAndASCIISizes(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "chart.svg")
	out, err := execute(t, "--svg", svg, "--ascii", "--log-level", "none", "--config", dir, "--width", "60", "--height", "30")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 30)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	// cell counts do not leak into the pixel size
	assert.Contains(t, string(data), `width="1000" height="1000"`)

	_, err = execute(t, "--svg", svg, "--ascii", "--log-level", "none", "--config", dir, "--width", "60", "--svg-width", "400", "--svg-height", "300")
	require.NoError(t, err)
	data, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="400" height="300"`)
}

func TestRoot_SVGRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "chart.svg")
	_, err := execute(t, "--svg", svg, "--log-level", "none", "--config", dir, "--color", `red" onload="x`)
	require.Error(t, err)
	assert.NoFileExists(t, svg)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"court": {"color": "blue"}, "view": {"xMin": -250, "xMax": 250, "yMin": -50, "yMax": 450}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courtview.cfg.json"), []byte(cfg), 0o644))
	svg := filepath.Join(dir, "chart.svg")

	_, err := execute(t, "--svg", svg, "--log-level", "none", "--config", dir, "--width", "500")
	require.NoError(t, err)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stroke:blue")
	assert.Contains(t, string(data), `width="500" height="500"`)
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "shots.txt")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o644))

	_, err := execute(t, "--ascii", "--log-level", "none", "--config", dir, bad)
	require.Error(t, err)

	_, err = execute(t, "--ascii", "--config", dir, "a.csv", "b.csv")
	require.Error(t, err)
}

const shotChartBody = `{"resource":"shotchart","resultSets":[{"name":"Shot_Chart_Detail",
"headers":["PLAYER_NAME","LOC_X","LOC_Y","SHOT_MADE_FLAG"],
"rowSet":[["Stephen Curry",-97,247,1],["Stephen Curry",3,8,0]]}]}`

func TestRoot_Fetch(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path + "?" + r.URL.RawQuery
		_, _ = w.Write([]byte(shotChartBody))
	}))
	defer srv.Close()
	t.Setenv("COURTVIEW_STATS_BASEURL", srv.URL)

	dir := t.TempDir()
	out, err := execute(t, "--ascii", "--fetch", "--log-level", "none", "--config", dir, "--player-id", "201939", "--season", "2015-16")
	require.NoError(t, err)
	assert.Contains(t, got, "/shotchartdetail?")
	assert.Contains(t, got, "PlayerID=201939")
	assert.Contains(t, got, "Season=2015-16")
	assert.Contains(t, out, "●")
}

const dashBody = `{"resource":"teamdashptshots","resultSets":[
{"name":"GeneralShooting","headers":["TEAM_ID","SHOT_TYPE","FGA"],"rowSet":[[1610612744,"Catch and Shoot",30.1],[1610612744,"Pull Ups",20]]},
{"name":"ShotClockShooting","headers":["TEAM_ID","SHOT_CLOCK_RANGE"],"rowSet":[[1610612744,"24-22"]]}]}`

func TestDash(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path + "?" + r.URL.RawQuery
		_, _ = w.Write([]byte(dashBody))
	}))
	defer srv.Close()
	t.Setenv("COURTVIEW_STATS_BASEURL", srv.URL)

	dir := t.TempDir()
	out, err := execute(t, "dash", "--log-level", "none", "--config", dir, "--team-id", "1610612744", "-p", "PerMode=PerGame", "--rows", "1")
	// PerMode is not a teamdashptshots parameter of this client
	require.Error(t, err)

	out, err = execute(t, "dash", "--log-level", "none", "--config", dir, "--team-id", "1610612744", "-p", "SeasonType=Playoffs", "--rows", "1")
	require.NoError(t, err)
	assert.Contains(t, got, "/teamdashptshots?")
	assert.Contains(t, got, "TeamID=1610612744")
	assert.Contains(t, got, "SeasonType=Playoffs")
	assert.Contains(t, out, "GeneralShooting (2 rows)")
	assert.Contains(t, out, "Catch and Shoot")
	assert.NotContains(t, out, "Pull Ups")
	assert.Contains(t, out, "ShotClockShooting (1 rows)")
}
