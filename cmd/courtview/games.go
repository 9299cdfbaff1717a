package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"courtview/internal/config"
	"courtview/internal/logging"
	"courtview/internal/stats"
)

// openClient loads the configuration for a stats subcommand and returns a
// client for it. The returned func closes the log file.
func openClient(cmd *cobra.Command, configDir string) (config.Config, *stats.Client, func(), error) {
	bindFlags(cmd, map[string]string{"logLevel": "log-level"})
	cfg, err := config.Load(configDir)
	if err != nil {
		return cfg, nil, func() {}, err
	}
	closeLog, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return cfg, nil, closeLog, err
	}
	return cfg, stats.New(cfg.Stats.BaseURL, cfg.Stats.Timeout, log.Logger), closeLog, nil
}

func newPlayByPlayCmd(configDir *string) *cobra.Command {
	var filter stats.PlayFilter
	var startPeriod, endPeriod, maxRows int
	var videos bool
	cmd := &cobra.Command{
		Use:   "pbp GAME_ID",
		Short: "Print a game's play by play (playbyplayv2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, closeLog, err := openClient(cmd, *configDir)
			defer closeLog()
			if err != nil {
				return err
			}
			resp, err := client.PlayByPlay(cmd.Context(), args[0], startPeriod, endPeriod)
			if err != nil {
				log.Error().Err(err).Str("game", args[0]).Msg("playbyplayv2")
				return err
			}
			rs, ok := resp.Set(stats.PlayByPlaySet)
			if !ok {
				return fmt.Errorf("playbyplayv2: no %s result set", stats.PlayByPlaySet)
			}
			filter.VideoOnly = videos
			rs = rs.Filter(filter.Match)
			log.Debug().Str("game", args[0]).Int("events", len(rs.Rows)).Msg("play by play filtered")
			if !videos {
				return printSets(cmd.OutOrStdout(), []stats.ResultSet{rs}, maxRows)
			}

			out := cmd.OutOrStdout()
			for _, rec := range rs.Records() {
				event := stats.Text(rec["EVENTNUM"])
				u, err := client.VideoURL(cmd.Context(), args[0], event)
				if errors.Is(err, stats.ErrNoVideo) {
					log.Warn().Str("game", args[0]).Str("event", event).Msg("no video for event")
					continue
				}
				if err != nil {
					return err
				}
				desc := firstNonEmpty(stats.Text(rec["HOMEDESCRIPTION"]), stats.Text(rec["NEUTRALDESCRIPTION"]), stats.Text(rec["VISITORDESCRIPTION"]))
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", event, desc, u); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.PlayerID, "player-id", "", "keep events credited to this player")
	cmd.Flags().StringVarP(&filter.Keyword, "keyword", "k", "", "keep events whose description contains this text")
	cmd.Flags().IntVar(&startPeriod, "start-period", 0, "first period (0 for all)")
	cmd.Flags().IntVar(&endPeriod, "end-period", 0, "last period (0 for all)")
	cmd.Flags().IntVar(&maxRows, "rows", 0, "maximum rows printed (0 for all)")
	cmd.Flags().BoolVar(&videos, "videos", false, "list the video URL of every matching event that has one")
	return cmd
}

func newBoxScoreCmd(configDir *string) *cobra.Command {
	var maxRows int
	cmd := &cobra.Command{
		Use:   "boxscore GAME_ID",
		Short: "Print a game's player tracking box score (boxscoreplayertrackv2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, closeLog, err := openClient(cmd, *configDir)
			defer closeLog()
			if err != nil {
				return err
			}
			resp, err := client.BoxScorePlayerTrack(cmd.Context(), args[0])
			if err != nil {
				log.Error().Err(err).Str("game", args[0]).Msg("boxscoreplayertrackv2")
				return err
			}
			return printSets(cmd.OutOrStdout(), resp.Sets, maxRows)
		},
	}
	cmd.Flags().IntVar(&maxRows, "rows", 0, "maximum rows printed per result set (0 for all)")
	return cmd
}

func newVideoCmd(configDir *string) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "video GAME_ID EVENT_ID",
		Short: "Print the video URL of a game event (videoeventsasset)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, closeLog, err := openClient(cmd, *configDir)
			defer closeLog()
			if err != nil {
				return err
			}
			u, err := client.VideoURL(cmd.Context(), args[0], args[1])
			if err != nil {
				log.Error().Err(err).Str("game", args[0]).Str("event", args[1]).Msg("videoeventsasset")
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), u); err != nil {
				return err
			}
			if outPath == "" {
				return nil
			}
			return download(cmd, client, u, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also save the video to this file")
	return cmd
}

func download(cmd *cobra.Command, client *stats.Client, u, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := client.Download(cmd.Context(), u, f)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		log.Error().Err(err).Str("url", u).Msg("download video")
		return err
	}
	log.Info().Str("path", path).Int64("bytes", n).Msg("video saved")
	return f.Close()
}

func newScoreboardCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scoreboard",
		Short: "Print today's live scoreboard with the score by quarter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, closeLog, err := openClient(cmd, *configDir)
			defer closeLog()
			if err != nil {
				return err
			}
			games, err := client.Scoreboard(cmd.Context(), cfg.Stats.ScoreboardURL)
			if err != nil {
				log.Error().Err(err).Msg("scoreboard")
				return err
			}
			return printScoreboard(cmd.OutOrStdout(), games)
		},
	}
}

func printScoreboard(out io.Writer, games []stats.Game) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(out, "no games today")
		return err
	}
	for _, g := range games {
		periods := max(4, len(g.Home.Periods), len(g.Away.Periods))
		headers := []string{"Team"}
		for i := 1; i <= periods; i++ {
			if i <= 4 {
				headers = append(headers, "Q"+strconv.Itoa(i))
			} else {
				headers = append(headers, "OT"+strconv.Itoa(i-4))
			}
		}
		headers = append(headers, "Total")

		t := table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
		for _, team := range []stats.TeamLine{g.Home, g.Away} {
			row := []string{team.Tricode}
			for i := 0; i < periods; i++ {
				if i < len(team.Periods) {
					row = append(row, strconv.Itoa(team.Periods[i]))
				} else {
					row = append(row, "")
				}
			}
			t.Row(append(row, strconv.Itoa(team.Score))...)
		}
		if _, err := fmt.Fprintf(out, "%s %s\nHome: %s\nAway: %s\n%s\n\n",
			setTitleStyle.Render("game_id: "+g.ID), g.Status, g.Home, g.Away, t.Render()); err != nil {
			return err
		}
	}
	return nil
}

func newLookupCmd(configDir *string) *cobra.Command {
	var player, team string
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find player or team ids by name (commonallplayers)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (player == "") == (team == "") {
				return errors.New("lookup: give exactly one of --player or --team")
			}
			bindFlags(cmd, map[string]string{"shots.season": "season"})
			cfg, client, closeLog, err := openClient(cmd, *configDir)
			defer closeLog()
			if err != nil {
				return err
			}
			resp, err := client.CommonAllPlayers(cmd.Context(), cfg.Shots.LeagueID, cfg.Shots.Season)
			if err != nil {
				log.Error().Err(err).Msg("commonallplayers")
				return err
			}
			if len(resp.Sets) == 0 {
				return fmt.Errorf("commonallplayers: %w", stats.ErrNoResultSets)
			}
			all := resp.Sets[0]

			var found stats.ResultSet
			if player != "" {
				found = all.Search(player, "DISPLAY_FIRST_LAST").Select("DISPLAY_FIRST_LAST", "PERSON_ID", "TEAM_ABBREVIATION")
			} else {
				found = all.Search(team, "TEAM_CITY", "TEAM_NAME", "TEAM_ABBREVIATION", "TEAM_CODE").
					Select("TEAM_ID", "TEAM_CITY", "TEAM_NAME", "TEAM_ABBREVIATION").
					Distinct()
			}
			return printSets(cmd.OutOrStdout(), []stats.ResultSet{found}, 0)
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "part of a player's name")
	cmd.Flags().StringVar(&team, "team", "", "part of a team's city, name or abbreviation")
	cmd.Flags().String("season", "2021-22", "stats Season")
	return cmd
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
