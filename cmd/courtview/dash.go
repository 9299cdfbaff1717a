package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"courtview/internal/config"
	"courtview/internal/logging"
	"courtview/internal/stats"
)

var setTitleStyle = lipgloss.NewStyle().Bold(true)

func newDashCmd(configDir *string) *cobra.Command {
	var query []string
	var maxRows int
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Print a team's shot dashboard (teamdashptshots)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd, map[string]string{
				"shots.teamId": "team-id",
				"shots.season": "season",
				"logLevel":     "log-level",
			})
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
			defer closeLog()
			if err != nil {
				return err
			}

			p := stats.DefaultTeamDashParams()
			p.LeagueID = cfg.Shots.LeagueID
			p.Season = cfg.Shots.Season
			p.SeasonType = cfg.Shots.SeasonType
			p.TeamID = cfg.Shots.TeamID
			for _, q := range query {
				pairs, err := stats.ParseQuery(q)
				if err != nil {
					return err
				}
				for _, kv := range pairs {
					if err := p.Set(kv[0], kv[1]); err != nil {
						return err
					}
				}
			}

			client := stats.New(cfg.Stats.BaseURL, cfg.Stats.Timeout, log.Logger)
			resp, err := client.TeamDashPtShots(cmd.Context(), p)
			if err != nil {
				log.Error().Err(err).Str("team", p.TeamID).Msg("teamdashptshots")
				return err
			}
			return printSets(cmd.OutOrStdout(), resp.Sets, maxRows)
		},
	}
	cmd.Flags().StringArrayVarP(&query, "param", "p", nil, "extra Key=Value query parameters, repeatable")
	cmd.Flags().IntVar(&maxRows, "rows", 10, "maximum rows printed per result set (0 for all)")
	cmd.Flags().String("team-id", "0", "stats TeamID")
	cmd.Flags().String("season", "2021-22", "stats Season")
	return cmd
}

func printSets(out io.Writer, sets []stats.ResultSet, maxRows int) error {
	for _, rs := range sets {
		rows := rs.Rows
		if maxRows > 0 && len(rows) > maxRows {
			rows = rows[:maxRows]
		}
		t := table.New().Border(lipgloss.NormalBorder()).Headers(rs.Headers...)
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = stats.Text(v)
			}
			t.Row(cells...)
		}
		if _, err := fmt.Fprintf(out, "%s (%d rows)\n%s\n\n", setTitleStyle.Render(rs.Name), len(rs.Rows), t.Render()); err != nil {
			return err
		}
	}
	return nil
}
