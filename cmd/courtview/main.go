package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"courtview/internal/chart"
	"courtview/internal/config"
	"courtview/internal/logging"
	"courtview/internal/plot"
	"courtview/internal/shots"
	"courtview/internal/stats"
	"courtview/internal/tui"
)

type rootFlags struct {
	configDir string
	svg       string
	ascii     bool
	fetch     bool
	width     int
	height    int
	svgWidth  int
	svgHeight int
}

// svgSize picks the SVG pixel size. --width and --height size the SVG only
// when no text output shares them.
func (f rootFlags) svgSize() (int, int) {
	w, h := f.svgWidth, f.svgHeight
	if !f.ascii {
		if w <= 0 {
			w = f.width
		}
		if h <= 0 {
			h = f.height
		}
	}
	return w, h
}

const (
	defaultASCIIWidth  = 80
	defaultASCIIHeight = 40
	defaultSVGWidth    = 1000
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:          "courtview [shots-file]",
		Short:        "Basketball half-court shot charts in the terminal",
		Long:         "courtview draws a regulation half court and overlays shots from a CSV file, a saved stats response, or the stats API.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	fl := cmd.PersistentFlags()
	fl.StringVarP(&f.configDir, "config", "c", ".", "directory containing "+config.FileName)
	cmd.Flags().StringVar(&f.svg, "svg", "", "write the chart to an SVG file and exit")
	cmd.Flags().BoolVar(&f.ascii, "ascii", false, "print the chart as braille text and exit")
	cmd.Flags().BoolVar(&f.fetch, "fetch", false, "fetch shots from the stats API using the shots.* settings")
	cmd.Flags().IntVar(&f.width, "width", 0, "output width (cells for --ascii, pixels for --svg alone)")
	cmd.Flags().IntVar(&f.height, "height", 0, "output height (cells for --ascii, pixels for --svg alone)")
	cmd.Flags().IntVar(&f.svgWidth, "svg-width", 0, "SVG width in pixels")
	cmd.Flags().IntVar(&f.svgHeight, "svg-height", 0, "SVG height in pixels (default keeps the view aspect)")

	cmd.Flags().Bool("outer-lines", false, "draw the baseline, sidelines and half-court line")
	cmd.Flags().String("color", "black", "court line color")
	cmd.Flags().Float64("line-width", 2, "court line width")
	fl.String("log-level", "info", "log level: trace, debug, info, warn, error, none")
	cmd.Flags().String("player-id", "0", "stats PlayerID for --fetch")
	cmd.Flags().String("team-id", "0", "stats TeamID for --fetch")
	cmd.Flags().String("season", "2021-22", "stats Season for --fetch")

	cmd.AddCommand(
		newDashCmd(&f.configDir),
		newPlayByPlayCmd(&f.configDir),
		newBoxScoreCmd(&f.configDir),
		newVideoCmd(&f.configDir),
		newScoreboardCmd(&f.configDir),
		newLookupCmd(&f.configDir),
	)
	return cmd
}

var rootBindings = map[string]string{
	"court.outerLines": "outer-lines",
	"court.color":      "color",
	"court.lineWidth":  "line-width",
	"logLevel":         "log-level",
	"shots.playerId":   "player-id",
	"shots.teamId":     "team-id",
	"shots.season":     "season",
}

// bindFlags lets flags override the config keys they are mapped to. Call it
// from the running command only: viper keeps one binding per key.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			_ = viper.BindPFlag(key, flag)
		}
	}
}

func headless(f rootFlags) bool {
	return f.svg != "" || f.ascii || !isatty.IsTerminal(os.Stdout.Fd())
}

func run(cmd *cobra.Command, f rootFlags, args []string) error {
	bindFlags(cmd, rootBindings)
	cfg, err := config.Load(f.configDir)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Interactive: !headless(f)})
	defer closeLog()
	if err != nil {
		return err
	}

	client := stats.New(cfg.Stats.BaseURL, cfg.Stats.Timeout, log.Logger)

	var set shots.Set
	switch {
	case len(args) == 1:
		set, err = shots.Load(args[0])
	case f.fetch:
		set, err = fetch(cmd, client, cfg.Shots.Params())
	}
	if err != nil {
		log.Error().Err(err).Msg("loading shots")
		return err
	}

	if !headless(f) {
		opts := tui.Options{
			Court:   cfg.CourtOptions(),
			Limits:  cfg.View.Limits(),
			Params:  cfg.Shots.Params(),
			Fetcher: client,
			Timeout: cfg.Stats.Timeout,
			Log:     log.Logger,
		}
		m := tui.NewWithShots(opts, set)
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
		return err
	}

	ax := chart.Build(set, chart.Options{Court: cfg.CourtOptions(), Layers: chart.AllLayers(), Limits: cfg.View.Limits()})
	if f.svg != "" {
		w, h := f.svgSize()
		if err := writeSVG(f.svg, ax, w, h); err != nil {
			log.Error().Err(err).Str("path", f.svg).Msg("export svg")
			return err
		}
		log.Info().Str("path", f.svg).Int("shots", set.Len()).Msg("svg written")
		if !f.ascii {
			return nil
		}
	}
	return writeASCII(cmd.OutOrStdout(), ax, f.width, f.height)
}

func fetch(cmd *cobra.Command, client *stats.Client, p stats.ShotChartParams) (shots.Set, error) {
	resp, err := client.ShotChartDetail(cmd.Context(), p)
	if err != nil {
		return shots.Set{}, fmt.Errorf("fetch shots: %w", err)
	}
	set, err := shots.FromResponse(resp)
	if err != nil {
		return shots.Set{}, fmt.Errorf("fetch shots: %w", err)
	}
	set.Source = "shotchartdetail " + p.Season
	return set, nil
}

func writeSVG(path string, ax *plot.Axes, w, h int) error {
	if w <= 0 {
		w = defaultSVGWidth
	}
	if h <= 0 {
		b := ax.Limits()
		h = w
		if b.Valid() {
			h = max(1, int(float64(w)*b.Height()/b.Width()))
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.WriteSVG(f, ax, w, h); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

func writeASCII(out io.Writer, ax *plot.Axes, w, h int) error {
	if w <= 0 {
		w = defaultASCIIWidth
	}
	if h <= 0 {
		h = defaultASCIIHeight
	}
	r := plot.Rasterize(ax, plot.View{Zoom: 1}, w, h)
	_, err := fmt.Fprintln(out, strings.Join(r.Lines(), "\n"))
	return err
}
