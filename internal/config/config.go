package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"courtview/internal/court"
	"courtview/internal/geom"
	"courtview/internal/stats"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "courtview.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. COURTVIEW_COURT_COLOR.
const EnvPrefix = "COURTVIEW"

type Config struct {
	LogLevel string      `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string      `json:"logFile" mapstructure:"logFile"`
	Court    CourtConfig `json:"court" mapstructure:"court"`
	View     ViewConfig  `json:"view" mapstructure:"view"`
	Stats    StatsConfig `json:"stats" mapstructure:"stats"`
	Shots    ShotsConfig `json:"shots" mapstructure:"shots"`
}

// CourtConfig holds the court line style.
type CourtConfig struct {
	Color      string  `json:"color" mapstructure:"color"`
	LineWidth  float64 `json:"lineWidth" mapstructure:"lineWidth"`
	OuterLines bool    `json:"outerLines" mapstructure:"outerLines"`
}

// ViewConfig holds the initial axes limits.
type ViewConfig struct {
	XMin float64 `json:"xMin" mapstructure:"xMin"`
	XMax float64 `json:"xMax" mapstructure:"xMax"`
	YMin float64 `json:"yMin" mapstructure:"yMin"`
	YMax float64 `json:"yMax" mapstructure:"yMax"`
}

// StatsConfig holds stats client settings.
type StatsConfig struct {
	BaseURL       string        `json:"baseUrl" mapstructure:"baseUrl"`
	ScoreboardURL string        `json:"scoreboardUrl" mapstructure:"scoreboardUrl"`
	Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`
}

// ShotsConfig holds the default shotchartdetail query.
type ShotsConfig struct {
	LeagueID       string `json:"leagueId" mapstructure:"leagueId"`
	Season         string `json:"season" mapstructure:"season"`
	SeasonType     string `json:"seasonType" mapstructure:"seasonType"`
	ContextMeasure string `json:"contextMeasure" mapstructure:"contextMeasure"`
	PlayerID       string `json:"playerId" mapstructure:"playerId"`
	TeamID         string `json:"teamId" mapstructure:"teamId"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("court.color", court.DefaultColor)
	viper.SetDefault("court.lineWidth", court.DefaultLineWidth)
	viper.SetDefault("court.outerLines", false)

	viper.SetDefault("view.xMin", -300.0)
	viper.SetDefault("view.xMax", 300.0)
	viper.SetDefault("view.yMin", -100.0)
	viper.SetDefault("view.yMax", 500.0)

	viper.SetDefault("stats.baseUrl", stats.DefaultBaseURL)
	viper.SetDefault("stats.scoreboardUrl", stats.DefaultScoreboardURL)
	viper.SetDefault("stats.timeout", "30s")

	viper.SetDefault("shots.leagueId", "00")
	viper.SetDefault("shots.season", "2021-22")
	viper.SetDefault("shots.seasonType", stats.SeasonTypeRegular)
	viper.SetDefault("shots.contextMeasure", "FGA")
	viper.SetDefault("shots.playerId", "0")
	viper.SetDefault("shots.teamId", "0")
}

// Load sets defaults, reads the optional config file from configDir and
// applies environment overrides. A .env file in the working directory is
// loaded first when present.
func Load(configDir string) (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := filepath.Join(configDir, FileName)
	switch _, err := os.Stat(path); {
	case err == nil:
		viper.SetConfigFile(path)
		viper.SetConfigType("json")
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// CourtOptions converts the court section into drawing options.
func (c Config) CourtOptions() court.Options {
	return court.Options{
		Color:      c.Court.Color,
		LineWidth:  c.Court.LineWidth,
		OuterLines: c.Court.OuterLines,
	}
}

// Limits returns the view box.
func (v ViewConfig) Limits() geom.BBox {
	return geom.BBox{MinX: v.XMin, MinY: v.YMin, MaxX: v.XMax, MaxY: v.YMax}
}

// Params builds a shotchartdetail query from the shots section.
func (s ShotsConfig) Params() stats.ShotChartParams {
	p := stats.DefaultShotChartParams()
	p.LeagueID = s.LeagueID
	p.Season = s.Season
	p.SeasonType = s.SeasonType
	p.ContextMeasure = s.ContextMeasure
	p.PlayerID = s.PlayerID
	p.TeamID = s.TeamID
	return p
}
