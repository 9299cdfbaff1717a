package tui

import (
	"context"
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"courtview/internal/chart"
	"courtview/internal/court"
	"courtview/internal/geom"
	"courtview/internal/plot"
	"courtview/internal/shots"
	"courtview/internal/stats"
)

// ShotFetcher fetches shotchartdetail responses. *stats.Client implements it.
type ShotFetcher interface {
	ShotChartDetail(ctx context.Context, p stats.ShotChartParams) (*stats.Response, error)
}

// Options configure a new viewer.
type Options struct {
	Court   court.Options
	Limits  geom.BBox
	Params  stats.ShotChartParams
	Fetcher ShotFetcher
	Timeout time.Duration
	Dir     string
	Log     zerolog.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	view plot.View

	status string
	log    zerolog.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	set       shots.Set
	courtOpts court.Options
	limits    geom.BBox

	// layer visibility
	layers chart.Layers

	// query mode
	queryMode bool
	ta        textarea.Model
	params    stats.ShotChartParams
	fetcher   ShotFetcher
	timeout   time.Duration
	fetching  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverPos   [2]float64
	hoverHasXY bool
	hoverShot  int

	// shot table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		view:        plot.View{Zoom: 1},
		status:      "courtview ready",
		log:         opts.Log,
		courtOpts:   opts.Court,
		limits:      opts.Limits,
		layers:      chart.AllLayers(),
		params:      opts.Params,
		fetcher:     opts.Fetcher,
		timeout:     opts.Timeout,
		hoverShot:   -1,
		cwd:         opts.Dir,
	}
	if !m.limits.Valid() {
		m.limits = chart.DefaultLimits()
	}
	if m.timeout <= 0 {
		m.timeout = 30 * time.Second
	}
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Shot files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// query box setup
	m.ta = textarea.New()
	m.ta.Placeholder = "PlayerID=201939 Season=2021-22 SeasonType=Regular+Season. Enter to fetch; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithShots starts the viewer on an already loaded set.
func NewWithShots(opts Options, set shots.Set) Model {
	m := New(opts)
	m.setShots(set)
	if shots.Supported(set.Source) {
		m.selPath = set.Source
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Shots returns the loaded shot set.
func (m Model) Shots() shots.Set { return m.set }

func (m Model) axes() *plot.Axes {
	return chart.Build(m.set, chart.Options{Court: m.courtOpts, Layers: m.layers, Limits: m.limits})
}
