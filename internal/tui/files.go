package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"courtview/internal/plot"
	"courtview/internal/shots"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !shots.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: filepath.Ext(name), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no shot files in " + m.cwd
	}
}

// loadPath loads a shot file into the model.
func (m *Model) loadPath(p string) {
	set, err := shots.Load(p)
	if err != nil {
		m.log.Warn().Err(err).Str("path", p).Msg("load shots")
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setShots(set)
	m.status = "loaded: " + filepath.Base(p) + "  " + m.summary()
}

// setShots replaces the data set and resets the view so the whole court is
// visible.
func (m *Model) setShots(set shots.Set) {
	m.set = set
	m.view = plot.View{Zoom: 1}
	m.hoverShot = -1
	m.inspectPopup = ""
	m.layers.Made, m.layers.Missed = true, true
	m.log.Debug().Str("source", set.Source).Int("shots", set.Len()).Msg("shots loaded")
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m Model) summary() string {
	return fmt.Sprintf("shots=%d made=%d fg=%.1f%%", m.set.Len(), len(m.set.Made()), m.set.FieldGoalPct()*100)
}
