// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/modelview/base/errors"
	"cogentcore.org/modelview/events"
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/items"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
	"cogentcore.org/modelview/views"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// app is the bubbletea model of the demo. It owns the view and the
// model, and all of its mutations happen in Update.
type app struct {
	cfg   *Config
	view  views.View
	model models.Model

	// tree is the model when showing a tree, for appending children.
	tree *items.TreeModel[*items.Item]

	status        string
	width, height int
	added         int
}

var (
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// settingsMsg is sent when the settings file was written.
type settingsMsg struct {
	path string
}

// terminalSettings returns view settings in units of terminal cells.
func terminalSettings() views.Settings {
	se := views.Settings{}
	se.Defaults()
	se.RowHeight = 1
	se.ColWidth = 24
	se.IndentWidth = 2
	se.FlowCellWidth = 12
	se.FlowCellHeight = 1
	return se
}

// newModel returns the model and view for the given kind of view.
func newModel(kind string, rows int) (models.Model, views.View, error) {
	switch kind {
	case "list":
		its := make([]*items.Item, rows)
		for i := range its {
			its[i] = items.NewItem("file", fmt.Sprintf("Item %d", i), i%3 == 0)
		}
		return items.NewItemList(its...), views.NewListView(nil), nil
	case "flow":
		vals := make([]string, rows)
		for i := range vals {
			vals[i] = fmt.Sprintf("cell %d", i)
		}
		return items.NewStringList(vals...), views.NewFlowView(nil), nil
	case "table":
		m := items.NewStringTable(rows, 4)
		for r := 0; r < rows; r++ {
			for c := 0; c < 4; c++ {
				errors.Log(m.SetItemData(m.Index(r, c, models.Index{}), fmt.Sprintf("r%d c%d", r, c), models.DisplayRole))
			}
		}
		return m, views.NewTableView(nil), nil
	case "tree":
		m := items.NewItemTree(1)
		for g, n := 0, max(rows/5, 1); g < n; g++ {
			gidx, err := m.AppendRow(models.Index{}, items.NewItem("folder", fmt.Sprintf("Group %d", g), false))
			if err != nil {
				return nil, nil, err
			}
			id, _ := m.ID(gidx)
			for k := 0; k < 4; k++ {
				if _, err := m.AppendRow(m.IndexByID(id), items.NewItem("file", fmt.Sprintf("Leaf %d.%d", g, k), k == 0)); err != nil {
					return nil, nil, err
				}
			}
		}
		return m, views.NewTreeView(nil), nil
	}
	return nil, nil, fmt.Errorf("unknown view %q: must be list, table, flow or tree", kind)
}

func newApp(cfg *Config) (*app, error) {
	m, v, err := newModel(cfg.View, cfg.Rows)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, view: v, model: m}
	a.tree, _ = m.(*items.TreeModel[*items.Item])
	vb := v.AsViewBase()
	vb.Name = cfg.View
	vb.Settings = terminalSettings()
	if cfg.Settings != "" {
		if err := views.OpenSettings(&vb.Settings, cfg.Settings); err != nil {
			return nil, err
		}
	}
	vb.OnCurrentChanged(func(old, cur models.Index) {
		slog.Info("current changed", "old", old, "current", cur)
	})
	v.SetModel(m)
	vb.HandleEvent(events.NewBase(events.Focus))
	return a, nil
}

func (a *app) run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if a.cfg.Settings != "" {
		w, err := watchSettings(a.cfg.Settings, p.Send)
		if err != nil {
			return err
		}
		defer func() { errors.Log(w.Close()) }()
	}
	_, err := p.Run()
	return err
}

func (a *app) Init() tea.Cmd {
	return nil
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	vb := a.view.AsViewBase()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		vb.SetSize(math32.Vec2(float32(msg.Width), float32(max(msg.Height-1, 1))))
	case tea.KeyMsg:
		return a, a.key(msg)
	case tea.MouseMsg:
		a.mouse(msg)
	case tea.FocusMsg:
		vb.HandleEvent(events.NewBase(events.Focus))
	case tea.BlurMsg:
		vb.HandleEvent(events.NewBase(events.FocusLost))
	case settingsMsg:
		a.reloadSettings(msg.path)
	}
	return a, nil
}

var keyCodes = map[tea.KeyType]key.Codes{
	tea.KeyUp:     key.CodeUpArrow,
	tea.KeyDown:   key.CodeDownArrow,
	tea.KeyLeft:   key.CodeLeftArrow,
	tea.KeyRight:  key.CodeRightArrow,
	tea.KeyPgUp:   key.CodePageUp,
	tea.KeyPgDown: key.CodePageDown,
	tea.KeyHome:   key.CodeHome,
	tea.KeyEnd:    key.CodeEnd,
	tea.KeyEnter:  key.CodeReturnEnter,
	tea.KeySpace:  key.CodeSpacebar,
	tea.KeyEsc:    key.CodeEscape,
}

// key handles a key press: navigation keys go to the view, and
// letters edit the model.
func (a *app) key(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if code, ok := keyCodes[msg.Type]; ok {
		var mods key.Modifiers
		if msg.Alt {
			mods |= key.Alt
		}
		a.view.AsViewBase().HandleEvent(events.NewKey(code, mods))
		return nil
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return nil
	}
	var err error
	switch msg.Runes[0] {
	case 'q':
		return tea.Quit
	case 'i':
		err = a.insertRow()
	case 'd':
		err = a.removeRow()
	case 'K':
		err = a.moveRow(-1)
	case 'J':
		err = a.moveRow(1)
	case 'D':
		err = a.duplicateRow()
	case 'a':
		err = a.appendChild()
	case 'c':
		err = a.insertCol()
	case 'x':
		err = a.removeCol()
	case 't':
		if tv, ok := a.view.(*views.TreeView); ok {
			tv.Toggle(a.view.CurrentIndex())
		}
	case 'r':
		a.reloadSettings(a.cfg.Settings)
	}
	a.setError(err)
	return nil
}

// mouse translates a terminal mouse event into a view event.
func (a *app) mouse(msg tea.MouseMsg) {
	vb := a.view.AsViewBase()
	pos := math32.Vec2(float32(msg.X), float32(msg.Y))
	step := 3 * vb.Settings.RowHeight
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		vb.HandleEvent(events.NewScroll(pos, math32.Vec2(0, -step)))
	case msg.Button == tea.MouseButtonWheelDown:
		vb.HandleEvent(events.NewScroll(pos, math32.Vec2(0, step)))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		vb.HandleEvent(events.NewMouse(events.MouseDown, events.Left, pos))
	case msg.Action == tea.MouseActionRelease:
		vb.HandleEvent(events.NewMouse(events.MouseUp, events.Left, pos))
	}
}

func (a *app) setError(err error) {
	if err != nil {
		errors.Log(err)
		a.status = err.Error()
	}
}

// parent returns the parent of the current index.
func (a *app) parent() models.Index {
	cur := a.view.CurrentIndex()
	if !cur.IsValid() {
		return models.Index{}
	}
	return a.model.Parent(cur)
}

// insertRow inserts a row after the current one, or at the top if
// there is no current index, and makes it current.
func (a *app) insertRow() error {
	cur, parent := a.view.CurrentIndex(), a.parent()
	at := 0
	if cur.IsValid() {
		at = cur.Row() + 1
	}
	if err := a.model.InsertRows(at, 1, parent); err != nil {
		return err
	}
	// the current index has followed its row, so its parent is fresh
	parent = a.parent()
	idx := a.model.Index(at, 0, parent)
	a.added++
	if err := a.model.SetItemData(idx, fmt.Sprintf("new %d", a.added), models.DisplayRole); err != nil {
		return err
	}
	a.view.SetCurrentIndex(idx)
	a.view.AsViewBase().ScrollToIndex(idx)
	a.status = fmt.Sprintf("inserted row %d", at)
	return nil
}

func (a *app) removeRow() error {
	cur := a.view.CurrentIndex()
	if !cur.IsValid() {
		return nil
	}
	a.status = fmt.Sprintf("removed row %d", cur.Row())
	return a.model.RemoveRows(cur.Row(), 1, a.parent())
}

// moveRow moves the current row up or down by one.
func (a *app) moveRow(delta int) error {
	cur := a.view.CurrentIndex()
	if !cur.IsValid() {
		return nil
	}
	parent := a.parent()
	row := cur.Row()
	dst := row - 1
	if delta > 0 {
		if row+1 >= a.model.RowCount(parent) {
			return nil
		}
		dst = row + 2
	} else if row == 0 {
		return nil
	}
	if err := a.model.MoveRows(parent, row, parent, dst, 1); err != nil {
		return err
	}
	a.view.AsViewBase().ScrollToIndex(a.view.CurrentIndex())
	return nil
}

// duplicateRow duplicates the current row, for models that can.
func (a *app) duplicateRow() error {
	dm, ok := a.model.(interface{ DuplicateRows(at, count int) error })
	cur := a.view.CurrentIndex()
	if !ok || !cur.IsValid() {
		return nil
	}
	return dm.DuplicateRows(cur.Row(), 1)
}

// appendChild appends a child to the current row of a tree, and expands it.
func (a *app) appendChild() error {
	tv, ok := a.view.(*views.TreeView)
	cur := a.view.CurrentIndex()
	if a.tree == nil || !ok || !cur.IsValid() {
		return nil
	}
	a.added++
	if _, err := a.tree.AppendRow(cur, items.NewItem("file", fmt.Sprintf("child %d", a.added), false)); err != nil {
		return err
	}
	tv.SetExpanded(a.view.CurrentIndex(), true)
	return nil
}

func (a *app) insertCol() error {
	if !a.model.Capabilities().Has(models.ColEdits) {
		return nil
	}
	at := 0
	if cur := a.view.CurrentIndex(); cur.IsValid() {
		at = cur.Col() + 1
	}
	return a.model.InsertCols(at, 1, models.Index{})
}

func (a *app) removeCol() error {
	cur := a.view.CurrentIndex()
	if !cur.IsValid() || !a.model.Capabilities().Has(models.ColEdits) {
		return nil
	}
	return a.model.RemoveCols(cur.Col(), 1, models.Index{})
}

// reloadSettings reopens the given settings file and resyncs the view.
func (a *app) reloadSettings(path string) {
	if path == "" {
		return
	}
	vb := a.view.AsViewBase()
	se := vb.Settings
	if err := views.OpenSettings(&se, path); err != nil {
		a.setError(err)
		return
	}
	vb.Settings = se
	a.view.Resync()
	a.status = "settings reloaded"
	slog.Info("settings reloaded", "file", path)
}

// segment is the text of one companion on one line of the screen.
type segment struct {
	x, w int
	text string
	sel  bool
}

// cellText returns the text shown for the given companion,
// with an expansion marker for the rows of a tree.
func (a *app) cellText(c views.Companion) string {
	s := c.String()
	tv, ok := a.view.(*views.TreeView)
	idx := c.Index()
	if !ok || idx.Col() != 0 {
		return s
	}
	switch {
	case !a.model.HasChildren(idx):
		return "  " + s
	case tv.IsExpanded(idx):
		return "▾ " + s
	}
	return "▸ " + s
}

// fit truncates or pads the given text to the given width.
func fit(s string, w int) string {
	rs := []rune(s)
	if len(rs) >= w {
		return string(rs[:w])
	}
	return s + strings.Repeat(" ", w-len(rs))
}

func (a *app) View() string {
	vb := a.view.AsViewBase()
	h := int(vb.Size.Y)
	lines := make([][]segment, h)
	for _, c := range a.view.Visible() {
		box := c.Box().Translate(vb.Scroll.MulScalar(-1))
		y, x := int(box.Min.Y), max(int(box.Min.X), 0)
		w := min(int(box.Max.X), a.width) - x
		if y < 0 || y >= h || w <= 0 {
			continue
		}
		lines[y] = append(lines[y], segment{x: x, w: w, text: a.cellText(c), sel: c.IsSelected()})
	}
	var b strings.Builder
	for _, segs := range lines {
		slices.SortFunc(segs, func(s, t segment) int { return s.x - t.x })
		cursor := 0
		for _, sg := range segs {
			if sg.x < cursor {
				continue
			}
			b.WriteString(strings.Repeat(" ", sg.x-cursor))
			txt := fit(sg.text, sg.w)
			if sg.sel {
				txt = selectedStyle.Render(txt)
			}
			b.WriteString(txt)
			cursor = sg.x + sg.w
		}
		b.WriteByte('\n')
	}
	b.WriteString(a.statusLine())
	return b.String()
}

func (a *app) statusLine() string {
	cur := a.view.CurrentIndex()
	pos := "none"
	if cur.IsValid() {
		pos = fmt.Sprintf("%d,%d", cur.Row(), cur.Col())
	}
	s := fmt.Sprintf("%s  rows %d  current %s  [i]nsert [d]elete [J/K] move [q]uit", a.cfg.View, a.model.RowCount(models.Index{}), pos)
	if a.status != "" {
		return statusStyle.Render(s) + "  " + errorStyle.Render(a.status)
	}
	return statusStyle.Render(s)
}
