package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
)

func defaultLoader() (*config.Config, error) {
	cfg := config.Defaults()
	cfg.Name = "panel"
	return &cfg, nil
}

// loaded returns a model that has processed one successful load.
func loaded(t *testing.T, load Loader) Model {
	t.Helper()
	m := New(load, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	updated, _ = updated.Update(loadScene(load)())
	model := updated.(Model)
	if model.err != nil {
		t.Fatalf("load failed: %v", model.err)
	}
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	m := New(defaultLoader, nil)
	if m.width != 80 || m.height != 24 {
		t.Errorf("default size = %dx%d, want 80x24", m.width, m.height)
	}
	if m.scene != nil {
		t.Error("scene loaded before Init")
	}
	if m.Init() == nil {
		t.Error("Init should return a non-nil command")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(defaultLoader, nil)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)

	if cmd != nil {
		t.Error("window size should not produce a command")
	}
	if model.width != 120 || model.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", model.width, model.height)
	}
	if model.layout.TooSmall {
		t.Error("120x40 should not be too small")
	}
}

func TestUpdate_SceneLoaded(t *testing.T) {
	m := loaded(t, defaultLoader)

	if m.scene == nil {
		t.Fatal("scene not set")
	}
	if m.reloads != 1 {
		t.Errorf("reloads = %d, want 1", m.reloads)
	}
	if !strings.Contains(m.preview, "┌") {
		t.Errorf("preview has no box drawing:\n%s", m.preview)
	}
}

func TestUpdate_CursorMovement(t *testing.T) {
	tests := []struct {
		name    string
		keys    []tea.KeyMsg
		wantRow int
		wantCol int
	}{
		{"no keys", nil, 0, 0},
		{"down", []tea.KeyMsg{runeKey('j')}, 1, 0},
		{"right arrow", []tea.KeyMsg{{Type: tea.KeyRight}}, 0, 1},
		{"up at top stays", []tea.KeyMsg{runeKey('k')}, 0, 0},
		{"left at edge stays", []tea.KeyMsg{{Type: tea.KeyLeft}}, 0, 0},
		{"clamped at bottom right", []tea.KeyMsg{
			runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j'),
			runeKey('l'), runeKey('l'), runeKey('l'),
		}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = loaded(t, defaultLoader)
			for _, k := range tt.keys {
				model, _ = model.Update(k)
			}
			row, col := model.(Model).Cursor()
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("cursor = (%d, %d), want (%d, %d)", row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestUpdate_CursorWithoutScene(t *testing.T) {
	m := New(defaultLoader, nil)
	updated, _ := m.Update(runeKey('j'))
	row, col := updated.(Model).Cursor()
	if row != 0 || col != 0 {
		t.Errorf("cursor moved without a scene: (%d, %d)", row, col)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := New(defaultLoader, nil)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := New(defaultLoader, nil)
	updated, _ := m.Update(runeKey('?'))
	if !updated.(Model).help.ShowAll {
		t.Error("? should show full help")
	}
	updated, _ = updated.Update(runeKey('?'))
	if updated.(Model).help.ShowAll {
		t.Error("second ? should hide full help")
	}
}

func TestUpdate_ReloadKey(t *testing.T) {
	m := loaded(t, defaultLoader)
	_, cmd := m.Update(runeKey('r'))
	if cmd == nil {
		t.Fatal("r should return a load command")
	}
	if _, ok := cmd().(sceneLoadedMsg); !ok {
		t.Error("reload command should produce sceneLoadedMsg")
	}
}

func TestUpdate_FailedReloadKeepsScene(t *testing.T) {
	fail := false
	load := func() (*config.Config, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return defaultLoader()
	}
	m := loaded(t, load)
	before := m.scene

	fail = true
	updated, _ := m.Update(loadScene(load)())
	model := updated.(Model)

	if model.Err() == nil || !strings.Contains(model.Err().Error(), "boom") {
		t.Errorf("err = %v, want boom", model.Err())
	}
	if model.scene != before {
		t.Error("failed reload replaced the scene")
	}
	if !strings.Contains(model.View(), "error: boom") {
		t.Error("view does not show the load error")
	}

	fail = false
	updated, _ = model.Update(loadScene(load)())
	if updated.(Model).Err() != nil {
		t.Error("successful reload did not clear the error")
	}
}

func TestUpdate_InvalidConfig(t *testing.T) {
	load := func() (*config.Config, error) {
		cfg := config.Defaults()
		cfg.Grid.Rows = 0
		return &cfg, nil
	}
	m := New(load, nil)
	updated, _ := m.Update(loadScene(load)())
	if updated.(Model).Err() == nil {
		t.Error("invalid config should set an error")
	}
}

func TestUpdate_ReloadClampsCursor(t *testing.T) {
	rows := 3
	load := func() (*config.Config, error) {
		cfg := config.Defaults()
		cfg.Grid.Rows = rows
		return &cfg, nil
	}
	var model tea.Model = loaded(t, load)
	model, _ = model.Update(runeKey('j'))
	model, _ = model.Update(runeKey('j'))

	rows = 1
	model, _ = model.Update(loadScene(load)())
	if row, _ := model.(Model).Cursor(); row != 0 {
		t.Errorf("cursor row = %d after shrinking to one row, want 0", row)
	}
}

func TestWaitForChange(t *testing.T) {
	if waitForChange(nil) != nil {
		t.Error("nil channel should disable watching")
	}

	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	if _, ok := waitForChange(ch)().(fileChangedMsg); !ok {
		t.Error("expected fileChangedMsg")
	}

	close(ch)
	if _, ok := waitForChange(ch)().(watchClosedMsg); !ok {
		t.Error("expected watchClosedMsg after close")
	}
}

func TestUpdate_FileChanged(t *testing.T) {
	ch := make(chan struct{}, 1)
	m := New(defaultLoader, ch)
	_, cmd := m.Update(fileChangedMsg{})
	if cmd == nil {
		t.Error("file change should trigger a reload")
	}
}

func TestView(t *testing.T) {
	m := loaded(t, defaultLoader)
	v := m.View()

	for _, want := range []string{"tftgrid", "panel", "320x240 px", "cell", "0,0", "rect", "(auto)", "reload"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := New(defaultLoader, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(Model).View(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestView_Warnings(t *testing.T) {
	load := func() (*config.Config, error) {
		cfg := config.Defaults()
		cfg.Grid.ColumnSizes = []config.ColumnSize{{Index: 0, Width: 300}, {Index: 1, Width: 100}}
		return &cfg, nil
	}
	m := loaded(t, load)
	if !strings.Contains(m.View(), "exceed") {
		t.Error("view does not show overflow warning")
	}
}
