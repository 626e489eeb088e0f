package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themes/internal/themes"
)

func newTestModel(t *testing.T, name string) model {
	t.Helper()
	reg, err := themes.New(zerolog.Nop(), themes.WithoutUserThemes())
	require.NoError(t, err)

	m, err := newModel(Config{Registry: reg, Theme: name, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m model, key string) model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated.(model)
}

func TestNewModelRequiresRegistry(t *testing.T) {
	_, err := newModel(Config{Theme: "solarized-dark"})
	require.Error(t, err)
}

func TestNewModelUnknownTheme(t *testing.T) {
	reg, err := themes.New(zerolog.Nop(), themes.WithoutUserThemes())
	require.NoError(t, err)

	_, err = newModel(Config{Registry: reg, Theme: "nope"})
	require.ErrorIs(t, err, themes.ErrUnknownTheme)
}

func TestToggleVariant(t *testing.T) {
	m := newTestModel(t, "solarized-dark")

	m = press(t, m, "t")
	require.Equal(t, "solarized-light", m.name)
	require.Contains(t, m.View(), "solarized-light (light)")

	m = press(t, m, "t")
	require.Equal(t, "solarized-dark", m.name)
}

func TestCycleTheme(t *testing.T) {
	m := newTestModel(t, "solarized-light")

	m = press(t, m, "n")
	require.Equal(t, "solarized-dark", m.name)
}

func TestViewSwitching(t *testing.T) {
	m := newTestModel(t, "solarized-dark")
	require.Contains(t, m.View(), "background.100")

	m = press(t, m, "2")
	view := m.View()
	require.Contains(t, view, "keyword")
	require.Contains(t, view, "emphasis.strong")

	m = press(t, m, "g")
	require.Equal(t, viewPlayers, m.view)
	require.Contains(t, m.View(), "player 8")

	m = press(t, m, "g")
	require.Equal(t, viewSurfaces, m.view)
}

func TestSmallTerminal(t *testing.T) {
	m := newTestModel(t, "solarized-dark")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	view := updated.(model).View()

	require.True(t, strings.Contains(view, "Terminal too small (20x5)."))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "solarized-dark")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
