// Package tui implements the interactive theme preview.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themes/internal/themes"
	"github.com/opencode-ai/themes/internal/tui/components"
	"github.com/opencode-ai/themes/internal/tui/styles"
)

// Config controls the preview program.
type Config struct {
	Registry *themes.Registry
	Theme    string
	Logger   zerolog.Logger
}

// Run launches the preview program.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	width    int
	height   int
	registry *themes.Registry
	logger   zerolog.Logger
	name     string
	styles   styles.Styles
	view     viewID
	status   string
}

const (
	minWidth  = 60
	minHeight = 15
)

func newModel(cfg Config) (model, error) {
	if cfg.Registry == nil {
		return model{}, errors.New("theme registry is required")
	}
	m := model{
		registry: cfg.Registry,
		logger:   cfg.Logger,
		view:     viewSurfaces,
	}
	if err := m.load(cfg.Theme); err != nil {
		return model{}, err
	}
	return m, nil
}

func (m *model) load(name string) error {
	th, err := m.registry.Get(name)
	if err != nil {
		return err
	}
	m.name = th.Name
	m.styles = styles.BuildStyles(th)
	m.logger.Debug().Str("theme", th.Name).Msg("preview theme loaded")
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "1":
			m.view = viewSurfaces
		case "2":
			m.view = viewSyntax
		case "3":
			m.view = viewPlayers
		case "g", "tab":
			m.view = nextView(m.view)
		case "t":
			m.toggleVariant()
		case "n":
			m.cycleTheme()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *model) toggleVariant() {
	next, err := m.registry.Variant(m.name, !m.styles.Theme.IsDark())
	if err != nil {
		m.status = err.Error()
		return
	}
	if next == m.name {
		m.status = fmt.Sprintf("%s has no %s variant", m.name, variantLabel(!m.styles.Theme.IsDark()))
		return
	}
	m.switchTo(next)
}

func (m *model) cycleTheme() {
	names := m.registry.Names()
	for i, name := range names {
		if name == m.name {
			m.switchTo(names[(i+1)%len(names)])
			return
		}
	}
}

func (m *model) switchTo(name string) {
	if err := m.load(name); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("Theme preview: %s (%s)", m.name, variantLabel(m.styles.Theme.IsDark()))),
		"",
	}

	lines = append(lines, m.viewLines()...)

	if m.status != "" {
		lines = append(lines, "", m.styles.Warning.Render(m.status))
	}

	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: q quit | t dark/light | n next theme | g next view | 1/2/3 views"))

	body := strings.Join(lines, "\n")
	if m.width > 0 && m.height > 0 {
		body = m.styles.Canvas.Width(m.width).Height(m.height).Render(body)
	}
	return fmt.Sprintf("%s\n", body)
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

type viewID int

const (
	viewSurfaces viewID = iota
	viewSyntax
	viewPlayers
)

func nextView(current viewID) viewID {
	switch current {
	case viewSurfaces:
		return viewSyntax
	case viewSyntax:
		return viewPlayers
	default:
		return viewSurfaces
	}
}

func (m model) viewLines() []string {
	th := m.styles.Theme
	switch m.view {
	case viewSyntax:
		lines := []string{m.styles.Accent.Render("Syntax"), ""}
		for _, kind := range th.Syntax.Kinds() {
			lines = append(lines, components.SyntaxSample(m.styles, kind))
		}
		return lines
	case viewPlayers:
		lines := []string{m.styles.Accent.Render("Players"), ""}
		for _, id := range th.Player.IDs() {
			lines = append(lines, components.PlayerRow(m.styles, id, th.Player[id]))
		}
		return lines
	default:
		bgc := th.BackgroundColor
		return []string{
			m.styles.Accent.Render("Surfaces"),
			"",
			components.StateRow(m.styles, "background.100", bgc.L100),
			components.StateRow(m.styles, "background.300", bgc.L300),
			components.StateRow(m.styles, "background.500", bgc.L500),
			components.StateRow(m.styles, "background.on300", bgc.On300),
			components.StateRow(m.styles, "background.on500", bgc.On500),
			"",
			components.Swatch(m.styles, "text.primary", th.TextColor.Primary),
			components.Swatch(m.styles, "text.muted", th.TextColor.Muted),
			components.Swatch(m.styles, "border.primary", th.BorderColor.Primary),
			components.Swatch(m.styles, "line.active", th.Editor.Line.Active),
			components.Swatch(m.styles, "highlight.match", th.Editor.Highlight.Match),
			"",
			m.styles.Success.Render("ok") + "  " + m.styles.Warning.Render("warning") + "  " +
				m.styles.Error.Render("error") + "  " + m.styles.Info.Render("info"),
		}
	}
}

func variantLabel(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
