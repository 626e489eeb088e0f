package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/themes/internal/themes"
	"github.com/opencode-ai/themes/internal/tui/styles"
)

func testStyles() styles.Styles {
	return styles.BuildStyles(themes.Solarized(true))
}

func TestEmptyStateRender(t *testing.T) {
	styleSet := testStyles()

	t.Run("basic empty state", func(t *testing.T) {
		es := EmptyState{
			Title: "No items found",
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "No items found") {
			t.Errorf("Expected title in output, got: %s", result)
		}
	})

	t.Run("empty state with subtitle", func(t *testing.T) {
		es := EmptyState{
			Title:    "No data",
			Subtitle: "Check back later",
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Check back later") {
			t.Errorf("Expected subtitle in output, got: %s", result)
		}
	})

	t.Run("empty state with suggestions", func(t *testing.T) {
		es := EmptyState{
			Title: "No themes",
			Suggestions: []Suggestion{
				{Command: "themes build --out dist", Description: "export"},
			},
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Get started") {
			t.Errorf("Expected 'Get started' header, got: %s", result)
		}
		if !strings.Contains(result, "themes build") {
			t.Errorf("Expected command in output, got: %s", result)
		}
	})
}

func TestEmptyStateRenderCompact(t *testing.T) {
	styleSet := testStyles()

	es := EmptyState{
		Title: "Empty",
		Suggestions: []Suggestion{
			{Command: "add item"},
		},
	}
	result := es.RenderCompact(styleSet)
	if !strings.Contains(result, "Try: add item") {
		t.Errorf("Expected suggestion hint in compact output, got: %s", result)
	}
}

func TestPrebuiltEmptyStates(t *testing.T) {
	styleSet := testStyles()

	tests := []struct {
		name     string
		es       EmptyState
		expected []string
	}{
		{
			name:     "EmptyUserThemes",
			es:       EmptyUserThemes([]string{"/tmp/a", "/tmp/b"}),
			expected: []string{"No user themes", "/tmp/a, /tmp/b", "themes build"},
		},
		{
			name:     "EmptyUserThemesNoPaths",
			es:       EmptyUserThemes(nil),
			expected: []string{"Only built-in themes"},
		},
		{
			name:     "EmptyThemesFiltered",
			es:       EmptyThemesFiltered("mono"),
			expected: []string{"No themes match 'mono'", "--filter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.es.Render(styleSet)
			for _, exp := range tt.expected {
				if !strings.Contains(result, exp) {
					t.Errorf("Expected %q in %s output, got: %s", exp, tt.name, result)
				}
			}
		})
	}
}
