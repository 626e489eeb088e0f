package theme

import (
	"sort"

	"github.com/opencode-ai/themes/internal/color"
)

// PlayerCount is the number of collaborator slots a theme must provide.
const PlayerCount = 8

const (
	playerCursorOpacity    = 1.0
	playerSelectionOpacity = 0.24
	playerBorderOpacity    = 0.8
)

// Player is the color bundle for one collaborator cursor.
type Player struct {
	BaseColor      color.Color `json:"baseColor" yaml:"baseColor"`
	CursorColor    color.Color `json:"cursorColor" yaml:"cursorColor"`
	SelectionColor color.Color `json:"selectionColor" yaml:"selectionColor"`
	BorderColor    color.Color `json:"borderColor" yaml:"borderColor"`
}

// Players maps player ids 1..PlayerCount to their colors.
type Players map[int]Player

// BuildPlayer derives a player bundle from one accent color.
func BuildPlayer(c color.Color) Player {
	return Player{
		BaseColor:      c,
		CursorColor:    color.WithOpacity(c, playerCursorOpacity),
		SelectionColor: color.WithOpacity(c, playerSelectionOpacity),
		BorderColor:    color.WithOpacity(c, playerBorderOpacity),
	}
}

// IDs returns the player ids in ascending order.
func (p Players) IDs() []int {
	ids := make([]int, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
