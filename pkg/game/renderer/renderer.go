// Package renderer turns the floor into glyphs for the text backends.
package renderer

import (
	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon = "@"
	IconWall   = "#"
	IconFloor  = "."
	IconStairs = ">"
	IconHidden = " "
)

// Default colors for floors whose visual block leaves them empty
const (
	DefaultFloorColor  = "#333333"
	DefaultWallColor   = "#1a1a1a"
	DefaultStairsColor = "#ffd700"
	PlayerColor        = "#00ff00"
)

// Glyph is one drawn map cell
type Glyph struct {
	Icon  string
	Color string // "#rrggbb"
	Style TextStyle
	Kind  entities.Kind // set for event cells
}

// CellGlyph returns the glyph for x/y. Unvisited cells are hidden unless
// revealAll is set. The player is drawn over everything else.
func CellGlyph(g *state.Game, x, y int, revealAll bool) Glyph {
	m := g.Map
	if !revealAll && !m.IsVisited(x, y) {
		return Glyph{Icon: IconHidden, Style: StyleHidden}
	}
	if m.PlayerPos() == world.Pt(x, y) {
		return Glyph{Icon: PlayerIcon, Color: PlayerColor, Style: StylePlayer}
	}
	if ev := m.EventAt(x, y); ev != nil {
		info := EventInfo(ev)
		return Glyph{Icon: info.Icon, Color: info.Color, Style: StyleEvent, Kind: ev.Kind()}
	}

	visual := m.Visuals()
	switch m.TileAt(x, y) {
	case world.TileFloor:
		return Glyph{Icon: IconFloor, Color: orDefault(visual.FloorColor, DefaultFloorColor), Style: StyleFloor}
	case world.TileStairs:
		return Glyph{Icon: IconStairs, Color: DefaultStairsColor, Style: StyleStairs}
	default:
		return Glyph{Icon: IconWall, Color: orDefault(visual.WallColor, DefaultWallColor), Style: StyleWall}
	}
}

// EventInfo picks display info from the event's visual type, falling back to its kind
func EventInfo(ev *entities.Event) entities.KindInfo {
	if v := ev.Visual(); v != nil && v.Type != "" {
		return entities.Kind(v.Type).Info()
	}
	return ev.Kind().Info()
}

// Legend lists the map symbols in display order
func Legend() [][2]string {
	out := [][2]string{
		{PlayerIcon, "player"},
		{IconFloor, "floor"},
		{IconWall, "wall"},
		{IconStairs, "stairs"},
	}
	for _, k := range append([]entities.Kind{entities.KindNPC}, entities.PlacementOrder...) {
		info := k.Info()
		out = append(out, [2]string{info.Icon, info.Name})
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
