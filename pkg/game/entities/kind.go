// Package entities contains the interactive objects placed on dungeon floors.
package entities

// Kind identifies what an event represents on the map
type Kind string

const (
	KindNPC      Kind = "NPC"      // Static character, talks when approached
	KindEnemy    Kind = "ENEMY"    // Starts a battle, then disappears
	KindTreasure Kind = "TREASURE" // Grants gold
	KindShop     Kind = "SHOP"     // Opens a shop
	KindRecruit  Kind = "RECRUIT"  // Offers creatures to join the party, stays until used
	KindShrine   Kind = "SHRINE"   // Restores the party
	KindTrap     Kind = "TRAP"     // Damages the party
)

// KindInfo contains display information for each kind
type KindInfo struct {
	Name string
	Icon string
	// Color is a "#rrggbb" hint for text renderers
	Color string
}

// Kinds maps event kinds to their display information
var Kinds = map[Kind]KindInfo{
	KindNPC:      {Name: "Stranger", Icon: "N", Color: "#e0e0ff"},
	KindEnemy:    {Name: "Enemy", Icon: "E", Color: "#ff5555"},
	KindTreasure: {Name: "Treasure", Icon: "$", Color: "#ffd700"},
	KindShop:     {Name: "Shop", Icon: "S", Color: "#55ff55"},
	KindRecruit:  {Name: "Wanderer", Icon: "R", Color: "#55ffff"},
	KindShrine:   {Name: "Shrine", Icon: "+", Color: "#ffffff"},
	KindTrap:     {Name: "Trap", Icon: "^", Color: "#ff8800"},
}

// Info returns the display information for k, with a fallback for unknown kinds
func (k Kind) Info() KindInfo {
	if info, ok := Kinds[k]; ok {
		return info
	}
	return KindInfo{Name: string(k), Icon: "?", Color: "#aaaaaa"}
}

// PlacementOrder is the order in which random floor events are placed
var PlacementOrder = []Kind{
	KindEnemy,
	KindTreasure,
	KindShop,
	KindRecruit,
	KindShrine,
	KindTrap,
}
