package maps

import (
	"errors"
	"testing"

	"stillnight/pkg/engine/world"
)

const sampleHub = `
hub:
  flags: [NO_MP_DRAIN]
  width: 4
  height: 4
  grid: [1, 1, 1, 1,
         1, 0, 3, 1,
         1, 0, 0, 1,
         1, 1, 1, 1]
  startX: 1
  startY: 2
  events:
    - {x: 1, y: 1, type: NPC, text: "Hello."}
`

func TestRegistry_ParseHub(t *testing.T) {
	reg := NewRegistry()
	if err := reg.ParseYAML([]byte(sampleHub)); err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	hub, err := reg.Get(HubName)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(hub.Flags) != 1 || hub.Flags[0] != FlagNoMPDrain {
		t.Errorf("Flags = %v, want [%s]", hub.Flags, FlagNoMPDrain)
	}
	if len(hub.Events) != 1 || hub.Events[0].Text != "Hello." {
		t.Errorf("Events = %+v", hub.Events)
	}

	tpl := hub.Template()
	if tpl.Start == nil || *tpl.Start != world.Pt(1, 2) {
		t.Errorf("Template start = %v, want 1,2", tpl.Start)
	}
	if tpl.Tiles[6] != world.TileStairs {
		t.Errorf("tile 6 = %d, want stairs", tpl.Tiles[6])
	}
}

func TestDef_ValidateGridSize(t *testing.T) {
	d := &Def{Name: "broken", Width: 3, Height: 3, Grid: []int{1, 1, 1}}
	if err := d.Validate(); err == nil {
		t.Error("short grid passed validation")
	}
}

func TestDef_ValidateEventBounds(t *testing.T) {
	d := &Def{Width: 2, Height: 1, Grid: []int{0, 0}, Events: []StaticEvent{{X: 2, Y: 0}}}
	if err := d.Validate(); err == nil {
		t.Error("out-of-bounds event passed validation")
	}
}

func TestDef_TemplateWithoutStart(t *testing.T) {
	d := &Def{Width: 2, Height: 1, Grid: []int{0, 0}}
	if d.Template().Start != nil {
		t.Error("Template start set without startX/startY")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	if _, err := NewRegistry().Get("town"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
