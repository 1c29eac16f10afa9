package recruit

import (
	"math/rand"
	"testing"
)

func sampleTable() *Table {
	return NewTable(
		Species{ID: "pixie", Name: "Pixie", BaseHP: 12, HPGrowth: 0.15, Cost: 100},
		Species{ID: "golem", Name: "Golem", BaseHP: 40, HPGrowth: 0.30, Cost: 400},
	)
}

func TestSpecies_MaxHPAt(t *testing.T) {
	pixie, _ := sampleTable().Get("pixie")
	cases := map[int]int{
		1: 12,
		3: 16, // 12 * 1.3 = 15.6
		5: 19, // 12 * 1.6 = 19.2
	}
	for level, want := range cases {
		if got := pixie.MaxHPAt(level); got != want {
			t.Errorf("MaxHPAt(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestGenerator_OneOrTwoOffersAtFloorLevel(t *testing.T) {
	g := NewGenerator(sampleTable(), rand.New(rand.NewSource(3)))
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		offers := g.Generate(4)
		if len(offers) < 1 || len(offers) > 2 {
			t.Fatalf("len(offers) = %d, want 1 or 2", len(offers))
		}
		seen[len(offers)] = true
		for _, o := range offers {
			if o.Level != 4 {
				t.Errorf("offer level = %d, want 4", o.Level)
			}
			if o.Species != "pixie" && o.Species != "golem" {
				t.Errorf("unexpected species %q", o.Species)
			}
		}
	}
	if !seen[1] || !seen[2] {
		t.Errorf("offer sizes seen = %v, want both 1 and 2", seen)
	}
}

func TestGenerator_EmptyTable(t *testing.T) {
	g := NewGenerator(NewTable(), rand.New(rand.NewSource(1)))
	if offers := g.Generate(1); offers != nil {
		t.Errorf("offers = %v, want nil", offers)
	}
}

func TestParseYAML(t *testing.T) {
	table, err := ParseYAML([]byte("lich: {name: Lich, baseHp: 35, hpGrowth: 0.28, cost: 600}\nimp: {baseHp: 5}\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	all := table.All()
	if len(all) != 2 || all[0].ID != "imp" || all[1].ID != "lich" {
		t.Fatalf("All = %+v, want imp then lich", all)
	}
	if all[0].Name != "imp" {
		t.Errorf("missing name = %q, want the id", all[0].Name)
	}
	if _, err := ParseYAML([]byte("ghost: {baseHp: 0}\n")); err == nil {
		t.Error("zero baseHp accepted")
	}
}
