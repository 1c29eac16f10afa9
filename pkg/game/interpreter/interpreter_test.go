package interpreter

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/entities"
)

// recorder is a Handler that records calls
type recorder struct {
	calls []string
	gold  int
	fail  string
	inner func() error
}

func (r *recorder) record(name string) error {
	r.calls = append(r.calls, name)
	if r.inner != nil {
		if err := r.inner(); err != nil {
			return err
		}
	}
	if r.fail == name {
		return errors.New("boom")
	}
	return nil
}

func (r *recorder) Battle(troop []string) error { return r.record("battle:" + strings.Join(troop, ",")) }
func (r *recorder) Gold(amount int) error {
	r.gold += amount
	return r.record("gold")
}

func (r *recorder) Shop(stock []entities.StockEntry) error { return r.record("shop") }
func (r *recorder) Recruit(offers []entities.Recruit) error { return r.record("recruit") }
func (r *recorder) Shrine() error { return r.record("shrine") }
func (r *recorder) Trap() error { return r.record("trap") }
func (r *recorder) Message(text string) error { return r.record("message:" + text) }
func (r *recorder) Log(text string) error { return r.record("log:" + text) }
func (r *recorder) GiveItem(id string, amount int) error { return r.record("give:" + id) }

type eraseCounter struct{ n int }

func (e *eraseCounter) EraseEvent(ev *entities.Event) {
	e.n++
	ev.Erase()
}

func TestRun_ExecutesInOrderAndErases(t *testing.T) {
	rec := &recorder{}
	er := &eraseCounter{}
	ev := entities.NewEvent(world.Pt(1, 1), entities.Data{Commands: []entities.Command{
		entities.Battle([]string{"goblin", "pixie"}),
		entities.Erase(),
	}})
	if err := New(rec, er, zerolog.Nop()).Run(ev); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "battle:goblin,pixie" {
		t.Errorf("calls = %v", rec.calls)
	}
	if er.n != 1 || !ev.IsErased() {
		t.Errorf("erase count = %d, erased = %v", er.n, ev.IsErased())
	}
}

func TestRun_ErasedEventIsNoop(t *testing.T) {
	rec := &recorder{}
	ev := entities.NewEvent(world.Pt(1, 1), entities.Data{Commands: []entities.Command{entities.Gold(10)}})
	ev.Erase()
	if err := New(rec, nil, zerolog.Nop()).Run(ev); err != nil {
		t.Fatal(err)
	}
	if rec.gold != 0 {
		t.Errorf("gold = %d, want 0", rec.gold)
	}
}

func TestRun_UnknownCodeSkipped(t *testing.T) {
	rec := &recorder{}
	ev := entities.NewEvent(world.Pt(1, 1), entities.Data{Commands: []entities.Command{
		{Code: "WAIT"},
		entities.Message("hi"),
	}})
	if err := New(rec, nil, zerolog.Nop()).Run(ev); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "message:hi" {
		t.Errorf("calls = %v, want [message:hi]", rec.calls)
	}
}

func TestRun_HandlerErrorStops(t *testing.T) {
	rec := &recorder{fail: "gold"}
	ev := entities.NewEvent(world.Pt(1, 1), entities.Data{Commands: []entities.Command{
		entities.Gold(5),
		entities.Erase(),
	}})
	err := New(rec, nil, zerolog.Nop()).Run(ev)
	if err == nil {
		t.Fatal("Run returned nil, want the handler error")
	}
	if ev.IsErased() {
		t.Error("event erased after a failed command")
	}
}

func TestRun_NestedRunIsRejected(t *testing.T) {
	rec := &recorder{}
	in := New(rec, nil, zerolog.Nop())
	other := entities.NewEvent(world.Pt(2, 2), entities.Data{Commands: []entities.Command{entities.Shrine()}})
	var nested error
	rec.inner = func() error {
		rec.inner = nil
		nested = in.Run(other)
		return nil
	}
	ev := entities.NewEvent(world.Pt(1, 1), entities.Data{Commands: []entities.Command{entities.Trap()}})
	if err := in.Run(ev); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(nested, ErrBusy) {
		t.Errorf("nested Run = %v, want ErrBusy", nested)
	}
}
