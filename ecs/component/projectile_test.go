package component

import (
	"testing"

	"github.com/milk9111/slingshot/common"
)

func TestProjectileSlotsLaunchWraps(t *testing.T) {
	cases := []struct {
		name       string
		launches   int
		wantCursor int
		lastSlot   int
	}{
		{"one", 1, 1, 0},
		{"three", 3, 0, 2},
		{"four_overwrites_first", 4, 1, 0},
		{"seven", 7, 1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjectileSlots()
			last := -1
			for i := 0; i < c.launches; i++ {
				last = p.Launch(common.Vec(float64(i), 0), 1, 0, float64(i+1))
			}
			if p.Cursor() != c.wantCursor {
				t.Fatalf("cursor = %d, want %d", p.Cursor(), c.wantCursor)
			}
			if last != c.lastSlot {
				t.Fatalf("last slot = %d, want %d", last, c.lastSlot)
			}
			slot, _ := p.Slot(last)
			if !slot.Active || slot.Damage != float64(c.launches) {
				t.Fatalf("slot %d = %+v, want active with damage %d", last, slot, c.launches)
			}
		})
	}
}

func TestProjectileSlotsFourthLaunchKeepsOthers(t *testing.T) {
	p := NewProjectileSlots()
	for i := 0; i < 4; i++ {
		p.Launch(common.Vec(float64(10*(i+1)), 20), 1, 0, float64(i+1))
	}

	cases := []struct {
		slot       int
		wantX      float64
		wantDamage float64
	}{
		{0, 40, 4},
		{1, 20, 2},
		{2, 30, 3},
	}
	for _, c := range cases {
		s, _ := p.Slot(c.slot)
		if !s.Active || s.Pos != common.Vec(c.wantX, 20) || s.Damage != c.wantDamage {
			t.Fatalf("slot %d = %+v, want x %v damage %v", c.slot, s, c.wantX, c.wantDamage)
		}
	}
}

func TestProjectileSlotsDeactivateParks(t *testing.T) {
	p := NewProjectileSlots()
	i := p.Launch(common.Vec(100, 100), 3, 4, 5)
	p.Deactivate(i)
	p.Integrate(1)

	slot, _ := p.Slot(i)
	if slot.Active {
		t.Fatalf("slot still active")
	}
	if slot.Pos != common.OffScreen {
		t.Fatalf("slot at %v, want %v", slot.Pos, common.OffScreen)
	}
}
