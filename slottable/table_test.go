package slottable

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestHandleStability(tst *testing.T) {

	chk.PrintTitle("HandleStability")

	t := NewTable[float64](0)
	h := t.Create(3.0)
	if !t.Alive(h) {
		tst.Fatal("freshly created handle must be alive")
	}
	if !t.Destroy(h) {
		tst.Fatal("destroy of a live handle must succeed")
	}
	if t.Alive(h) {
		tst.Fatal("handle must be dead forever after destroy")
	}
	if t.Destroy(h) {
		tst.Fatal("destroying an already-dead handle must return false")
	}

	// slot reuse must bump generation
	h2 := t.Create(4.0)
	if h2.Index != h.Index {
		tst.Fatal("expected the freed slot to be reused")
	}
	if h2.Generation == h.Generation {
		tst.Fatal("reused slot must have a different generation")
	}
	if t.Alive(h) {
		tst.Fatal("stale handle must not match the reused slot")
	}
}

func TestNoAliasingAcrossDestroys(tst *testing.T) {

	chk.PrintTitle("NoAliasingAcrossDestroys")

	t := NewTable[int](0)
	a := t.Create(1)
	b := t.Create(2)
	c := t.Create(3)

	t.Destroy(b)
	t.Destroy(c)

	if !t.Alive(a) {
		tst.Fatal("destroying other handles must not affect an untouched handle")
	}
	v := t.Get(a)
	if v == nil || *v != 1 {
		tst.Fatal("untouched handle's payload must be unaffected")
	}
}

func TestGrowthAndCapacity(tst *testing.T) {

	chk.PrintTitle("GrowthAndCapacity")

	t := NewTable[int](0)
	chk.IntAssert(t.Capacity(), 0)

	t.Create(1)
	if t.Capacity() < growthFloor {
		tst.Fatalf("expected an empty table to grow by at least %d slots, got capacity %d", growthFloor, t.Capacity())
	}
	chk.IntAssert(t.AliveCount(), 1)
}

func TestInvalidHandleNeverMatches(tst *testing.T) {

	chk.PrintTitle("InvalidHandleNeverMatches")

	t := NewTable[int](4)
	if t.Alive(Invalid) {
		tst.Fatal("Invalid must never be alive")
	}
	if t.Get(Invalid) != nil {
		tst.Fatal("Get(Invalid) must return nil")
	}
	if t.Destroy(Invalid) {
		tst.Fatal("Destroy(Invalid) must return false")
	}
}

func TestEachTraversesInIndexOrder(tst *testing.T) {

	chk.PrintTitle("EachTraversesInIndexOrder")

	t := NewTable[int](0)
	var handles []Handle
	for i := 0; i < 5; i++ {
		handles = append(handles, t.Create(i))
	}
	t.Destroy(handles[1])
	t.Destroy(handles[3])

	var seen []uint16
	t.Each(func(h Handle, payload *int) {
		seen = append(seen, h.Index)
	})
	if len(seen) != 3 {
		tst.Fatalf("expected 3 live slots, got %d", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			tst.Fatal("Each must visit slots in increasing index order")
		}
	}
}
