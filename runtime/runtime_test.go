package runtime

import (
	"sync"
	"testing"
	"time"

	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

func TestMemoryGrowInPlace(t *testing.T) {
	m := NewMemory(wasm.MemoryType{Min: 1, Max: 3, HasMax: true})
	if m.PageCount() != 1 {
		t.Fatalf("initial pages = %d", m.PageCount())
	}

	old, ok := m.Grow(1)
	if !ok || old != 1 {
		t.Fatalf("grow = %d, %v", old, ok)
	}
	if m.SizeInBytes() != 2*PageSize {
		t.Fatalf("size = %d", m.SizeInBytes())
	}

	if _, ok := m.Grow(5); ok {
		t.Fatal("grow past max must fail")
	}
	if m.PageCount() != 2 {
		t.Fatal("failed grow changed the size")
	}
}

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory(wasm.MemoryType{Min: 1})
	if !m.Write(100, []byte{9, 8, 7}) {
		t.Fatal("write failed")
	}
	got, ok := m.Read(100, 3)
	if !ok || got[0] != 9 || got[2] != 7 {
		t.Fatalf("read = %v, %v", got, ok)
	}
	if _, ok := m.Read(PageSize-1, 2); ok {
		t.Fatal("cross-boundary read must fail")
	}
}

func TestSharedMemoryBufferStable(t *testing.T) {
	m := NewMemory(wasm.MemoryType{Min: 1, Max: 4, HasMax: true, Shared: true})
	before := &m.Bytes()[0]
	if _, ok := m.Grow(2); !ok {
		t.Fatal("grow failed")
	}
	if before != &m.Bytes()[0] {
		t.Fatal("shared memory buffer moved during grow")
	}
}

func TestTableOps(t *testing.T) {
	tb := NewTable(wasm.TableType{Elem: types.FuncRef(), Min: 2, Max: 4, HasMax: true}, nil)

	if tb.Size() != 2 {
		t.Fatalf("size = %d", tb.Size())
	}
	ref := types.I31(7)
	if !tb.Set(1, ref) {
		t.Fatal("set failed")
	}
	got, ok := tb.Get(1)
	if !ok || got != ref {
		t.Fatalf("get = %v, %v", got, ok)
	}
	if _, ok := tb.Get(2); ok {
		t.Fatal("out-of-range get must fail")
	}

	old, ok := tb.Grow(2, ref)
	if !ok || old != 2 {
		t.Fatalf("grow = %d, %v", old, ok)
	}
	if _, ok := tb.Grow(1, nil); ok {
		t.Fatal("grow past max must fail")
	}

	if !tb.Fill(0, 4, nil) {
		t.Fatal("fill failed")
	}
	if got, _ := tb.Get(3); got != nil {
		t.Fatal("fill did not clear")
	}
	if tb.Fill(3, 2, nil) {
		t.Fatal("out-of-range fill must fail")
	}
}

func TestSegmentsDrop(t *testing.T) {
	d := NewDataInstance([]byte{1, 2, 3})
	if len(d.Bytes()) != 3 {
		t.Fatal("bytes missing")
	}
	d.Drop()
	if len(d.Bytes()) != 0 {
		t.Fatal("drop did not empty the segment")
	}
	d.Drop() // idempotent

	e := NewElemInstance([]types.Reference{types.I31(1)})
	e.Drop()
	if len(e.Refs()) != 0 {
		t.Fatal("drop did not empty the element segment")
	}
}

func TestAtomicWaitNotify(t *testing.T) {
	mem := NewMemory(wasm.MemoryType{Min: 1, Max: 1, HasMax: true, Shared: true})

	// Not-equal short circuit.
	if got := AtomicWait(mem, 64, func() bool { return false }, -1); got != WaitNotEqual {
		t.Fatalf("wait = %v, want not-equal", got)
	}

	// Timeout path.
	if got := AtomicWait(mem, 64, func() bool { return true }, int64(10*time.Millisecond)); got != WaitTimedOut {
		t.Fatalf("wait = %v, want timed-out", got)
	}

	// Notify wakes a parked waiter.
	var wg sync.WaitGroup
	results := make(chan WaitResult, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results <- AtomicWait(mem, 128, func() bool { return true }, int64(5*time.Second))
	}()

	// Poll until the waiter is parked, then notify.
	woke := uint32(0)
	for i := 0; i < 1000 && woke == 0; i++ {
		time.Sleep(time.Millisecond)
		woke = AtomicNotify(mem, 128, 1)
	}
	wg.Wait()
	if woke != 1 {
		t.Fatalf("notify woke %d waiters", woke)
	}
	if got := <-results; got != WaitOK {
		t.Fatalf("waiter result = %v", got)
	}
}

func TestNotifyWithoutWaiters(t *testing.T) {
	mem := NewMemory(wasm.MemoryType{Min: 1, Shared: true, Max: 1, HasMax: true})
	if n := AtomicNotify(mem, 0, 10); n != 0 {
		t.Fatalf("notify = %d", n)
	}
}

func TestTrapError(t *testing.T) {
	trap := NewTrap(TrapIntegerDivideByZero)
	if trap.Error() != "wasm trap: integer divide by zero" {
		t.Errorf("message = %q", trap.Error())
	}
}
