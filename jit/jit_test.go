package jit

import (
	"runtime"
	"testing"
)

func TestLookupTrap(t *testing.T) {
	code := &Code{Traps: []TrapEntry{
		{End: 0x100, Handler: 0xA},
		{End: 0x200, Handler: 0xB},
		{End: 0x300, Handler: 0xC},
	}}

	tests := []struct {
		ip      uintptr
		handler uintptr
		ok      bool
	}{
		{0x0, 0xA, true},
		{0xFF, 0xA, true},
		{0x100, 0xB, true}, // entry boundary is exclusive
		{0x2FF, 0xC, true},
		{0x300, 0, false},
		{0x1000, 0, false},
	}
	for _, tt := range tests {
		h, ok := code.LookupTrap(tt.ip)
		if ok != tt.ok || h != tt.handler {
			t.Errorf("LookupTrap(%#x) = %#x, %v; want %#x, %v", tt.ip, h, ok, tt.handler, tt.ok)
		}
	}
}

func TestNoopBackendDeclines(t *testing.T) {
	b := NewNoopBackend()
	if _, err := b.Compile(nil); err != ErrUnsupported {
		t.Errorf("Compile = %v, want ErrUnsupported", err)
	}
	if b.Name() != "none" {
		t.Errorf("Name = %q", b.Name())
	}
}

func TestCodeAllocator(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix allocator")
	}
	var a CodeAllocator
	buf, err := a.Alloc(100)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(buf) < 100 {
		t.Errorf("Alloc returned %d bytes", len(buf))
	}
	buf[0] = 0xC3 // writable
	if err := a.Free(buf); err != nil {
		t.Errorf("Free: %v", err)
	}
}
