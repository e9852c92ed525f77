//go:build unix

package jit

import (
	"golang.org/x/sys/unix"
)

// CodeAllocator hands out executable memory for backend output.
type CodeAllocator struct{}

// Alloc maps a read/write/exec region big enough for size bytes, rounded
// to whole pages.
func (CodeAllocator) Alloc(size int) ([]byte, error) {
	pageSize := unix.Getpagesize()
	n := (size + pageSize - 1) &^ (pageSize - 1)
	return unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}

// Free unmaps a buffer returned by Alloc.
func (CodeAllocator) Free(buf []byte) error {
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}
