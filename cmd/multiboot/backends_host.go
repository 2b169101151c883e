//go:build !gba

package main

// Host builds register the backends that make sense off the real
// target: a mapped register window for bring-up, and scripted fakes.
// Each import's init() registers its backend with pkg/link or
// pkg/firmware; main never references these packages directly.
import (
	_ "github.com/retrolink/multiboot/pkg/firmware/fake"
	_ "github.com/retrolink/multiboot/pkg/link/fake"
	_ "github.com/retrolink/multiboot/pkg/link/mmap"
)
