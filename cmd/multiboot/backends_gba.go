//go:build gba

package main

// Real-target builds register the production backends. Each import's
// init() registers its backend with pkg/link or pkg/firmware; main
// never references these packages directly.
import (
	_ "github.com/retrolink/multiboot/pkg/firmware/bios"
	_ "github.com/retrolink/multiboot/pkg/link/mmio"
)
