// Package config reads host-side settings from an ini file: which link
// and firmware backends to use, the channel string to pass the link
// backend, and the palette byte to offer during negotiation. Parsing
// uses gopkg.in/ini.v1's section/key reading.
package config

import (
	"fmt"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds one multiboot session's backend selection and defaults.
type Config struct {
	LinkBackend     string
	LinkChannel     string
	FirmwareBackend string
	PaletteData     byte
	PayloadPath     string
}

const section = "multiboot"

// defaults mirror the parameter block's own documented defaults where
// applicable (palette_data 0x81) and the production backend names
// otherwise.
func defaults() Config {
	return Config{
		LinkBackend:     "mmio",
		FirmwareBackend: "bios",
		PaletteData:     0x81,
	}
}

// Load reads path as an ini file and returns the resulting Config. Keys
// absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := defaults()

	f, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	sec := f.Section(section)

	if k, err := sec.GetKey("link_backend"); err == nil && k.String() != "" {
		cfg.LinkBackend = k.String()
	}
	if k, err := sec.GetKey("link_channel"); err == nil {
		cfg.LinkChannel = k.String()
	}
	if k, err := sec.GetKey("firmware_backend"); err == nil && k.String() != "" {
		cfg.FirmwareBackend = k.String()
	}
	if k, err := sec.GetKey("payload_path"); err == nil {
		cfg.PayloadPath = k.String()
	}
	if k, err := sec.GetKey("palette_data"); err == nil && k.String() != "" {
		v, perr := strconv.ParseUint(k.String(), 0, 8)
		if perr != nil {
			return Config{}, fmt.Errorf("config: parsing palette_data: %w", perr)
		}
		cfg.PaletteData = byte(v)
	}

	return cfg, nil
}
