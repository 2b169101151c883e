package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/retrolink/multiboot"
	"github.com/retrolink/multiboot/pkg/config"
	monitorhttp "github.com/retrolink/multiboot/pkg/monitor/http"
)

// stdoutSink is the default telemetry.Sink: the write-only info/error/
// debug destination the core protocol treats as an external
// collaborator, here just the process's own stdout.
type stdoutSink struct{}

func (stdoutSink) Info(msg string)  { fmt.Println(msg) }
func (stdoutSink) Error(msg string) { fmt.Println(msg) }
func (stdoutSink) Debug(msg string) { fmt.Println(msg) }

func main() {
	configPath := flag.String("c", "", "ini config file path (optional; flags below override it)")
	linkBackend := flag.String("link", "", "link backend name (mmio, mmap, fake)")
	linkChannel := flag.String("channel", "", "link backend channel string")
	firmwareBackend := flag.String("firmware", "", "firmware backend name (bios, fake)")
	payloadPath := flag.String("payload", "", "path to the payload image")
	paletteData := flag.Int("palette", -1, "palette byte to offer (default 0x81, or config file value)")
	verbose := flag.Bool("v", false, "enable debug logging")
	monitorAddr := flag.String("monitor", "", "address to serve status JSON on (e.g. :8080); empty disables it")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Config{LinkBackend: "mmio", FirmwareBackend: "bios", PaletteData: 0x81}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *linkBackend != "" {
		cfg.LinkBackend = *linkBackend
	}
	if *linkChannel != "" {
		cfg.LinkChannel = *linkChannel
	}
	if *firmwareBackend != "" {
		cfg.FirmwareBackend = *firmwareBackend
	}
	if *payloadPath != "" {
		cfg.PayloadPath = *payloadPath
	}
	if *paletteData >= 0 {
		cfg.PaletteData = byte(*paletteData)
	}

	if cfg.PayloadPath == "" {
		fmt.Println("no payload path given (-payload or config file payload_path)")
		os.Exit(1)
	}

	var monitor *monitorhttp.Server
	if *monitorAddr != "" {
		monitor = monitorhttp.NewServer()
		go func() {
			if err := monitor.ListenAndServe(*monitorAddr); err != nil {
				log.WithError(err).Error("status monitor stopped")
			}
		}()
	}

	session, err := multiboot.NewSession(multiboot.Options{
		LinkBackend:     cfg.LinkBackend,
		LinkChannel:     cfg.LinkChannel,
		FirmwareBackend: cfg.FirmwareBackend,
		Sink:            stdoutSink{},
		Monitor:         monitor,
	})
	if err != nil {
		fmt.Printf("could not start session: %v\n", err)
		os.Exit(1)
	}

	if err := session.Run(cfg.PayloadPath, cfg.PaletteData); err != nil {
		fmt.Printf("multiboot failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("multiboot succeeded")
}
