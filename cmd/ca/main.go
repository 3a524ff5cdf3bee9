package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gridca/internal/app"
	"gridca/internal/core"
	"gridca/internal/render"
	_ "gridca/internal/sims/elementary"
	_ "gridca/internal/sims/forestfire"
	_ "gridca/internal/sims/life"
)

func main() {
	configPath := flag.String("config", "", "JSON run configuration (flags given after it override it)")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
		// Re-apply explicit flags on top of the file.
		fs := flag.NewFlagSet("overrides", flag.ExitOnError)
		cfg.Bind(fs)
		fs.String("config", "", "")
		if err := fs.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := core.NewSim(cfg.Sim, cfg.Params)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(core.Names(), ", "))
	}
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := app.New(sim, os.Stdout, cfg.TPS, cfg.Emoji)
	if err := runner.Header(); err != nil {
		log.Fatal(err)
	}
	if err := runner.Run(ctx, cfg.Steps); err != nil {
		log.Fatal(err)
	}

	if cfg.PNG != "" {
		if err := writeSnapshot(cfg.PNG, sim, cfg.Scale); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", cfg.PNG)
	}
}

func writeSnapshot(path string, sim core.Sim, scale int) error {
	p, ok := sim.(render.Paletted)
	if !ok {
		return fmt.Errorf("%s has no palette", sim.Name())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, p, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
