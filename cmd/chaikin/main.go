package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaikin/audio"
	"github.com/lixenwraith/chaikin/config"
	"github.com/lixenwraith/chaikin/demo"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "chaikin: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies defaults, then the YAML file, then any flag set explicitly
func loadConfig(args []string) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("chaikin", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML config file")
	debugFlag := fs.Bool("debug", false, "Write debug log to logs/chaikin.log")

	defaults := config.Default()
	fs.Int("max-steps", defaults.MaxSteps, "Final subdivision step")
	fs.Duration("step-interval", defaults.StepInterval, "Delay between animation steps")
	fs.String("loop-policy", defaults.LoopPolicy, "After the final step: wrap, reset or hold")
	fs.Float64("hit-radius", defaults.HitRadius, "Grab distance for existing points, in dots")
	fs.Duration("message-duration", defaults.MessageDuration, "How long advisories stay visible")
	fs.Bool("sound", defaults.Sound, "Play a chime per step")
	fs.String("export-dir", defaults.ExportDir, "Directory for exported PNG frames")
	fs.Int("export-scale", defaults.ExportScale, "Pixels per dot in exported frames")
	fs.Bool("closed", defaults.StartClosed, "Start in closed polygon mode")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, false, err
		}
		cfg = loaded
	}

	var overrideErr error
	fs.Visit(func(f *flag.Flag) {
		if overrideErr != nil || f.Name == "config" || f.Name == "debug" {
			return
		}
		overrideErr = cfg.Override(f.Name, f.Value.String())
	})
	if overrideErr != nil {
		return nil, false, overrideErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, *debugFlag, nil
}

func run(args []string) error {
	cfg, debugMode, err := loadConfig(args)
	if err != nil {
		return err
	}

	if logFile := setupLogging(debugMode); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Config: steps=%d interval=%v policy=%s closed=%v", cfg.MaxSteps, cfg.StepInterval, cfg.LoopPolicy, cfg.StartClosed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mCHAIKIN CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}

	// Restore the terminal even if the main loop panics
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	var sound demo.Sound
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	app, err := demo.New(screen, cfg, nil, sound)
	if err != nil {
		return err
	}
	app.SetCrashHandler(crash)
	app.Run()

	log.Printf("Exiting")
	return nil
}
