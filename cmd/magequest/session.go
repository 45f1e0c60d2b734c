package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/platform/tui"
	"github.com/vovakirdan/magequest/internal/platform/window"
	"github.com/vovakirdan/magequest/internal/registry"
)

// session holds what every game command needs: the logger, the loaded
// config and the optional file watcher.
type session struct {
	cfg     config.QuestConfig
	logger  *log.Logger
	logFile io.Closer
	watcher *config.Watcher
}

// newLogger builds the CLI logger. Without a file logs are discarded since
// the terminal belongs to the game.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "magequest",
		Level:           lvl,
	})
	return logger, f, nil
}

func openSession() (*session, error) {
	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, logFile: logFile}

	s.cfg, err = config.Load(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}
	path := config.ResolvePath(flagConfig)
	logger.Info("config loaded", "path", path)

	if flagWatch {
		if path == "" {
			s.Close()
			return nil, errors.New("--watch needs a config file, none was found")
		}
		if s.watcher, err = config.Watch(path); err != nil {
			s.Close()
			return nil, err
		}
		logger.Info("watching config", "path", s.watcher.Path())
	}
	return s, nil
}

// Close stops the watcher and closes the log file.
func (s *session) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

func (s *session) reloads() <-chan config.Reload {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Reloads
}

// run creates the game and hands it to the chosen frontend.
func (s *session) run(id string, windowed bool) error {
	game, err := registry.Create(id, registry.Deps{Config: s.cfg, Logger: s.logger})
	if err != nil {
		return err
	}
	rc := runtimeConfig(flagFPS, flagSeed, time.Now())
	s.logger.Debug("runtime", "game", id, "fps", rc.TickRate, "seed", rc.Seed)

	if windowed {
		return window.Run(game, window.Options{
			Runtime: rc,
			Reloads: s.reloads(),
			Logger:  s.logger,
		})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.Run(game, tui.Options{
		Runtime: rc,
		Width:   width,
		Height:  height,
		Reloads: s.reloads(),
		Logger:  s.logger,
	})
}

// runtimeConfig fills in the tick rate and seed; a zero seed is replaced
// by one derived from now.
func runtimeConfig(fps int, seed int64, now time.Time) core.RuntimeConfig {
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	if seed == 0 {
		seed = now.UnixNano()
	}
	return core.RuntimeConfig{TickRate: fps, Seed: seed}
}

// playGame opens a session, runs one game and wraps any failure.
func playGame(id string, windowed bool) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.run(id, windowed); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}
	return nil
}
