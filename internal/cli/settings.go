package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/faizmokh/masa/internal/config"
	"github.com/faizmokh/masa/internal/files"
	"github.com/faizmokh/masa/internal/logbook"
)

// settings collects flag values shared by every command.
type settings struct {
	configPath   string
	dataFile     string
	logFile      string
	resetCorrupt bool
}

// environment is everything a command needs once flags and config are merged.
type environment struct {
	cfg     config.Config
	manager *files.Manager
	store   *logbook.Store
	logger  *slog.Logger
	logOut  io.Closer
}

// Close releases the log file, if one was opened.
func (e *environment) Close() error {
	if e.logOut == nil {
		return nil
	}
	return e.logOut.Close()
}

// resolve merges the config file with flag overrides.
func (s *settings) resolve() (config.Config, error) {
	path := s.configPath
	if path == "" {
		var err error
		path, err = files.ResolveConfigPath()
		if err != nil {
			// Without a config dir there is simply no config file.
			path = ""
		}
	} else {
		expanded, err := files.ExpandHome(path)
		if err != nil {
			return config.Config{}, err
		}
		path = expanded
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if s.dataFile != "" {
		cfg.DataFile = s.dataFile
	}
	if s.logFile != "" {
		cfg.LogFile = s.logFile
	}
	return cfg, nil
}

func (s *settings) open() (*environment, error) {
	cfg, err := s.resolve()
	if err != nil {
		return nil, err
	}

	logger, closer, err := openLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	manager, err := files.NewManager(cfg.DataFile)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	logger.Debug("resolved data file", "path", manager.Path())

	return &environment{
		cfg:     cfg,
		manager: manager,
		store:   logbook.NewStore(manager, logger),
		logger:  logger,
		logOut:  closer,
	}, nil
}

func openLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	expanded, err := files.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f, nil
}
