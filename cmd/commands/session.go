package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flavono123/jsonsketch/internal/config"
	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/logging"
	"github.com/flavono123/jsonsketch/internal/store"
)

// Options are the persistent flags shared by every command.
type Options struct {
	ConfigPath string
	DataDir    string
	Ephemeral  bool
	LogLevel   string

	// Clipboard and KV replace the system clipboard and the state file.
	Clipboard editor.Clipboard
	KV        store.KV
}

type session struct {
	cfg    *config.Config
	editor *editor.Editor
	logger logging.Logger

	logCloser io.Closer
}

// openSession loads the config, sets up logging and opens the editor.
// Interactive sessions log to a file, if any, since the UI owns the terminal.
func openSession(opts *Options, interactive bool) (*session, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logCloser, err := logging.Setup(logOptions(opts, cfg, interactive))
	if err != nil {
		return nil, err
	}
	logger := logging.New("jsonsketch")

	kv, err := openKV(opts, cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	e := editor.Open(kv, editor.Options{
		Clipboard: opts.Clipboard,
		Logger:    logger,
	})

	return &session{
		cfg:       cfg,
		editor:    e,
		logger:    logger,
		logCloser: logCloser,
	}, nil
}

func (s *session) Close() {
	s.editor.Close()
	_ = s.logger.Sync()
	_ = s.logCloser.Close()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		dir, err := config.Dir(false)
		if err != nil {
			return nil, fmt.Errorf("locate config dir: %w", err)
		}
		path = filepath.Join(dir, config.FileName)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func logOptions(opts *Options, cfg *config.Config, interactive bool) logging.Options {
	if !interactive {
		level := opts.LogLevel
		if level == "" {
			level = "warn"
		}
		return logging.Options{Level: level, Stderr: true}
	}

	if len(os.Getenv("DEBUG")) > 0 {
		return logging.Options{Level: "debug", File: "debug.log"}
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	return logging.Options{Level: level, File: cfg.LogFile}
}

func openKV(opts *Options, cfg *config.Config) (store.KV, error) {
	if opts.KV != nil {
		return opts.KV, nil
	}
	if opts.Ephemeral {
		return store.NewMemoryStore()
	}

	dir := opts.DataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	fs, err := store.NewFileStore(store.StoreOptions{DevMode: cfg.DevMode, Dir: dir})
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	return fs, nil
}
