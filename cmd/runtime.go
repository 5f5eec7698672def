package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/worksheetz/internal/config"
	"github.com/abhisek/worksheetz/internal/llm"
	"github.com/abhisek/worksheetz/internal/logging"
	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/store"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// runtime bundles what every generating command needs.
type runtime struct {
	cfg        *config.Config
	log        *zap.Logger
	store      *store.Store
	events     store.EventRepo // nil when history is disabled
	dispatcher *worksheet.Dispatcher
	aiEnabled  bool
}

type runtimeOptions struct {
	// quietLog discards logs unless log.file is set, for the TUI.
	quietLog bool
	// noStore skips opening the history database.
	noStore bool
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, quiet bool) (*zap.Logger, error) {
	if quiet && cfg.Log.File == "" {
		return zap.NewNop(), nil
	}
	return logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Production: cfg.Production(),
		File:       cfg.Log.File,
	})
}

// openStore opens the history database named by cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := store.ResolvePath(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newRuntime loads config and builds the logger, store, LLM provider and
// dispatcher. An LLM provider that fails to initialize disables the AI
// module instead of failing the command.
func newRuntime(cmd *cobra.Command, opts runtimeOptions) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg, opts.quietLog)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	rt := &runtime{cfg: cfg, log: log}

	var dopts []worksheet.Option
	if !cfg.DB.Disabled && !opts.noStore {
		st, err := openStore(cfg)
		if err != nil {
			return nil, err
		}
		rt.store = st
		rt.events = st.EventRepo()
		dopts = append(dopts, worksheet.WithEventRecorder(rt.events))
	}

	if cfg.AIEnabled() {
		provider, err := llm.NewProvider(commandContext(cmd), cfg.LLM, rt.events, log)
		if err != nil {
			log.Warn("LLM provider unavailable, AI module disabled", zap.Error(err))
		} else {
			rt.aiEnabled = true
			dopts = append(dopts, worksheet.WithTextGenerator(problemgen.New(provider, problemgen.DefaultConfig())))
		}
	}

	rt.dispatcher = worksheet.NewDispatcher(worksheet.Limits{
		MaxAttempts:  cfg.Generation.MaxAttempts,
		DefaultCount: cfg.Generation.DefaultCount,
		MaxCount:     cfg.Generation.MaxCount,
		Concurrency:  cfg.Generation.Concurrency,
	}, log, dopts...)

	return rt, nil
}

func (rt *runtime) Close() {
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			rt.log.Warn("close store", zap.Error(err))
		}
	}
	logging.Sync(rt.log)
}
