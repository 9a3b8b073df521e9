package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/talent-match/internal/augment"
	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/llm"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/registry"
	"github.com/jonathan/talent-match/internal/resolver"
	"github.com/jonathan/talent-match/internal/schemas"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/store"
)

// environment bundles the wired components every command needs.
type environment struct {
	cfg          config.Config
	registry     *registry.Registry
	resolver     *resolver.Resolver
	engine       *scoring.Engine
	provider     store.Provider
	orchestrator *matching.Orchestrator
	printer      *observability.Printer
	cleanup      func()
}

// loadRunConfig merges the optional config file with CLI flags. Flags win.
func loadRunConfig() (config.Config, error) {
	flags := config.Config{
		JobsFile:       flagJobs,
		CandidatesFile: flagCandidates,
		SkillCatalog:   flagCatalog,
		DatabaseURL:    flagDatabaseURL,
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		Verbose:        flagVerbose,
	}

	if flagConfig == "" {
		if flags.DatabaseURL == "" {
			flags.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		return flags, flags.Validate()
	}

	fileCfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return merged, merged.Validate()
}

// buildEnvironment wires the registry, resolver, engine, store, analyzer,
// and orchestrator from the merged configuration. The returned cleanup must
// be called when the command finishes.
func buildEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := loadRunConfig()
	if err != nil {
		return nil, err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	res := resolver.New(reg)
	engine := scoring.NewEngine(res, reg)

	provider, closeProvider, err := buildProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	analyzer, closeAnalyzer, err := buildAnalyzer(ctx, cfg, reg, res)
	if err != nil {
		closeProvider()
		return nil, err
	}

	env := &environment{
		cfg:          cfg,
		registry:     reg,
		resolver:     res,
		engine:       engine,
		provider:     provider,
		orchestrator: matching.NewOrchestrator(provider, engine, res, analyzer),
		printer:      observability.NewPrinter(os.Stdout),
		cleanup: func() {
			closeAnalyzer()
			closeProvider()
		},
	}
	return env, nil
}

// buildRegistry loads the skill catalog from file, falling back to the
// built-in catalog.
func buildRegistry(cfg config.Config) (*registry.Registry, error) {
	if cfg.SkillCatalog == "" {
		return registry.Default(), nil
	}
	if err := schemas.ValidateCatalogFile(cfg.SkillCatalog); err != nil {
		return nil, fmt.Errorf("skill catalog failed validation: %w", err)
	}
	reg, err := registry.Load(cfg.SkillCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill catalog: %w", err)
	}
	return reg, nil
}

// buildProvider picks the storage backend: PostgreSQL when a database URL is
// set, JSON files when paths are given, built-in samples otherwise.
func buildProvider(ctx context.Context, cfg config.Config) (store.Provider, func(), error) {
	noop := func() {}

	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		return pg, pg.Close, nil
	}

	if cfg.JobsFile != "" || cfg.CandidatesFile != "" {
		if cfg.JobsFile == "" || cfg.CandidatesFile == "" {
			return nil, noop, fmt.Errorf("jobs and candidates files must be provided together")
		}
		if err := schemas.ValidateJobsFile(cfg.JobsFile); err != nil {
			return nil, noop, fmt.Errorf("jobs file failed validation: %w", err)
		}
		if err := schemas.ValidateCandidatesFile(cfg.CandidatesFile); err != nil {
			return nil, noop, fmt.Errorf("candidates file failed validation: %w", err)
		}
		mem, err := store.LoadMemoryStore(cfg.JobsFile, cfg.CandidatesFile)
		if err != nil {
			return nil, noop, err
		}
		return mem, noop, nil
	}

	mem, err := store.DefaultMemoryStore()
	if err != nil {
		return nil, noop, err
	}
	return mem, noop, nil
}

// buildAnalyzer selects the augmentation backend. With --no-ai the match is
// fully deterministic; with an API key the Gemini analyzer runs; otherwise
// the local heuristic analyzer stands in.
func buildAnalyzer(ctx context.Context, cfg config.Config, reg *registry.Registry, res *resolver.Resolver) (augment.Analyzer, func(), error) {
	noop := func() {}

	if flagNoAI {
		return nil, noop, nil
	}

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
		}
		return augment.NewGeminiAnalyzer(client), func() { _ = client.Close() }, nil
	}

	return augment.NewHeuristicAnalyzer(reg, res), noop, nil
}
