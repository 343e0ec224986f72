package cmd

import (
	"fmt"

	"github.com/soulspace/soulscribe/internal/ai"
	"github.com/soulspace/soulscribe/internal/cache"
	"github.com/soulspace/soulscribe/internal/config"
	"github.com/soulspace/soulscribe/internal/tui"
	"github.com/soulspace/soulscribe/internal/workflow"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := cache.Open(config.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	// Without a key the TUI still browses cached posts; generation
	// requests report the missing configuration.
	var gen ai.Generator
	if cfg.AIEnabled() {
		gen, err = ai.New(cfg.AI, cfg.AIKey())
		if err != nil {
			return fmt.Errorf("configuring AI: %w", err)
		}
	}

	useCache := cfg.CacheEnabled()
	if flagNoCache {
		useCache = false
	}

	return tui.Run(tui.RunOpts{
		Cfg:      cfg,
		DB:       db,
		Pipeline: workflow.New(gen, db),
		UseCache: useCache,
		Version:  version,
	})
}
