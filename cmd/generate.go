package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/soulspace/soulscribe/internal/ai"
	"github.com/soulspace/soulscribe/internal/cache"
	"github.com/soulspace/soulscribe/internal/config"
	"github.com/soulspace/soulscribe/internal/download"
	"github.com/soulspace/soulscribe/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	flagOut  string
	flagSave bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a blog post for a topic",
	Long: `Generate a Soul Space blog post about the given topic and print it to stdout.

A previously generated post for the same topic is served from the cache
unless --no-cache is set. Use --out to write to a specific file, or --save
to write a timestamped markdown file into the configured output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		db, err := cache.Open(config.CachePath())
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()

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

		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
		defer cancel()

		fmt.Fprintf(os.Stderr, "Generating blog post about: %s\n", topic)
		doc, err := workflow.New(gen, db).Produce(ctx, topic, useCache)
		if err != nil {
			return err
		}

		switch {
		case flagOut != "":
			if err := os.WriteFile(flagOut, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", flagOut, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", flagOut)
		case flagSave:
			path, err := download.Save(cfg.DownloadDir(), doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		default:
			fmt.Println(doc)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&flagOut, "out", "", "write the post to this file")
	generateCmd.Flags().BoolVar(&flagSave, "save", false, "write a timestamped .md file into the output directory")
}
