package cmd

import (
	"fmt"

	"github.com/soulspace/soulscribe/internal/cache"
	"github.com/soulspace/soulscribe/internal/config"
	"github.com/spf13/cobra"
)

var flagClearAll bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List cached topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cache.Open(config.CachePath())
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()

		entries, err := db.Posts()
		if err != nil {
			return fmt.Errorf("listing posts: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No cached posts.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%-40s  %s\n", e.Topic, e.GeneratedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.CachePath()
		db, err := cache.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()

		count, size, err := db.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Cache: %s\n", dbPath)
		fmt.Printf("Posts: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear [topic]",
	Short: "Remove a cached post, or all of them with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cache.Open(config.CachePath())
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()

		if flagClearAll {
			n, err := db.DeleteAll()
			if err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			fmt.Printf("Removed %d cached post(s).\n", n)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("specify a topic or use --all")
		}
		topic := args[0]
		existed, err := db.Delete(topic)
		if err != nil {
			return fmt.Errorf("clearing %q: %w", topic, err)
		}
		if !existed {
			fmt.Printf("No cached post for %q.\n", topic)
		} else {
			fmt.Printf("Removed cached post for %q.\n", topic)
		}
		return nil
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cache.Open(config.CachePath())
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()

		runs, err := db.RecentRuns(20)
		if err != nil {
			return fmt.Errorf("reading runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, r := range runs {
			status := "ok"
			if !r.OK {
				status = "failed: " + r.Error
			} else if r.CacheHit {
				status = "cache hit"
			}
			fmt.Printf("%s  %-30s  %6dms  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Topic, r.Duration.Milliseconds(), status)
		}
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&flagClearAll, "all", false, "remove every cached post")
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
