package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridbag/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var expired bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached layouts and artifacts",
		Long: `Clear cached layouts and artifacts.

With --expired only entries past their TTL (and unreadable entries) are
removed. Only the file backend can be cleared from here. Redis and MongoDB
entries expire on their own once their TTL passes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCacheClear(cmd.Context(), expired)
		},
	}

	cmd.Flags().BoolVar(&expired, "expired", false, "only remove expired entries")
	return cmd
}

func (c *CLI) runCacheClear(ctx context.Context, expired bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if b := cfg.Cache.backend(false); b != backendFile {
		printWarning("Cache backend %q cannot be cleared locally", b)
		printDetail("Entries expire after their TTL")
		return nil
	}

	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	var count int
	if expired {
		count, err = fc.Prune(ctx)
	} else {
		count, err = fc.Clear(ctx)
	}
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if count == 0 {
		printInfo("Nothing to remove")
		return nil
	}
	printSuccess("Removed %d cached entries", count)
	printDetail("Directory: %s", fc.Dir())
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
