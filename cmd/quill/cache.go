package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quill/internal/driver"
)

const cacheApp = "quill"

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the token cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "dir",
		Short: "Print the token cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := driver.OpenDiskCache(cacheApp)
			if err != nil {
				return fmt.Errorf("open token cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Drop every cached token stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := driver.OpenDiskCache(cacheApp)
			if err != nil {
				return fmt.Errorf("open token cache: %w", err)
			}
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clean token cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleaned %s\n", cache.Dir())
			return nil
		},
	})
	return cmd
}
