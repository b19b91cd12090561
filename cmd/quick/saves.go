package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quick/internal/storage"
)

var flagClear string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List or clear save slots",
	Long: `Shows every save slot in the database with its size and last update.

Examples:
  quick saves
  quick saves --db ./quick.db
  quick saves --clear bricks`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagClear, "clear", "", "Delete the named slot")
}

func runSaves(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear != "" {
		if err := store.Delete(flagClear); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %s\n", flagClear)
		return nil
	}

	entries, err := store.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No saves yet.")
		return nil
	}

	maxKeyLen := 4 // "Slot" header
	for _, e := range entries {
		maxKeyLen = max(maxKeyLen, len(e.Key))
	}

	fmt.Fprintf(out, "  %-*s  %8s  %s\n", maxKeyLen, "Slot", "Size", "Updated")
	fmt.Fprintf(out, "  %-*s  %8s  %s\n", maxKeyLen, "----", "----", "-------")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-*s  %7dB  %s\n", maxKeyLen, e.Key, e.Size, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

