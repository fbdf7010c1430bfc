package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/knownfolders/pkg/knownfolders"
)

// folderEntry is the per-folder result row for list output.
type folderEntry struct {
	Folder string `json:"folder"`
	Path   string `json:"path,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Resolve every known folder in the catalog",
		Long: `Resolve every identifier in the known folder catalog and print the
path, or the classified error, for each one. On non-Windows platforms
every entry reports the same unsupported-platform error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newCLILogger()

			ids := knownfolders.All()
			entries := make([]folderEntry, 0, len(ids))
			for _, id := range ids {
				entry := folderEntry{Folder: id.String()}
				path, err := knownfolders.Path(id)
				if err != nil {
					logger.Debug().Err(err).Stringer("folder", id).Msg("resolution failed")
					entry.Error = err.Error()
				} else {
					entry.Path = path
				}
				entries = append(entries, entry)
			}

			if asJSON {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode results: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			for _, entry := range entries {
				if entry.Error != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%-24s error: %s\n", entry.Folder, entry.Error)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", entry.Folder, entry.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
