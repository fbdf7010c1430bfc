package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/knownfolders/pkg/knownfolders"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [folder]",
		Short: "Resolve one known folder to its path",
		Long: `Resolve a single known folder identifier to its absolute path.
The folder is named by its catalog entry, e.g. Profile, LocalAppData
or Documents; matching is case-insensitive. Use "list" to see the full
catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newCLILogger()

			id, err := knownfolders.ParseFolderID(args[0])
			if err != nil {
				return err
			}

			logger.Debug().Stringer("folder", id).Msg("resolving known folder")
			path, err := knownfolders.Path(id)
			if err != nil {
				logger.Debug().Err(err).Stringer("folder", id).Msg("resolution failed")
				return fmt.Errorf("failed to resolve %s: %w", id, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
