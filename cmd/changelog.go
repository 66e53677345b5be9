package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ink8bit/deby/pkg/fileutil"
	"github.com/ink8bit/deby/pkg/updater"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "update the changelog file only",
	RunE:  runChangelog,
}

func init() {
	changelogCmd.Flags().String(flagVersion, "", "version string for the new changelog entry")
	changelogCmd.Flags().String(flagChanges, "", "change description; each line becomes a changelog bullet")

	_ = changelogCmd.MarkFlagRequired(flagVersion)
	_ = changelogCmd.MarkFlagRequired(flagChanges)
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	version, _ := cmd.Flags().GetString(flagVersion)
	changes, _ := cmd.Flags().GetString(flagChanges)

	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}

	msg, err := updater.New(cfg, fileutil.OS{}).UpdateChangelog(cmd.Context(), version, changes)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
