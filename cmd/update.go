package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ink8bit/deby/pkg/fileutil"
	"github.com/ink8bit/deby/pkg/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "update both changelog and control files",
	RunE:  update,
}

func init() {
	updateCmd.Flags().String(flagVersion, "", "version string for the new changelog entry")
	updateCmd.Flags().String(flagChanges, "", "change description; each line becomes a changelog bullet")
	updateCmd.Flags().StringArray(flagField, nil, "additional \"Key: Value\" field for the control file (repeatable)")

	_ = updateCmd.MarkFlagRequired(flagVersion)
	_ = updateCmd.MarkFlagRequired(flagChanges)
}

func update(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	version, _ := cmd.Flags().GetString(flagVersion)
	changes, _ := cmd.Flags().GetString(flagChanges)
	fields, _ := cmd.Flags().GetStringArray(flagField)

	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}

	res, err := updater.New(cfg, fileutil.OS{}).Update(cmd.Context(), version, changes, fields)
	if res.ChangelogMessage != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.ChangelogMessage)
	}
	if res.ControlMessage != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.ControlMessage)
	}
	return err
}
