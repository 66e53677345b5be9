package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ink8bit/deby/pkg/fileutil"
	"github.com/ink8bit/deby/pkg/updater"
)

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "update the control file only",
	RunE:  runControl,
}

func init() {
	controlCmd.Flags().StringArray(flagField, nil, "additional \"Key: Value\" field for the control file (repeatable)")
}

func runControl(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	fields, _ := cmd.Flags().GetStringArray(flagField)

	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}

	msg, err := updater.New(cfg, fileutil.OS{}).UpdateControl(cmd.Context(), fields)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
