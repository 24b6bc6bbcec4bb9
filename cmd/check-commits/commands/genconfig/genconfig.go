package genconfig

import (
	"fmt"

	"github.com/arthur-debert/check-commits/pkg/config"
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultsContent())
				return err
			}

			configFile, _ := cmd.Flags().GetString("config")

			cfg, err := config.LoadConfiguration(config.LoadOptions{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			content, err := config.GenerateConfigContent(cfg)
			if err != nil {
				return fmt.Errorf("failed to generate configuration: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}
