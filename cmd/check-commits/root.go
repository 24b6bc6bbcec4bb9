package checkcommits

import (
	"fmt"
	"os"

	"github.com/arthur-debert/check-commits/cmd/check-commits/commands/genconfig"
	"github.com/arthur-debert/check-commits/cmd/check-commits/commands/man"
	"github.com/arthur-debert/check-commits/internal/version"
	"github.com/arthur-debert/check-commits/pkg/commands/check"
	"github.com/arthur-debert/check-commits/pkg/config"
	"github.com/arthur-debert/check-commits/pkg/logging"
	"github.com/arthur-debert/check-commits/pkg/ui"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		rulesPath  string
		emailsPath string
		output     string
		noColor    bool
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "check-commits --rules <path> --emails <path>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), verbosity)
			logging.LogCommand(cmd.Name(), os.Args[1:])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("output") {
				overrides["output.format"] = output
			}
			if noColor {
				overrides["output.color"] = config.ColorNever
			}

			cfg, err := config.LoadConfiguration(config.LoadOptions{
				ConfigFile: configFile,
				Overrides:  overrides,
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			result, err := check.CheckEmails(check.CheckEmailsOptions{
				RulesPath:  rulesPath,
				EmailsPath: emailsPath,
			})
			if err != nil {
				return fmt.Errorf(MsgErrCheckEmails, err)
			}

			stdout, _ := cmd.OutOrStdout().(*os.File)
			renderer, err := ui.NewRenderer(ui.ParseFormat(cfg.Output.Format), cmd.OutOrStdout(), ui.Options{
				Color:     ui.DetectColor(stdout, cfg.Output.Color),
				Bullet:    cfg.GitHub.Bullet,
				Separator: cfg.GitHub.Separator,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRenderReport, err)
			}

			if err := renderer.RenderViolations(result.Violations); err != nil {
				return fmt.Errorf(MsgErrRenderReport, err)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Check flags
	rootCmd.Flags().StringVarP(&rulesPath, "rules", "r", "", MsgFlagRules)
	rootCmd.Flags().StringVarP(&emailsPath, "emails", "e", "", MsgFlagEmails)
	rootCmd.Flags().StringVarP(&output, "output", "o", "text", MsgFlagOutput)
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	_ = rootCmd.MarkFlagRequired("rules")
	_ = rootCmd.MarkFlagRequired("emails")
	_ = rootCmd.MarkFlagFilename("rules", "txt")
	_ = rootCmd.MarkFlagFilename("emails", "txt")
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{ui.FormatText.String(), ui.FormatGitHub.String()}, cobra.ShellCompDirectiveNoFileComp
	})

	installMarkdownHelp(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(man.NewCommand())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
