package terminal

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/market-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/market-atlas/pkg/services/config"
	"github.com/de-tools/market-atlas/pkg/services/market"
	"github.com/de-tools/market-atlas/pkg/store/steam"
	"github.com/de-tools/market-atlas/pkg/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Steam Community Market pricing tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().String("profile", "", "Path to a profile file with query defaults")
	cmd.PersistentFlags().String("currency", "", "Currency for prices (code or name, e.g. 3 or EUR)")
	cmd.PersistentFlags().String("language", "", "Language for returned data")
	cmd.PersistentFlags().String("base-url", "", "Override the market endpoint")
	cmd.PersistentFlags().Int("max-retries", 0, "Rate-limit retries before giving up")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	deps := commands.Deps{
		Reporter:    cli.reporter,
		NewExplorer: cli.buildExplorer,
	}

	cmd.AddCommand(commands.NewOverviewCmd(deps))
	cmd.AddCommand(commands.NewPriceCmd(deps))
	cmd.AddCommand(commands.NewVolumeCmd(deps))
	cmd.AddCommand(commands.NewBatchCmd(deps))

	return cmd
}

// buildExplorer assembles the store client and explorer from the profile
// file plus any flag overrides.
func (cli *CLI) buildExplorer(cmd *cobra.Command) (market.Explorer, error) {
	flags := cmd.Flags()

	profile := config.DefaultProfile()
	if path, _ := flags.GetString("profile"); path != "" {
		loaded, err := config.LoadProfile(path)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if currency, _ := flags.GetString("currency"); currency != "" {
		profile.Currency = currency
	}
	if language, _ := flags.GetString("language"); language != "" {
		profile.Language = language
	}
	if baseURL, _ := flags.GetString("base-url"); baseURL != "" {
		profile.BaseURL = baseURL
	}
	if retries, _ := flags.GetInt("max-retries"); retries > 0 {
		profile.MaxRetries = retries
	}

	storeOpts := []steam.Option{steam.WithTimeout(profile.Timeout())}
	if profile.BaseURL != "" {
		storeOpts = append(storeOpts, steam.WithBaseURL(profile.BaseURL))
	}
	if profile.MaxRetries > 0 {
		storeOpts = append(storeOpts, steam.WithBackoff(steam.ExponentialBackoff(profile.MaxRetries)))
	}

	return market.NewExplorer(
		steam.NewClient(storeOpts...),
		market.WithCurrency(profile.Currency),
		market.WithLanguage(profile.Language),
	)
}
