// The root command for the CLI.
// This root 'composes' the subcommands and provides global flags like --debug and --config.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	configcommand "github.com/redjax/forecast/internal/commands/configCommand"
	historycommand "github.com/redjax/forecast/internal/commands/historyCommand"
	weathercommand "github.com/redjax/forecast/internal/commands/weatherCommand"
	"github.com/redjax/forecast/internal/config"
	"github.com/redjax/forecast/internal/logging"
	"github.com/redjax/forecast/internal/version"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
	// A dotenv file loaded into the environment before FORECAST_* variables are read
	envFile string
)

// Cobra root command
var rootCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Current weather and daily forecast from OpenWeatherMap",
	Long: `Look up the current weather and the next days' forecast for a town,
a pair of coordinates or your detected location.

Settings come from (lowest to highest): built-in defaults, the --config file,
FORECAST_* environment variables (a .env file is loaded first) and flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}

		if err := config.LoadConfig(cmd.Flags(), cfgFile); err != nil {
			return err
		}

		logger, err := logging.New(debug)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		logger.Debug("configuration loaded", zap.String("config", cfgFile), zap.Strings("keys", config.K.Keys()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (.json, .yaml, .toml or .env)")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to load into the environment")
	pf.BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Flags below are config keys; see internal/config flagKeys.
	pf.String("api-key", "", "OpenWeatherMap API key (api.key)")
	pf.StringP("units", "u", "", "metric, imperial or standard (api.units, default metric)")
	pf.String("lang", "", "language of weather descriptions (api.lang)")
	pf.String("locale", "", "locale for weekday names: fr, en, de or es (display.locale, default fr)")
	pf.String("timezone", "", "zone for dates: local, city or an IANA name (display.timezone, default local)")
	pf.Int("days", 0, "number of forecast days to show, 0 for all (display.days)")
	pf.String("history-db", "", "path of the lookup history database (history.path)")

	rootCmd.AddCommand(weathercommand.NewShowCommand())
	rootCmd.AddCommand(weathercommand.NewUICommand())
	rootCmd.AddCommand(historycommand.NewHistoryCommand())
	rootCmd.AddCommand(configcommand.NewShowConfigCommand())
	rootCmd.AddCommand(version.NewVersionCommand())
	rootCmd.AddCommand(version.NewPackageInfoCommand())
}
