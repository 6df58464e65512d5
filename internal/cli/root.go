package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/kapa/internal/model"
)

const version = "v1.0.0"

// app carries state shared by all subcommands of one root command
type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCommand builds the kapa command tree
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "kapa",
		Short: "kapa - programming language information tool",
		Long: `kapa looks up programming languages in a local catalog.

The catalog (languages.json) is searched for in this order:
1. --data flag / KAPA_DATA
2. ./languages.json
3. next to the kapa executable
4. /usr/local/share/kapa/languages.json
5. the user data directory (e.g. ~/.local/share/kapa/languages.json)`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.kapa/config.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("data", "", "path to languages.json (probed before the default locations)")
	flags.StringP("output", "o", model.OutputTable, "output format (table, json, yaml)")

	// Bind flags to viper
	for _, key := range []string{"verbose", "data", "output"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newListCmd(a),
		newSearchCmd(a),
		newYearCmd(a),
		newCreatorCmd(a),
		newStatsCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kapa %s\n", version)
		},
	}
}

// initConfig reads in config file and ENV variables
func (a *app) initConfig(cmd *cobra.Command) error {
	a.v.SetDefault("output", model.OutputTable)

	if a.cfgFile != "" {
		// Use config file from the flag
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error finding home directory: %v\n", err)
		} else {
			a.v.AddConfigPath(filepath.Join(home, ".kapa"))
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}

	// Read in environment variables that match KAPA_*
	a.v.SetEnvPrefix("KAPA")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else if a.v.GetBool("verbose") {
		fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", a.v.ConfigFileUsed())
	}

	return nil
}

// config resolves the effective configuration (flags > env > file > defaults)
func (a *app) config() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Data = a.v.GetString("data")
	cfg.Output = a.v.GetString("output")
	cfg.Verbose = a.v.GetBool("verbose")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
