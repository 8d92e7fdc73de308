package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/config"
	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
)

// app carries what every subcommand needs once flags have been parsed.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log zerolog.Logger
}

func (a *app) client() *dal.Client {
	return dal.NewClient(a.cfg.API.BaseURL,
		dal.WithTimeout(a.cfg.API.Timeout),
		dal.WithUserAgent(a.cfg.API.UserAgent),
		dal.WithLogger(a.log),
	)
}

// NewRootCmd builds the brewfind command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           RootCmdName,
		Short:         RootCmdShort,
		Long:          RootCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cfg.Log, cmd.ErrOrStderr())
			a.log.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console or json)")
	flags.String("api-base-url", dal.DefaultBaseURL, "base URL of the brewery directory API")
	flags.Duration("api-timeout", 0, "timeout of each directory request (0 keeps the configured value)")

	// Flags only override file and environment values when set explicitly.
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("api.base_url", flags.Lookup("api-base-url"))
	_ = a.v.BindPFlag("api.timeout", flags.Lookup("api-timeout"))

	root.AddCommand(newServeCmd(a), newSearchCmd(a), newConfigCmd(a))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
