package main

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ghs/config"
	"github.com/katalvlaran/ghs/logging"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "ghsmst",
		Short: "Distributed minimum spanning tree simulator",
		Long: `ghsmst simulates the fragment-merging (GHS) minimum spanning tree protocol.
Every node knows only its own links; a round scheduler delivers messages
between neighbors until the single remaining root detects termination.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default ./ghsmst.yaml or $HOME/.config/ghsmst/ghsmst.yaml)")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")
	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log.format", pf.Lookup("log-format"))

	root.AddCommand(newRunCmd(v), newVerifyCmd(v), newGenCmd())

	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("ghsmst")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ghsmst")
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

// bindFlags binds viper keys to the flags of the command being executed.
// Subcommands share keys, so binding waits until one of them runs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig resolves the configuration and the logger writing to stderr.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	return cfg, log, nil
}
