package main

import (
	"strings"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/milk9111/propanim/common"
)

var (
	Root = &cobra.Command{
		Use:           "animctl",
		Short:         "Run and stress property animation scenes without a window",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	loglevel   = Root.PersistentFlags().String("loglevel", "warn", "Console log level")
	configfile = Root.PersistentFlags().String("config", "animctl.yaml", "Optional configuration file")
)

// bindFlags fills every flag the user did not set from viper, which sees the
// configuration file and ANIMCTL_* environment variables.
func bindFlags(cmd *cobra.Command) {
	apply := func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(viper.GetStringSlice(f.Name))
			} else {
				_ = f.Value.Set(viper.GetString(f.Name))
			}
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, sub := range cmd.Commands() {
		bindFlags(sub)
	}
}

func loadConfiguration(cmd *cobra.Command) {
	viper.SetEnvPrefix("ANIMCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile(*configfile)
	if err := viper.ReadInConfig(); err == nil {
		zlog.Debug().Str("file", viper.ConfigFileUsed()).Msg("using configuration file")
	}

	bindFlags(cmd)
}

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(Root)
	})

	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		common.SetupLogger(*loglevel)
		return nil
	}
}
