package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/chartbrush/cmd/chartbrush/root"
	"github.com/wandb/chartbrush/internal/settings"
)

var (
	cfgFile string
	cmd     = root.NewRootCmd()
)

func init() {
	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.chartbrush.yaml)")
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error("chartbrush failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	settings.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("chartbrush")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal("cannot find home directory", "error", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".chartbrush")
		viper.SetConfigType("yaml")
		_ = viper.SafeWriteConfig()
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal("can't read config", "error", err)
	}
}
