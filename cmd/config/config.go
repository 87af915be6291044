package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-pages/pkg/hierarchy"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

var cfgFile string

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "pages")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PAGES")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "pages"))
	viper.SetDefault("pages_dir", filepath.Join(os.Getenv("HOME"), "pages"))
	viper.SetDefault("editor", os.Getenv("EDITOR"))
	viper.SetDefault("sort_mode", string(hierarchy.SortFoldersFirst))

	// Missing config file is fine, defaults and env cover local use.
	_ = viper.ReadInConfig()
}

// OpenStore opens the page store at the configured data directory.
func OpenStore() (*store.Store, error) {
	return store.Open(viper.GetString("data_dir"))
}

// SortMode returns the configured sibling sort mode.
func SortMode() hierarchy.SortMode {
	return hierarchy.SortMode(viper.GetString("sort_mode"))
}

// PagesDir returns the configured markdown pages directory.
func PagesDir() string {
	return viper.GetString("pages_dir")
}

// Editor returns the configured editor command.
func Editor() string {
	return viper.GetString("editor")
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pages/config.yaml)")
}
