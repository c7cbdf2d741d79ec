package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the tracking data file.
type Config interface {
	DataPath() string
}

// LoadConfig reads the .daily config file from the working directory or the
// DAILY_* environment, falling back to ~/.daily/tracking_data.json.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daily/tracking_data.json")
	viper.SetConfigName(".daily") // .yaml is implicit
	viper.SetEnvPrefix("DAILY")
	viper.AutomaticEnv()

	if override := os.Getenv("DAILY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) DataPath() string {
	return f.Path
}
