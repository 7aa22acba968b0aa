package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// FileConfig is the configuration read from .datefield.yaml and the
// DATEFIELD_ environment.
type FileConfig struct {
	Path                string            `json:"path"`
	Format              string            `json:"format"`
	Timezone            string            `json:"timezone"`
	Locale              string            `json:"locale"`
	Density             string            `json:"density"`
	RTL                 bool              `json:"rtl"`
	RespectLeadingZeros bool              `json:"respectLeadingZeros"`
	MinutesStep         int               `json:"minutesStep"`
	ValueType           string            `json:"valueType"`
	Placeholders        map[string]string `json:"placeholders,omitempty"`
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", "~/.datefield")
	v.SetDefault("format", "L")
	v.SetDefault("timezone", "default")
	v.SetDefault("locale", "en-US")
	v.SetDefault("density", "dense")
	v.SetDefault("rtl", false)
	v.SetDefault("respect_leading_zeros", false)
	v.SetDefault("minutes_step", 1)
	v.SetDefault("value_type", "date-time")
	v.SetConfigName(".datefield") // .yaml is implicit
	v.SetEnvPrefix("DATEFIELD")
	v.AutomaticEnv()

	if override := os.Getenv("DATEFIELD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &FileConfig{
		Path:                path,
		Format:              v.GetString("format"),
		Timezone:            v.GetString("timezone"),
		Locale:              v.GetString("locale"),
		Density:             v.GetString("density"),
		RTL:                 v.GetBool("rtl"),
		RespectLeadingZeros: v.GetBool("respect_leading_zeros"),
		MinutesStep:         v.GetInt("minutes_step"),
		ValueType:           v.GetString("value_type"),
		Placeholders:        v.GetStringMapString("placeholders"),
	}, nil
}
