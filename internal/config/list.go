package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

type list struct {
	PageSize int `yaml:"page-size" json:"page-size" mapstructure:"page-size"` // sayings shown per page by the console and the list command
}

func (cfg list) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("list.page-size", say.DefaultPageSize)
}

func (cfg *list) parseConfigValues() error {
	if cfg.PageSize < 1 {
		return fmt.Errorf("list page size must be positive (got %d)", cfg.PageSize)
	}
	return nil
}
