package main

import (
	"github.com/spf13/viper"
)

// ReadAppConfig reads a configuration file holding default values for the
// command-line flags. Keys match the Setting field names
// case-insensitively, e.g. freqhz, ifbwhz, satlongdeg.
func ReadAppConfig(path string) (map[string]interface{}, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v.AllSettings(), nil
}
