package main

import (
	"errors"
	"io/fs"

	"github.com/zeebo/errs"

	"storj.io/gas-bump/pkg/config"
)

var (
	usageErr = errs.Class("usage")
)

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, usageErr.New("config %q not found (see --config)", path)
	}
	return cfg, err
}
