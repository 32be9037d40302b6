package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type toolConfig struct {
	Input      string
	LogLevel   string
	ListenAddr string
	FailFast   bool
}

type fileConfig struct {
	Input      string `toml:"input"`
	LogLevel   string `toml:"log_level"`
	ListenAddr string `toml:"listen_addr"`
	FailFast   bool   `toml:"fail_fast"`
}

func defaultConfig() toolConfig {
	return toolConfig{
		LogLevel: "info",
	}
}

// loadConfig reads a TOML config, overriding defaults only for keys the file
// actually defines.
func loadConfig(path string) (toolConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load satorictl config: %w", err)
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(raw.LogLevel)
		if level != "" {
			cfg.LogLevel = level
		}
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("fail_fast") {
		cfg.FailFast = raw.FailFast
	}

	return cfg, nil
}
