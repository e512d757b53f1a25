package config

import _ "embed"

const defaultJWTSecret = "change-me-in-production"

// DefaultConfigYAML 内置默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte
