package config

import "errors"

// 配置加载和解析相关错误。
var (
	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("config: unsupported config format")

	// ErrLoadFailed 表示配置加载失败。
	ErrLoadFailed = errors.New("config: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("config: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("config: failed to unmarshal config")

	// ErrInvalid 表示配置值不合法。
	ErrInvalid = errors.New("config: invalid config value")
)
