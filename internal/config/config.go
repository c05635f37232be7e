package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/omeyang/ipconv/pkg/observability/xlog"
)

// 十进制视图命令关键字。
const (
	// KeywordDecimal 默认关键字。
	KeywordDecimal = "decimal"

	// KeywordDigit 另一套命名中使用的关键字。
	KeywordDigit = "digit"
)

// Config 应用配置。
type Config struct {
	Log     Log     `koanf:"log"`
	Session Session `koanf:"session"`
}

// Log 日志配置。
type Log struct {
	// Level 日志级别：debug/info/warn/error。
	Level string `koanf:"level"`

	// Format 输出格式：text/json。
	Format string `koanf:"format"`

	// AddSource 是否在日志中记录调用方源码位置。
	AddSource bool `koanf:"add_source"`

	// File 日志文件路径，为空时输出到 stderr。
	File string `koanf:"file"`

	// MaxSizeMB 单个日志文件最大大小（MB），仅 File 非空时生效。
	MaxSizeMB int `koanf:"max_size_mb"`

	// MaxBackups 保留的备份文件数量。
	MaxBackups int `koanf:"max_backups"`

	// MaxAgeDays 保留备份的天数。
	MaxAgeDays int `koanf:"max_age_days"`

	// Compress 是否压缩备份文件。
	Compress bool `koanf:"compress"`
}

// Session 交互会话配置。
type Session struct {
	// DecimalKeyword 十进制视图命令：decimal 或 digit。
	DecimalKeyword string `koanf:"decimal_keyword"`

	// Strict 是否对八位段做严格校验（恰好 4 段且每段 0~255）。
	Strict bool `koanf:"strict"`
}

// Default 返回默认配置。
//
// 日志默认 warn 级别输出到 stderr，正常交互时不产生日志输出。
func Default() Config {
	return Config{
		Log: Log{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  xlog.DefaultMaxSizeMB,
			MaxBackups: xlog.DefaultMaxBackups,
			MaxAgeDays: xlog.DefaultMaxAgeDays,
		},
		Session: Session{
			DecimalKeyword: KeywordDecimal,
		},
	}
}

// Validate 校验配置值。
//
// 关键字与格式按小写比较，校验通过后写回规范化的值。
func (c *Config) Validate() error {
	if _, err := xlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	c.Session.DecimalKeyword = strings.ToLower(strings.TrimSpace(c.Session.DecimalKeyword))
	switch c.Session.DecimalKeyword {
	case KeywordDecimal, KeywordDigit:
	case "":
		c.Session.DecimalKeyword = KeywordDecimal
	default:
		return fmt.Errorf("%w: session.decimal_keyword %q (want %s or %s)",
			ErrInvalid, c.Session.DecimalKeyword, KeywordDecimal, KeywordDigit)
	}
	return nil
}

// NewLogger 按日志配置构建 Logger。
// File 为空时写入 w，否则写入轮转文件。onError 在日志写入失败时调用，可为 nil。
func (l Log) NewLogger(w io.Writer, onError func(error)) (xlog.Logger, func() error, error) {
	b := xlog.New().
		SetOutput(w).
		SetOnError(onError).
		SetAddSource(l.AddSource).
		SetLevelString(l.Level).
		SetFormat(l.Format)
	if l.File != "" {
		b = b.SetRotation(l.File,
			xlog.WithMaxSize(l.MaxSizeMB),
			xlog.WithMaxBackups(l.MaxBackups),
			xlog.WithMaxAge(l.MaxAgeDays),
			xlog.WithCompress(l.Compress),
		)
	}
	return b.Build()
}
