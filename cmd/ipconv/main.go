// ipconv 是 IPv4 地址点分十进制与二进制互转的交互式控制台工具。
//
// 用法:
//
//	ipconv [选项]
//
// 选项:
//
//	-c, --config   配置文件路径（YAML 或 JSON，按扩展名识别）
//	--strict       严格校验八位段（恰好 4 段且每段 0~255）
//	--log-level    覆盖日志级别 (debug/info/warn/error)
//
// 交互命令:
//
//	binary         输出当前地址的 32 位二进制形式
//	decimal        输出当前地址的点分十进制形式（可配置为 digit）
//	new            输入新地址替换当前地址
//	exit           退出
//
// 退出码:
//
//	0: 通过 exit 命令正常退出
//	1: 地址无效、八位段格式错误、输入结束等运行时错误
//	2: 配置或参数错误
//
// 示例:
//
//	ipconv                          # 默认模式
//	ipconv --strict                 # 严格校验
//	ipconv -c ipconv.yaml           # 使用配置文件
//	ipconv --log-level debug        # 调试日志输出到 stderr
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipconv/internal/config"
	"github.com/omeyang/ipconv/internal/session"
	"github.com/omeyang/ipconv/pkg/observability/xlog"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// 命令行参数名。
const (
	flagConfig   = "config"
	flagStrict   = "strict"
	flagLogLevel = "log-level"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用，会话读写 in/out，错误与日志写入 errOut。
func createApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ipconv",
		Usage:     "IPv4 地址点分十进制与二进制互转",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "配置文件路径（YAML/JSON）",
			},
			&cli.BoolFlag{
				Name:  flagStrict,
				Usage: "严格校验八位段（恰好 4 段且每段 0~255）",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "日志级别 (debug/info/warn/error)",
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{msg: err.Error()}
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return &usageError{msg: err.Error(), err: err}
			}
			return runSession(ctx, cfg, in, out, errOut)
		},
	}
}

// loadConfig 加载配置文件并应用命令行覆盖项。
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return cfg, err
	}
	if cmd.IsSet(flagStrict) {
		cfg.Session.Strict = cmd.Bool(flagStrict)
	}
	if cmd.IsSet(flagLogLevel) {
		cfg.Log.Level = cmd.String(flagLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runSession 构建日志并运行一次交互会话。
func runSession(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	logger, cleanup, err := cfg.Log.NewLogger(errOut, func(err error) {
		fmt.Fprintf(errOut, "日志写入失败: %v\n", err)
	})
	if err != nil {
		return &usageError{msg: err.Error(), err: err}
	}
	defer func() { _ = cleanup() }()

	s := session.New(in, out,
		session.WithLogger(logger),
		session.WithDecimalKeyword(cfg.Session.DecimalKeyword),
		session.WithStrict(cfg.Session.Strict),
	)
	if err := s.Run(ctx); err != nil {
		// 错误由 run 输出到 stderr，这里只保留调试日志
		logger.Debug(ctx, "session failed", xlog.Err(err))
		return err
	}
	return nil
}

// run 执行应用并返回退出码。
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	app := createApp(in, out, errOut)

	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(errOut, "参数错误: %v\n", usageErr)
		return 2
	}
	// 输出协议在提示符后没有换行，先换行再输出错误
	fmt.Fprintf(errOut, "\n错误: %v\n", err)
	return 1
}
