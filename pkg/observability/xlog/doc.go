// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、源码位置、轮转）
//   - 写入失败回调 [Builder.SetOnError]
//   - 基于 lumberjack 的按大小日志轮转
//   - [Discard] 空 Logger，作为组件默认值
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/ipconv/ipconv.log", xlog.WithMaxSize(10)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接序列化/反序列化。
//
// # 便捷属性
//
// [Err]、[Component]、[Command]、[Address]。
//
// # 输出目标
//
// 交互式工具的 stdout 属于用户协议，日志只写 stderr 或轮转文件。
package xlog
