package xlog

import "log/slog"

const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"

	// KeyCommand 交互命令字段的标准 key
	KeyCommand = "command"

	// KeyAddress 地址字段的标准 key
	KeyAddress = "address"
)

// Err 创建错误属性
//
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 创建组件名称属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Command 创建交互命令属性
func Command(cmd string) slog.Attr {
	return slog.String(KeyCommand, cmd)
}

// Address 创建地址属性
func Address(addr string) slog.Attr {
	return slog.String(KeyAddress, addr)
}
