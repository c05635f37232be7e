package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IPv4 点分十进制地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")
)
