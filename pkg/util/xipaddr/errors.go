package xipaddr

import "errors"

var (
	// ErrInvalidAddress 表示输入不含 '.' 分隔符，不是 IPv4 点分地址。
	ErrInvalidAddress = errors.New("xipaddr: address must contain '.'")

	// ErrFormat 表示八位段无法转换为二进制表示。
	ErrFormat = errors.New("xipaddr: malformed octet")
)
