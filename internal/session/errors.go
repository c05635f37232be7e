package session

import "errors"

var (
	// ErrInputClosed 表示在提示符处遇到输入结束（EOF）。
	ErrInputClosed = errors.New("session: input closed")

	// ErrTerminated 表示会话已结束，不能再次运行。
	ErrTerminated = errors.New("session: already terminated")
)
