package main

// usageError 表示配置或命令行参数错误，退出码为 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Unwrap() error { return e.err }
