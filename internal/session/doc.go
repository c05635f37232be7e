// Package session 实现 ipconv 的交互式命令循环。
//
// 协议（逐行，stdin/stdout）：
//
//	Hello! I'm an IP addresses converter!
//	IP Address: 192.168.1.1
//	> decimal
//	192.168.1.1
//	> binary
//	11000000101010000000000100000001
//	> new
//	IP Address: 10.0.0.1
//	> exit
//	Goodbye!
//
// 命令大小写不敏感（整行转小写后精确匹配）：binary、decimal（可配置为 digit）、
// new、exit。其它输入输出 "Unexpected command. Try again." 并继续循环。
//
// 状态机：[StateAwaitingAddress] → [StateReady] → [StateTerminated]。
//
// 会话完全同步、单 goroutine 运行，不启动后台读取协程。
package session
