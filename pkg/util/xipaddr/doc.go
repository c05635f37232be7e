// Package xipaddr 提供 IPv4 点分十进制地址值类型 [Addr]。
//
// [Addr] 保存用户输入的原始文本，并提供两个只读视图：
//
//   - [Addr.Decimal]: 原样返回构造时的文本（不做数值往返，"010.0.0.1" 保持不变）
//   - [Addr.Binary]: 32 位二进制字符串，首次调用时计算并缓存
//
// # 快速示例
//
//	a, err := xipaddr.New("192.168.1.1")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(a.Decimal()) // 192.168.1.1
//	bin, _ := a.Binary()
//	fmt.Println(bin)         // 11000000101010000000000100000001
//
// # 校验模式
//
// 构造时只检查输入含有 '.'，其余校验推迟到 [Addr.Binary]：
//
//   - 宽松模式（默认）：每段按非负十进制整数解析，不校验段数与 0~255 范围。
//     超范围的段只补零不截断（256 → "100000000"），段数不为 4 时输出长度不为 32。
//     每段允许首尾空白和一个 '+' 前缀（"192.168.1.1 "、"+1"）。
//     非数字段（含空段、负数）返回 [ErrFormat]。
//   - 严格模式（[WithStrict]）：要求恰好 4 段且每段在 0~255 之间，不允许空白和符号，
//     否则返回包装了 [xnet.ErrInvalidAddress] 的 [ErrFormat]。
//
// # 错误处理
//
//	_, err := xipaddr.New("localhost")
//	if errors.Is(err, xipaddr.ErrInvalidAddress) {
//	    // 输入不含 '.'
//	}
//
// # 并发
//
// [Addr] 的缓存字段无锁保护，设计为由单一会话独占持有。
// "替换地址" 通过创建新的 [Addr] 完成，已有实例永不修改。
package xipaddr
