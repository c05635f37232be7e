// Package xnet 提供 IPv4 地址工具函数。
//
// xnet 基于 Go 标准库 [net/netip] 构建，直接使用 [netip.Addr] 值类型，
// 提供严格解析、二进制格式化和 uint32 互转等增量函数。
//
// # 核心功能
//
//   - convert.go: [AddrToUint32] 将 IPv4 地址转换为 uint32
//   - format.go: [ParseDottedQuad] 严格解析、[FormatBinaryAddr] 32 位二进制格式化、
//     [FormatBinaryOctet] 单段二进制格式化
//
// # 快速示例
//
//	addr, _ := xnet.ParseDottedQuad("192.168.1.1")
//	fmt.Println(xnet.FormatBinaryAddr(addr)) // 11000000101010000000000100000001
//	fmt.Println(xnet.FormatBinaryOctet(5))   // 00000101
//
// # 输入行为说明
//
// [ParseDottedQuad] 使用严格解析模式，与 [netip.ParseAddr] 的区别：
//   - 接受带前导零的八位段（"010.000.000.001"），netip.ParseAddr 会拒绝
//   - 拒绝带有前导/尾随空白、+ 或 - 前缀的八位段
//   - 段数必须为 4，每段必须在 0~255 之间
//
// [FormatBinaryAddr] 对 IPv4-mapped IPv6 地址先 Unmap 再格式化，
// 对纯 IPv6 和无效地址返回空字符串（调用方通过长度判断）。
//
// [FormatBinaryOctet] 只补零不截断：值 ≥ 256 时输出超过 8 位。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xnet.ParseDottedQuad("1.2.3")
//	if errors.Is(err, xnet.ErrInvalidAddress) {
//	    // 处理无效地址
//	}
package xnet
