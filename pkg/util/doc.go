// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IPv4 地址工具，基于 net/netip 的点分四段解析、uint32 转换、二进制格式化
//   - xipaddr: 不可变地址值，保留原始文本并惰性缓存二进制视图
//
// 设计原则：
//   - 只依赖标准库 net/netip 类型，不引入新的地址表示
//   - 错误使用包级哨兵值，通过 errors.Is 判断
package util
