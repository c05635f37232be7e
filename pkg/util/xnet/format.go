package xnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// octetBits 每个八位段的二进制位数。
const octetBits = 8

// ParseDottedQuad 严格解析 IPv4 点分十进制地址。
//
// 要求恰好 4 段，每段为 0~255 的十进制整数。允许前导零（"192.168.001.001"），
// 拒绝空段、符号前缀和空白（如 "1..3.4"、"1.2.3.+4"、"1.2.3. 4"）。
func ParseDottedQuad(s string) (netip.Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return netip.Addr{}, fmt.Errorf("%w: want 4 octets, got %d in %q", ErrInvalidAddress, len(parts), s)
	}
	var b [4]byte
	for i, p := range parts {
		// strconv.ParseUint 本身不接受 + 前缀和空白，无需额外校验
		n, err := strconv.ParseUint(p, 10, octetBits)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: invalid octet %q", ErrInvalidAddress, p)
		}
		b[i] = byte(n)
	}
	return netip.AddrFrom4(b), nil
}

// FormatBinaryAddr 将 IPv4 地址格式化为 32 位二进制字符串，高位在前。
// 例如：192.168.1.1 → "11000000101010000000000100000001"
//
// IPv4-mapped IPv6 地址按 IPv4 处理。纯 IPv6 或无效地址返回空字符串。
func FormatBinaryAddr(addr netip.Addr) string {
	v, ok := AddrToUint32(addr)
	if !ok {
		return ""
	}
	var buf [32]byte
	for i := range buf {
		buf[i] = '0' + byte(v>>(31-i)&1)
	}
	return string(buf[:])
}

// FormatBinaryOctet 将单个段值格式化为二进制字符串，左侧补零至至少 8 位。
//
// 超过 255 的值不截断，结果长度大于 8（如 256 → "100000000"）。
func FormatBinaryOctet(v uint64) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= octetBits {
		return s
	}
	return strings.Repeat("0", octetBits-len(s)) + s
}
