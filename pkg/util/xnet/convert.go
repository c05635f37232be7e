package xnet

import (
	"encoding/binary"
	"net/netip"
)

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// IPv4-mapped IPv6 地址按 IPv4 处理，纯 IPv6 和无效地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, false
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:]), true
}
