package xnet

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDottedQuad(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"192.168.1.1", "192.168.1.1"},
		{"10.0.0.1", "10.0.0.1"},
		{"0.0.0.0", "0.0.0.0"},
		{"255.255.255.255", "255.255.255.255"},
		{"192.168.001.001", "192.168.1.1"},
		{"010.000.000.001", "10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr, err := ParseDottedQuad(tt.input)
			require.NoError(t, err)
			assert.True(t, addr.Is4())
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestParseDottedQuad_Malformed(t *testing.T) {
	malformed := []string{
		"",              // 空串
		"1.2.3",         // 3 段
		"1.2.3.4.5",     // 5 段
		"1..3.4",        // 空段
		".1.2.3",        // 前导点
		"1.2.3.",        // 尾部点
		"1.2.3.+4",      // 符号前缀
		"1.2.3.-4",      // 负数
		"1.2.3. 4",      // 空白
		"1.2.3.256",     // 超范围
		"999.1.1.1",     // 超范围
		"abc.def.ghi.j", // 非数字字符
		"::ffff:1.2.3.4",
	}
	for _, s := range malformed {
		_, err := ParseDottedQuad(s)
		assert.ErrorIs(t, err, ErrInvalidAddress, "ParseDottedQuad(%q) should wrap ErrInvalidAddress", s)
	}
}

func TestFormatBinaryAddr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"192.168.1.1", "11000000101010000000000100000001"},
		{"0.0.0.0", strings.Repeat("0", 32)},
		{"255.255.255.255", strings.Repeat("1", 32)},
		{"10.0.0.1", "00001010000000000000000000000001"},
		{"128.0.0.0", "1" + strings.Repeat("0", 31)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FormatBinaryAddr(netip.MustParseAddr(tt.input))
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 32)
		})
	}

	// IPv4-mapped IPv6 按 IPv4 处理
	mapped := netip.MustParseAddr("::ffff:192.168.1.1")
	assert.Equal(t, "11000000101010000000000100000001", FormatBinaryAddr(mapped))

	// 纯 IPv6 和无效地址
	assert.Equal(t, "", FormatBinaryAddr(netip.MustParseAddr("::1")))
	assert.Equal(t, "", FormatBinaryAddr(netip.Addr{}))
}

func TestFormatBinaryOctet(t *testing.T) {
	tests := []struct {
		v    uint64
		want string
	}{
		{0, "00000000"},
		{1, "00000001"},
		{5, "00000101"},
		{168, "10101000"},
		{255, "11111111"},
		// 只补零不截断
		{256, "100000000"},
		{999, "1111100111"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBinaryOctet(tt.v), "FormatBinaryOctet(%d)", tt.v)
	}
}

func TestFormatBinaryAddrMatchesOctets(t *testing.T) {
	// 32 位格式化结果应等于各段单独格式化后拼接
	for _, s := range []string{"192.168.1.1", "172.16.254.3", "1.2.3.4"} {
		addr := netip.MustParseAddr(s)
		b := addr.As4()
		var sb strings.Builder
		for _, o := range b {
			sb.WriteString(FormatBinaryOctet(uint64(o)))
		}
		assert.Equal(t, sb.String(), FormatBinaryAddr(addr), s)
	}
}
