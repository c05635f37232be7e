package xipaddr

import (
	"net/netip"
	"strings"
	"testing"
)

func FuzzBinary(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("0.0.0.0")
	f.Add("255.255.255.255")
	f.Add("256.1.1.1")
	f.Add("1.2.3")
	f.Add("a.b.c.d")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := New(s)
		if err != nil {
			if strings.Contains(s, ".") {
				t.Fatalf("New(%q) failed: %v", s, err)
			}
			return
		}
		if a.Decimal() != s {
			t.Fatalf("Decimal() = %q, want %q", a.Decimal(), s)
		}
		bin, err := a.Binary()
		if err != nil {
			return
		}
		if strings.Trim(bin, "01") != "" {
			t.Fatalf("Binary(%q) = %q contains non-binary characters", s, bin)
		}
		// 合法的标准 IPv4 地址必须得到 32 位结果
		if addr, perr := netip.ParseAddr(s); perr == nil && addr.Is4() && len(bin) != 32 {
			t.Fatalf("Binary(%q) = %q, want 32 characters", s, bin)
		}
	})
}
