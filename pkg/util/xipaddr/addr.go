package xipaddr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/ipconv/pkg/util/xnet"
)

// separator 点分十进制的段分隔符。
const separator = "."

// Option 定义 Addr 可选配置函数类型。
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict 设置二进制转换是否使用严格校验。
//
// 宽松模式（默认）：每段只要是非负十进制整数即可，不校验段数和 0~255 范围。
// 严格模式：要求恰好 4 段且每段在 0~255 之间，否则 [Addr.Binary] 返回 [ErrFormat]。
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Addr 表示一个 IPv4 点分十进制地址。
//
// 构造后不可变：原始文本原样保存，十进制视图直接返回该文本，
// 二进制视图在首次请求时计算并缓存。
// 非并发安全，由单一持有者使用。
type Addr struct {
	text   string
	strict bool

	computed  bool
	binary    string
	binaryErr error
}

// New 从字符串创建 Addr。
// 仅校验 s 包含 '.'，否则返回 [ErrInvalidAddress]。
func New(s string, opts ...Option) (*Addr, error) {
	if !strings.Contains(s, separator) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Addr{text: s, strict: o.strict}, nil
}

// Decimal 返回构造时传入的原始文本，不做任何规范化。
func (a *Addr) Decimal() string {
	return a.text
}

// String 实现 fmt.Stringer，等同于 [Addr.Decimal]。
func (a *Addr) String() string {
	return a.text
}

// Strict 报告是否使用严格校验模式。
func (a *Addr) Strict() bool {
	return a.strict
}

// Binary 返回地址的二进制表示。
//
// 对合法的 4 段地址（每段 0~255），结果恰好为 32 个 '0'/'1' 字符，
// 各段高位在前、按输入顺序拼接。
//
// 首次调用时计算，结果（包括错误）被缓存，后续调用直接返回缓存值。
func (a *Addr) Binary() (string, error) {
	if !a.computed {
		if a.strict {
			a.binary, a.binaryErr = strictBinary(a.text)
		} else {
			a.binary, a.binaryErr = lenientBinary(a.text)
		}
		a.computed = true
	}
	return a.binary, a.binaryErr
}

// lenientBinary 逐段解析为非负整数，左侧补零至 8 位后拼接。
//
// 设计决策: 不校验段数和取值范围。"1.2.3" 输出 24 位，"256.1.1.1" 首段输出 9 位。
// 各段允许首尾空白和一个 '+' 前缀（" 1"、"1 "、"+1"）。
// 非数字段（含空段、负数）返回 ErrFormat。
func lenientBinary(text string) (string, error) {
	parts := strings.Split(text, separator)

	var sb strings.Builder
	sb.Grow(len(parts) * 8)
	for _, p := range parts {
		n, err := strconv.ParseUint(lenientOctet(p), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q in %q", ErrFormat, p, text)
		}
		sb.WriteString(xnet.FormatBinaryOctet(n))
	}
	return sb.String(), nil
}

// lenientOctet 去除段的首尾空白和一个 '+' 前缀。
func lenientOctet(p string) string {
	p = strings.TrimSpace(p)
	return strings.TrimPrefix(p, "+")
}

// strictBinary 严格解析为 IPv4 地址后格式化为 32 位。
func strictBinary(text string) (string, error) {
	addr, err := xnet.ParseDottedQuad(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return xnet.FormatBinaryAddr(addr), nil
}
