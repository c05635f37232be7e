package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/omeyang/ipconv/pkg/observability/xlog"
	"github.com/omeyang/ipconv/pkg/util/xipaddr"
)

// 控制台协议文本。
const (
	Greeting      = "Hello! I'm an IP addresses converter!"
	PromptAddress = "IP Address: "
	PromptCommand = "> "
	MsgUnexpected = "Unexpected command. Try again."
	MsgGoodbye    = "Goodbye!"
)

// 命令关键字（十进制视图关键字可配置）。
const (
	cmdBinary  = "binary"
	cmdDecimal = "decimal"
	cmdNew     = "new"
	cmdExit    = "exit"
)

// Option 定义 Session 可选配置函数类型。
type Option func(*Session)

// WithLogger 设置日志记录器，默认丢弃。
func WithLogger(logger xlog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDecimalKeyword 设置十进制视图命令关键字（decimal 或 digit）。
// 空字符串保持默认值 decimal。
func WithDecimalKeyword(keyword string) Option {
	return func(s *Session) {
		if keyword != "" {
			s.decimalKeyword = strings.ToLower(keyword)
		}
	}
}

// WithStrict 设置新建地址是否使用严格八位段校验。
func WithStrict(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// Session 单线程交互会话。
//
// 从 in 逐行读取输入，向 out 输出提示和结果。
// 会话独占持有当前地址，"new" 命令以新建的地址替换旧地址。
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	logger xlog.Logger

	decimalKeyword string
	strict         bool

	state State
	addr  *xipaddr.Addr
}

// New 创建会话。
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:             bufio.NewScanner(in),
		out:            out,
		logger:         xlog.Discard(),
		decimalKeyword: cmdDecimal,
		state:          StateAwaitingAddress,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(xlog.Component("session"))
	return s
}

// State 返回当前状态。
func (s *Session) State() State {
	return s.state
}

// Addr 返回当前持有的地址，尚未读取地址时为 nil。
func (s *Session) Addr() *xipaddr.Addr {
	return s.addr
}

// Run 运行会话直到 exit 命令、输入结束或出错。
//
// 地址构造失败、二进制转换失败和输入结束（[ErrInputClosed]）都会结束会话并返回错误，
// 不做重试。ctx 在每条命令之间检查，读取本身是阻塞的。
// 返回后会话进入 [StateTerminated]。
func (s *Session) Run(ctx context.Context) error {
	if s.state == StateTerminated {
		return ErrTerminated
	}
	defer func() { s.state = StateTerminated }()

	fmt.Fprintln(s.out, Greeting)
	if err := s.replaceAddr(ctx); err != nil {
		return err
	}
	s.state = StateReady

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, PromptCommand)
		line, err := s.readLine()
		if err != nil {
			return err
		}

		exit, err := s.dispatch(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// dispatch 执行单条命令，返回 true 表示应该退出。
//
// 设计决策: 整行转小写后与关键字精确比较，不去除首尾空白，
// " binary" 视为未知命令。
func (s *Session) dispatch(ctx context.Context, line string) (bool, error) {
	switch strings.ToLower(line) {
	case cmdBinary:
		bin, err := s.addr.Binary()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, bin)
	case s.decimalKeyword:
		fmt.Fprintln(s.out, s.addr.Decimal())
	case cmdNew:
		if err := s.replaceAddr(ctx); err != nil {
			return false, err
		}
	case cmdExit:
		fmt.Fprintln(s.out, MsgGoodbye)
		s.logger.Debug(ctx, "session terminated")
		return true, nil
	default:
		s.logger.Debug(ctx, "unexpected command", xlog.Command(line))
		fmt.Fprintln(s.out, MsgUnexpected)
	}
	return false, nil
}

// replaceAddr 提示并读取一行地址，构造成功后替换当前地址。
func (s *Session) replaceAddr(ctx context.Context) error {
	fmt.Fprint(s.out, PromptAddress)
	line, err := s.readLine()
	if err != nil {
		return err
	}

	addr, err := xipaddr.New(line, xipaddr.WithStrict(s.strict))
	if err != nil {
		return err
	}
	s.addr = addr
	s.logger.Debug(ctx, "address set", xlog.Address(addr.Decimal()))
	return nil
}

// readLine 读取一行输入（不含换行符）。
// 输入结束返回 ErrInputClosed。
func (s *Session) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("session: read input: %w", err)
	}
	return "", ErrInputClosed
}
