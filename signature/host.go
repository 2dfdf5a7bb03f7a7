package signature

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

// DefaultScriptTimeout bounds a single descrambler call.
const DefaultScriptTimeout = 2 * time.Second

// ScriptHost compiles scripts for a sandboxed interpreter.
type ScriptHost interface {
	Compile(name, source string) (Script, error)
}

// Script is a compiled script whose global functions can be called with a
// single string argument.
type Script interface {
	Invoke(ctx context.Context, fn, arg string) (string, error)
}

// GojaHost runs scripts in goja. Every call gets a fresh runtime, so a
// Script is safe for concurrent use and no state survives between calls.
type GojaHost struct {
	Timeout time.Duration
}

// NewGojaHost returns a host with the default timeout.
func NewGojaHost() *GojaHost {
	return &GojaHost{Timeout: DefaultScriptTimeout}
}

func (h *GojaHost) Compile(name, source string) (Script, error) {
	prog, err := goja.Compile(name, source, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultScriptTimeout
	}
	return &gojaScript{prog: prog, timeout: timeout}, nil
}

type gojaScript struct {
	prog    *goja.Program
	timeout time.Duration
}

func (s *gojaScript) Invoke(ctx context.Context, fn, arg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	vm := goja.New()
	timer := time.AfterFunc(s.timeout, func() {
		vm.Interrupt(ErrScriptTimeout)
	})
	defer timer.Stop()
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	if _, err := vm.RunProgram(s.prog); err != nil {
		return "", s.wrap(ctx, err)
	}
	call, ok := goja.AssertFunction(vm.Get(fn))
	if !ok {
		return "", fmt.Errorf("%w: %s is not a function", ErrDescramble, fn)
	}
	v, err := call(goja.Undefined(), vm.ToValue(arg))
	if err != nil {
		return "", s.wrap(ctx, err)
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return "", fmt.Errorf("%w: %s returned %v", ErrDescramble, fn, v)
	}
	return v.String(), nil
}

func (s *gojaScript) wrap(ctx context.Context, err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		return ErrScriptTimeout
	}
	return fmt.Errorf("run descrambler: %w", err)
}
