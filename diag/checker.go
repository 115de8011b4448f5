package diag

import (
	"fmt"

	"go.uber.org/zap"
)

// Checker is a Reporter that logs failed assertions at critical level
// before breaking.
type Checker struct {
	log *Logger
	brk BreakFunc
}

// NewChecker returns a Checker logging to l and halting with brk.
// A nil l discards the log lines; a nil brk is Panic.
func NewChecker(l *Logger, brk BreakFunc) *Checker {
	if l == nil {
		l = NopLogger()
	}
	if brk == nil {
		brk = Panic
	}
	return &Checker{log: l, brk: brk}
}

// Assert logs the location and the formatted description at critical level
// when ok is false.
func (c *Checker) Assert(ok bool, loc Location, format string, args ...any) bool {
	if ok {
		return true
	}
	c.log.Critical("ASSERTION FAILED -- " + loc.String())
	c.log.Critical(fmt.Sprintf(format, args...), zap.String("func", loc.Func))
	return false
}

// Break flushes the log and hands v to the break function.
func (c *Checker) Break(v *Violation) {
	c.log.Sync()
	c.brk(v)
}
