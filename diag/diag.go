// Package diag is the failure-reporting collaborator the allocators call into
// when one of their own invariants does not hold.
//
// The allocators never log and never stop the process themselves. They call
// Check with the injected Reporter. The Reporter decides what a failed check
// looks like (a log line, a debugger trap, a panic) and Break must not return.
//
// A host that wants the failures logged initializes the process logger once,
// builds a Checker from it and hands that to every allocator it creates:
//
//	if err := diag.Init(diag.LevelInfo, diag.SinkColorStdout|diag.SinkFile); err != nil {
//		return err
//	}
//	defer diag.Teardown()
//
//	chk := diag.NewChecker(diag.Process(), diag.Panic)
//	objects := pool.New[Particle](4096, pool.WithReporter(chk))
package diag

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location is the source position a check was made from.
type Location struct {
	File string
	Line int
	Func string
}

// String formats the location as file:line with the directory stripped.
func (l Location) String() string {
	if l.File == "" {
		return "???"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}

// Caller returns the location skip frames above the function calling Caller.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Func = fn.Name()
	}
	return loc
}

// Violation describes a failed invariant. Break functions panic with it.
type Violation struct {
	Loc Location
	Msg string
}

// Error formats the violation as file:line: message.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Loc, v.Msg)
}

// Reporter receives failed invariant checks.
//
// Assert is called with the evaluated condition and returns whether it held.
// When it returns false, Break is called and must not return.
type Reporter interface {
	Assert(ok bool, loc Location, format string, args ...any) bool
	Break(v *Violation)
}

// Check asserts ok through r. A failed assertion calls r.Break.
func Check(r Reporter, ok bool, format string, args ...any) {
	if ok {
		return
	}
	loc := Caller(1)
	if r.Assert(false, loc, format, args...) {
		return
	}
	r.Break(&Violation{Loc: loc, Msg: fmt.Sprintf(format, args...)})
	panic("diag: Break returned")
}

// BreakFunc halts the process, or at least the current goroutine, on a
// violation.
type BreakFunc func(v *Violation)

// Panic panics with v.
func Panic(v *Violation) {
	panic(v)
}

// Trap raises SIGTRAP where the platform has it. The Go runtime kills the
// process on that signal unless a debugger catches it first. Trap panics
// with v only if the process survives the signal, which is always the case
// on platforms without SIGTRAP.
func Trap(v *Violation) {
	raiseTrap()
	panic(v)
}

type panicReporter struct{}

// PanicReporter is the Reporter used when none is injected. It does not log.
var PanicReporter Reporter = panicReporter{}

func (panicReporter) Assert(ok bool, _ Location, _ string, _ ...any) bool {
	return ok
}

func (panicReporter) Break(v *Violation) {
	Panic(v)
}

// OrDefault returns r, or PanicReporter when r is nil.
func OrDefault(r Reporter) Reporter {
	if r == nil {
		return PanicReporter
	}
	return r
}
