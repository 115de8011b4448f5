package diag

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCheckPassesWithoutBreaking(t *testing.T) {
	c := qt.New(t)
	r := &recorder{}
	Check(r, true, "never %s", "formatted")
	c.Assert(r.asserts, qt.Equals, 0)
	c.Assert(r.breaks, qt.HasLen, 0)
}

func TestCheckReportsCallerLocation(t *testing.T) {
	c := qt.New(t)
	r := &recorder{}
	c.Assert(func() { Check(r, false, "value %d out of range", 7) }, qt.PanicMatches, "diag: Break returned")
	c.Assert(r.breaks, qt.HasLen, 1)

	v := r.breaks[0]
	c.Assert(v.Msg, qt.Equals, "value 7 out of range")
	c.Assert(filepath.Base(v.Loc.File), qt.Equals, "diag_test.go")
	c.Assert(v.Loc.Line > 0, qt.IsTrue)
	c.Assert(v.Loc.Func, qt.Contains, "TestCheckReportsCallerLocation")
}

func TestSoftAssertSkipsBreak(t *testing.T) {
	c := qt.New(t)
	r := &recorder{tolerate: true}
	Check(r, false, "tolerated")
	c.Assert(r.asserts, qt.Equals, 1)
	c.Assert(r.breaks, qt.HasLen, 0)
}

func TestPanicReporter(t *testing.T) {
	c := qt.New(t)
	c.Assert(OrDefault(nil), qt.Equals, PanicReporter)
	c.Assert(func() { Check(PanicReporter, false, "stack is %s", "empty") }, qt.PanicMatches, `diag_test\.go:\d+: stack is empty`)
}

func TestViolationIsError(t *testing.T) {
	c := qt.New(t)
	var err error = &Violation{Loc: Location{File: "/src/pool.go", Line: 12}, Msg: "foreign pointer"}
	c.Assert(err, qt.ErrorMatches, "pool.go:12: foreign pointer")
	c.Assert(Location{}.String(), qt.Equals, "???")
}

func TestCheckerLogsAndBreaks(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	l, err := NewLogger(LevelTrace, SinkStdout, WithConsole(&out))
	c.Assert(err, qt.IsNil)

	var got *Violation
	chk := NewChecker(l, func(v *Violation) {
		got = v
		panic(v)
	})
	c.Assert(func() { Check(chk, false, "The Stack is %s!", "full") }, qt.PanicMatches, `.*The Stack is full!`)
	c.Assert(got, qt.Not(qt.IsNil))
	c.Assert(got.Msg, qt.Equals, "The Stack is full!")

	logged := out.String()
	c.Assert(logged, qt.Contains, "[critical]")
	c.Assert(logged, qt.Contains, "ASSERTION FAILED -- diag_test.go:")
	c.Assert(logged, qt.Contains, "The Stack is full!")
}

func TestCheckerAssertHolds(t *testing.T) {
	c := qt.New(t)
	chk := NewChecker(nil, nil)
	c.Assert(chk.Assert(true, Location{}, "unused"), qt.IsTrue)
	c.Assert(chk.Assert(false, Location{}, "logged to nowhere"), qt.IsFalse)
	c.Assert(func() { chk.Break(&Violation{Msg: "halt"}) }, qt.PanicMatches, `\?\?\?: halt`)
}

func TestLoggerLevels(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	l, err := NewLogger(LevelTrace, SinkStdout, WithConsole(&out))
	c.Assert(err, qt.IsNil)
	c.Assert(l.Level(), qt.Equals, LevelTrace)

	l.Trace("trace line")
	c.Assert(out.String(), qt.Contains, "trace line")

	l.SetLevel(LevelInfo)
	c.Assert(l.Level(), qt.Equals, LevelInfo)
	out.Reset()
	l.Debug("hidden debug")
	l.Trace("hidden trace")
	l.Info("visible info")
	c.Assert(out.String(), qt.Not(qt.Contains), "hidden")
	c.Assert(out.String(), qt.Contains, "[info]")
	c.Assert(out.String(), qt.Contains, "visible info")

	l.SetLevel(LevelNone)
	out.Reset()
	l.Critical("silenced")
	c.Assert(out.String(), qt.Equals, "")
}

func TestLevelString(t *testing.T) {
	c := qt.New(t)
	c.Assert(LevelFatal.String(), qt.Equals, "fatal")
	c.Assert(LevelTrace.String(), qt.Equals, "trace")
	c.Assert(Level(42).String(), qt.Equals, "unknown")
}

func TestColorSinkMarksCritical(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	l, err := NewLogger(LevelFatal, SinkColorStdout, WithConsole(&out), WithName("engine"))
	c.Assert(err, qt.IsNil)
	l.Error("not at fatal threshold")
	l.Critical("boom")
	c.Assert(out.String(), qt.Not(qt.Contains), "not at fatal threshold")
	c.Assert(out.String(), qt.Contains, colorMagenta+"critical"+colorReset)
	c.Assert(out.String(), qt.Contains, "engine")
}

func TestFileSink(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "frame.log")
	l, err := NewLogger(LevelWarn, SinkFile, WithFilePath(path))
	c.Assert(err, qt.IsNil)
	l.Warn("low on pool slots")
	l.Info("dropped")
	c.Assert(l.Close(), qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "[warn]")
	c.Assert(string(data), qt.Contains, "low on pool slots")
	c.Assert(strings.Contains(string(data), "dropped"), qt.IsFalse)
}

func TestFileSinkOpenError(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	_, err := NewLogger(LevelInfo, SinkFile, WithFilePath(path))
	c.Assert(err, qt.ErrorMatches, `diag: open log file .*`)
}

func TestProcessLifecycle(t *testing.T) {
	c := qt.New(t)
	c.Assert(Process().Level(), qt.Equals, LevelNone)

	path := filepath.Join(t.TempDir(), "rogue.log")
	c.Assert(Init(LevelTrace, SinkFile, WithFilePath(path)), qt.IsNil)
	c.Cleanup(func() { _ = Teardown() })
	c.Assert(Process().Level(), qt.Equals, LevelTrace)

	SetLevel(LevelInfo)
	c.Assert(Process().Level(), qt.Equals, LevelInfo)

	Process().Info("frame started")
	c.Assert(Teardown(), qt.IsNil)
	c.Assert(Process().Level(), qt.Equals, LevelNone)
	c.Assert(Teardown(), qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "frame started")
}

// recorder captures Reporter calls. Its Break does not panic, which lets
// tests observe the guard in Check.
type recorder struct {
	tolerate bool
	asserts  int
	breaks   []*Violation
}

func (r *recorder) Assert(ok bool, _ Location, _ string, _ ...any) bool {
	r.asserts++
	return ok || r.tolerate
}

func (r *recorder) Break(v *Violation) {
	r.breaks = append(r.breaks, v)
}
