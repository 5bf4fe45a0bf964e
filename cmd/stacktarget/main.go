// stacktarget is a debugger test target that establishes call chains of
// known depth and argument layout, plus a set of functions with zero to
// three local variables of escalating complexity.
//
// A debugger harness attached to this process sets its breakpoints on the
// marker functions (the *_Inner siblings) or on the innermost function of a
// call chain, never on absolute line numbers, so edits to this file cannot
// silently move a breakpoint. Every function a harness may break in is
// marked go:noinline to keep its symbol and call sites intact regardless of
// optimization settings.
package main

type Point struct {
	x float32
	y float32
}

//go:noinline
func funcWithNoArgs() {
}

//go:noinline
func funcWithOneSimpleArg(a int32) int32 {
	funcWithNoArgs()
	return a
}

//go:noinline
func funcWithTwoArgs(b float32, c Point) float32 {
	funcWithOneSimpleArg(5)
	return b + c.x + c.y
}

// The slice parameter is deliberate: the caller holds a fixed-size array
// but the callee only ever sees an unsized view of it, so a debugger must
// present f as a pointer-like value with a known target rather than as an
// array. Do not change this to a [3]int32.
//
//go:noinline
func funcWithThreeArgs(d int64, e string, f []int32) {
	funcWithTwoArgs(7.0, Point{7.0, 9.0})
}

// Location marker for funcWithOneSimpleLocalVariable. Breakpoints go on
// this call instead of a source line number, which would shift every time
// this file is edited to accommodate new tests.
//
//go:noinline
func funcWithOneSimpleLocalVariable_Inner() bool {
	return true
}

//go:noinline
func funcWithOneSimpleLocalVariable() {
	a := int32(5)

	funcWithOneSimpleLocalVariable_Inner()
	_ = a
}

// Location marker for funcWithOneComplexLocalVariable.
//
//go:noinline
func funcWithOneComplexLocalVariable_Inner() bool {
	return true
}

//go:noinline
func funcWithOneComplexLocalVariable() {
	b := [3]int32{3, 5, 7}

	funcWithOneComplexLocalVariable_Inner()
	_ = b
}

// Location marker for funcWithTwoLocalVariables.
//
//go:noinline
func funcWithTwoLocalVariables_Inner() bool {
	return true
}

//go:noinline
func funcWithTwoLocalVariables() {
	c := true
	d := [3]string{"This", "is", "Dog"}

	funcWithTwoLocalVariables_Inner()
	_, _ = c, d
}

// Location marker for funcWithThreeLocalVariables.
//
//go:noinline
func funcWithThreeLocalVariables_Inner() bool {
	return true
}

//go:noinline
func funcWithThreeLocalVariables() float32 {
	e := Point{5, 10}
	f := float32(9.5)
	g := int64(300)

	funcWithThreeLocalVariables_Inner()
	// the return value is irrelevant, the arithmetic only keeps the locals
	// alive so the debugger can still read them at the marker
	return e.x + e.y + f + float32(g)
}

//go:noinline
func funcAtFrameLevel0() {
}

//go:noinline
func funcAtFrameLevel1() {
	funcAtFrameLevel0()
}

func main() {
	funcAtFrameLevel1()

	funcWithOneSimpleLocalVariable()
	funcWithOneComplexLocalVariable()
	funcWithTwoLocalVariables()
	funcWithThreeLocalVariables()

	threeInts := [3]int32{1, 2, 3}
	funcWithThreeArgs(300, "Test", threeInts[:])
}
