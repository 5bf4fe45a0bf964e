// watchtarget is a debugger test target for value-change watches. The inner
// function initializes an aggregate and a scalar, hits its marker, then
// mutates all three values in a single statement on a single source line, so
// a harness cannot separate the writes by stepping line by line. The outer
// function additionally holds a pointer aliasing one of its own floats; the
// pointer is never written through, which is intentional: the watch on the
// pointee must reflect mutation done by direct assignment elsewhere, not
// through the alias.
package main

type Point struct {
	x float32
	y float32
}

// Location marker for funcWithMoreVariablesToWatch.
//
//go:noinline
func funcWithMoreVariablesToWatch_Inner() bool {
	return true
}

//go:noinline
func funcWithMoreVariablesToWatch() {
	e := Point{5, 10}
	f := float32(9.5)
	_ = f

	funcWithMoreVariablesToWatch_Inner()

	// the watch tests expect all three writes to land on the same line
	e.x, e.y, f = 1, 1, 11
	// this return statement may seem redundant but the tests step onto it
	// to observe the mutated values before the frame goes away
	return
}

//go:noinline
func funcWithVariablesToWatch() {
	e := int32(5)
	f := float32(5)
	g := &f

	funcWithMoreVariablesToWatch()
	_, _ = e, g
	return
}

func main() {
	funcWithVariablesToWatch()
}
