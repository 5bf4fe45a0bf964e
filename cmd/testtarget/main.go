// testtarget is the combined debugger smoke target: one binary that drives
// the execution counter loop, the four local-variable functions, and the
// full set of argument shapes in a single run. Unlike stacktarget, the
// argument-shape functions here do not call each other; each is visited
// directly from main so a whole-session test can walk every capability
// without caring about chain depth.
package main

import (
	"fmt"
	"io"
	"os"
)

type Point struct {
	x float32
	y float32
}

//go:noinline
func funcWithNoArgs() bool {
	return true
}

//go:noinline
func funcWithOneSimpleArg(a int32) int32 {
	return a
}

//go:noinline
func funcWithTwoArgs(b float32, c Point) float32 {
	return b + c.x + c.y
}

//go:noinline
func funcWithThreeArgs(d int64, e string, f []int32) bool {
	return true
}

// Location marker for funcWithOneSimpleLocalVariable.
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

// out is only swapped by the tests to capture the emitted sequence.
var out io.Writer = os.Stdout

type intSequence struct {
	next int32
}

//go:noinline
func (s *intSequence) Next() int32 {
	n := s.next
	s.next++
	return n
}

var sequence intSequence

//go:noinline
func getNextInt() int32 {
	return sequence.Next()
}

//go:noinline
func printNextInt() {
	nextInt := getNextInt()
	fmt.Fprintf(out, "%d\n", nextInt)
}

func run() {
	for i := 0; i < 10; i++ {
		printNextInt()
	}

	funcWithOneSimpleLocalVariable()
	funcWithOneComplexLocalVariable()
	funcWithTwoLocalVariables()
	funcWithThreeLocalVariables()

	funcWithNoArgs()
	funcWithOneSimpleArg(5)
	funcWithTwoArgs(7.0, Point{7.0, 9.0})
	threeInts := [3]int32{1, 2, 3}
	funcWithThreeArgs(300, "Test", threeInts[:])
}

func main() {
	run()
}
