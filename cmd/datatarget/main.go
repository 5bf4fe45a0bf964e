// datatarget is a debugger test target for expression evaluation and raw
// memory reads. expressionEvaluation establishes mixed scalar and aggregate
// locals for the debugger to combine in expressions; memoryAccess establishes
// a byte buffer with known contents at a known address range. Both call
// their marker immediately after the last state-establishing statement, and
// nothing between the two may touch the established values.
package main

type Point struct {
	x float32
	y float32
}

// get10 and getInt exist so expression tests can call functions in the
// debuggee; main references them to keep the linker from discarding them.

//go:noinline
func get10() int32 {
	return 10
}

//go:noinline
func getInt(someInt int32) int32 {
	return someInt
}

// Location marker for expressionEvaluation.
//
//go:noinline
func expressionEvaluationBreakpoint() {
}

//go:noinline
func expressionEvaluation() {
	a := int32(1)
	b := int32(2)
	c := Point{5, 5}

	expressionEvaluationBreakpoint()
	_, _, _ = a, b, c
}

// Location marker for memoryAccess.
//
//go:noinline
func memoryAccessBreakpoint() {
}

//go:noinline
func memoryAccess() {
	array := [4]byte{0x01, 0x02, 0x03, 0x04}

	memoryAccessBreakpoint()
	_ = array
}

func main() {
	expressionEvaluation()
	memoryAccess()

	_ = get10()
	_ = getInt(10)
}
