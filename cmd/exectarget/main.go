// exectarget is a debugger test target for repeated-breakpoint and stepping
// semantics. It emits the integers 0 through 9, one per line, by calling the
// same function ten times; a debugger breaking in printNextInt on every hit
// must observe nextInt taking each value of the sequence in order.
package main

import (
	"fmt"
	"io"
	"os"
)

// out is only swapped by the tests to capture the emitted sequence; the
// debugged frames below never see it.
var out io.Writer = os.Stdout

// intSequence hands out consecutive integers starting at zero, one per
// call. It stands in for function-static state: the counter lives for the
// whole process and is only ever advanced through Next, never reset.
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
}

func main() {
	run()
}
