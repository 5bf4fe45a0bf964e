package target

// Descriptor catalogs every target binary in the suite. The values below are
// the ground truth an external debugger harness asserts against; they must
// match the literal initializers in the cmd/*target sources exactly, and the
// package tests check the invariants both ways.
var Descriptor = NewTargetsDescriptor([]*TargetDescriptor{
	stackTarget,
	dataTarget,
	watchTarget,
	execTarget,
	threadsTarget,
	testTarget,
})

var stackTarget = &TargetDescriptor{
	Name:    "stack",
	Binary:  "stacktarget",
	Summary: "Call chains of known depth and argument layout, plus functions with zero to three initialized locals of escalating complexity.",
	Capabilities: []Capability{
		CapStackUnwinding,
		CapVariableEnumeration,
	},
	Chains: []CallChain{
		{
			Name: "frame-levels",
			Frames: []FrameDescriptor{
				{Function: "funcAtFrameLevel1"},
				{Function: "funcAtFrameLevel0"},
			},
		},
		{
			// each function calls the next simpler one before using its own
			// arguments, so breaking in any callee shows the full caller
			// chain with these argument values
			Name: "argument-shapes",
			Frames: []FrameDescriptor{
				{
					Function: "funcWithThreeArgs",
					Args: []VariableDescriptor{
						{Name: "d", Type: "int64", Value: int64(300)},
						{Name: "e", Type: "string", Value: "Test"},
						// declared as a slice view of a [3]int32: size
						// information is really lost at the call boundary,
						// the debugger must show a pointer with this target
						{Name: "f", Type: "[]int32", Value: []int32{1, 2, 3}},
					},
				},
				{
					Function: "funcWithTwoArgs",
					Args: []VariableDescriptor{
						{Name: "b", Type: "float32", Value: float32(7.0)},
						{Name: "c", Type: "Point", Value: Point{X: 7.0, Y: 9.0}},
					},
				},
				{
					Function: "funcWithOneSimpleArg",
					Args: []VariableDescriptor{
						{Name: "a", Type: "int32", Value: int32(5)},
					},
				},
				{Function: "funcWithNoArgs"},
			},
		},
	},
	Frames: []FrameDescriptor{
		{
			Function: "funcWithOneSimpleLocalVariable",
			Marker:   "funcWithOneSimpleLocalVariable_Inner",
			Locals: []VariableDescriptor{
				{Name: "a", Type: "int32", Value: int32(5)},
			},
		},
		{
			Function: "funcWithOneComplexLocalVariable",
			Marker:   "funcWithOneComplexLocalVariable_Inner",
			Locals: []VariableDescriptor{
				{Name: "b", Type: "[3]int32", Value: []int32{3, 5, 7}},
			},
		},
		{
			Function: "funcWithTwoLocalVariables",
			Marker:   "funcWithTwoLocalVariables_Inner",
			Locals: []VariableDescriptor{
				{Name: "c", Type: "bool", Value: true},
				{Name: "d", Type: "[3]string", Value: []string{"This", "is", "Dog"}},
			},
		},
		{
			Function: "funcWithThreeLocalVariables",
			Marker:   "funcWithThreeLocalVariables_Inner",
			Locals: []VariableDescriptor{
				{Name: "e", Type: "Point", Value: Point{X: 5, Y: 10}},
				{Name: "f", Type: "float32", Value: float32(9.5)},
				{Name: "g", Type: "int64", Value: int64(300)},
			},
		},
	},
}

var dataTarget = &TargetDescriptor{
	Name:    "data",
	Binary:  "datatarget",
	Summary: "Mixed scalar and aggregate locals for expression evaluation, and a byte buffer with literal contents for raw memory reads.",
	Capabilities: []Capability{
		CapExpressionEvaluation,
		CapMemoryAccess,
	},
	Frames: []FrameDescriptor{
		{
			Function: "expressionEvaluation",
			Marker:   "expressionEvaluationBreakpoint",
			Locals: []VariableDescriptor{
				{Name: "a", Type: "int32", Value: int32(1)},
				{Name: "b", Type: "int32", Value: int32(2)},
				{Name: "c", Type: "Point", Value: Point{X: 5, Y: 5}},
			},
		},
		{
			Function: "memoryAccess",
			Marker:   "memoryAccessBreakpoint",
			Locals: []VariableDescriptor{
				{Name: "array", Type: "[4]byte", Value: []byte{0x01, 0x02, 0x03, 0x04}},
			},
			Memory: []MemoryDescriptor{
				{Variable: "array", Bytes: []byte{0x01, 0x02, 0x03, 0x04}},
			},
		},
	},
}

var watchTarget = &TargetDescriptor{
	Name:    "watch",
	Binary:  "watchtarget",
	Summary: "Locals mutated after a marked point, all writes on one source line, including mutation through aggregate field access; the outer frame holds a pointer aliasing a float it never writes through.",
	Capabilities: []Capability{
		CapWatch,
	},
	Chains: []CallChain{
		{
			Name: "watch",
			Frames: []FrameDescriptor{
				{
					Function: "funcWithVariablesToWatch",
					Locals: []VariableDescriptor{
						{Name: "e", Type: "int32", Value: int32(5)},
						{Name: "f", Type: "float32", Value: float32(5)},
						// alias of f in the same frame; never written
						// through, and never outlives the frame
						{Name: "g", Type: "*float32", Value: "&f"},
					},
				},
				{
					Function: "funcWithMoreVariablesToWatch",
					Marker:   "funcWithMoreVariablesToWatch_Inner",
					Locals: []VariableDescriptor{
						{Name: "e", Type: "Point", Value: Point{X: 5, Y: 10}},
						{Name: "f", Type: "float32", Value: float32(9.5)},
					},
					Watches: []WatchDescriptor{
						{Variable: "e", Before: Point{X: 5, Y: 10}, After: Point{X: 1, Y: 1}},
						{Variable: "f", Before: float32(9.5), After: float32(11)},
					},
				},
			},
		},
	},
}

var execTarget = &TargetDescriptor{
	Name:    "exec",
	Binary:  "exectarget",
	Summary: "A persistent counter incremented once per call; a breakpoint on getNextInt hit repeatedly observes a strictly increasing value, and the process output is the exact sequence below.",
	Capabilities: []Capability{
		CapExecutionStepping,
	},
	OutputLines: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
}

var threadsTarget = &TargetDescriptor{
	Name:    "threads",
	Binary:  "threadtarget",
	Summary: "Spawns a caller-specified total number of OS threads, each stack-walkable in funcA, and joins them all before exiting.",
	Capabilities: []Capability{
		CapThreadEnumeration,
	},
	ThreadFlag:     "--threads",
	DefaultThreads: 1,
	Chains: []CallChain{
		{
			Name: "worker",
			Frames: []FrameDescriptor{
				{Function: "worker"},
				{Function: "funcA"},
			},
		},
	},
}

var testTarget = &TargetDescriptor{
	Name:    "test",
	Binary:  "testtarget",
	Summary: "Combined smoke target: counter loop, all local-variable functions and all argument shapes in one run, with the argument functions called directly from the entry point.",
	Capabilities: []Capability{
		CapExecutionStepping,
		CapVariableEnumeration,
		CapStackUnwinding,
	},
	Frames: []FrameDescriptor{
		{
			Function: "funcWithOneSimpleLocalVariable",
			Marker:   "funcWithOneSimpleLocalVariable_Inner",
			Locals: []VariableDescriptor{
				{Name: "a", Type: "int32", Value: int32(5)},
			},
		},
		{
			Function: "funcWithOneComplexLocalVariable",
			Marker:   "funcWithOneComplexLocalVariable_Inner",
			Locals: []VariableDescriptor{
				{Name: "b", Type: "[3]int32", Value: []int32{3, 5, 7}},
			},
		},
		{
			Function: "funcWithTwoLocalVariables",
			Marker:   "funcWithTwoLocalVariables_Inner",
			Locals: []VariableDescriptor{
				{Name: "c", Type: "bool", Value: true},
				{Name: "d", Type: "[3]string", Value: []string{"This", "is", "Dog"}},
			},
		},
		{
			Function: "funcWithThreeLocalVariables",
			Marker:   "funcWithThreeLocalVariables_Inner",
			Locals: []VariableDescriptor{
				{Name: "e", Type: "Point", Value: Point{X: 5, Y: 10}},
				{Name: "f", Type: "float32", Value: float32(9.5)},
				{Name: "g", Type: "int64", Value: int64(300)},
			},
		},
	},
	OutputLines: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
}
