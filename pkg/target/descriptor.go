// Package target is the machine-readable catalog of the debugger test
// targets in this suite.
//
// Every target binary presents a debugger with a precisely known runtime
// state: known call chains, known argument and local values at marker
// functions, known memory contents, known output, known thread counts. The
// descriptors in this package record that expected state so an external
// debugger harness can use them as ground truth, and so the suite's own
// tests can check that catalog and target sources never drift apart.
//
// The breakpoint contract is part of the catalog: a harness breaks on the
// named marker function of a frame (or on the innermost function of a call
// chain), never on a source line number, so edits to a target file cannot
// silently relocate a breakpoint.
package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enlight/dbgmits/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Capability names the debugger feature a target exercises.
type Capability string

const (
	CapStackUnwinding       Capability = "stack-unwinding"
	CapVariableEnumeration  Capability = "variable-enumeration"
	CapExpressionEvaluation Capability = "expression-evaluation"
	CapMemoryAccess         Capability = "memory-access"
	CapWatch                Capability = "watch"
	CapExecutionStepping    Capability = "execution-stepping"
	CapThreadEnumeration    Capability = "thread-enumeration"
)

// Point mirrors the two-float aggregate used by the target sources. Targets
// keep their own unexported copy of the type; this one only appears as
// descriptor data.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// VariableDescriptor describes one argument or local a debugger must be
// able to decode in a frame: its source name, its declared type, and the
// exact value it holds when the frame's breakpoint location is reached.
type VariableDescriptor struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value any    `yaml:"value"`
}

func (v *VariableDescriptor) String() string {
	return fmt.Sprintf("%s %s = %v", v.Name, v.Type, v.Value)
}

// WatchDescriptor describes a value transition a watch on the variable must
// report: the initializer observed at the marker and the value observed
// after the frame's single mutating statement has executed.
type WatchDescriptor struct {
	Variable string `yaml:"variable"`
	Before   any    `yaml:"before"`
	After    any    `yaml:"after"`
}

// MemoryDescriptor describes a contiguous buffer whose address range a
// debugger must read back byte for byte. The bytes are per-byte literals in
// declaration order, so no endianness assumption is involved.
type MemoryDescriptor struct {
	Variable string `yaml:"variable"`
	Bytes    []byte `yaml:"bytes,flow"`
}

// FrameDescriptor describes one function invocation of interest: the state
// a debugger must observe in that frame when its marker is reached.
type FrameDescriptor struct {
	Function string               `yaml:"function"`
	Marker   string               `yaml:"marker,omitempty"`
	Args     []VariableDescriptor `yaml:"args,omitempty"`
	Locals   []VariableDescriptor `yaml:"locals,omitempty"`
	Watches  []WatchDescriptor    `yaml:"watches,omitempty"`
	Memory   []MemoryDescriptor   `yaml:"memory,omitempty"`
}

// Variables returns the frame's arguments followed by its locals.
func (f *FrameDescriptor) Variables() []VariableDescriptor {
	variables := make([]VariableDescriptor, 0, len(f.Args)+len(f.Locals))
	variables = append(variables, f.Args...)
	variables = append(variables, f.Locals...)
	return variables
}

// CallChain is an expected call stack, outermost frame first. The
// breakpoint that makes the whole chain observable goes on the innermost
// frame's marker, or on the innermost function itself when it carries no
// state of its own.
type CallChain struct {
	Name   string            `yaml:"name"`
	Frames []FrameDescriptor `yaml:"frames"`
}

// Returns the number of frames in the chain
func (c *CallChain) Depth() int {
	return len(c.Frames)
}

// Anchor returns the function the harness should set its breakpoint on to
// observe the chain.
func (c *CallChain) Anchor() string {
	if len(c.Frames) == 0 {
		return ""
	}

	inner := c.Frames[len(c.Frames)-1]
	if inner.Marker != "" {
		return inner.Marker
	}
	return inner.Function
}

// TargetDescriptor describes one target binary: what it is for, how to
// invoke it, and everything a debugger attached to it must observe.
type TargetDescriptor struct {
	Name         string       `yaml:"name"`
	Binary       string       `yaml:"binary"`
	Summary      string       `yaml:"summary"`
	Capabilities []Capability `yaml:"capabilities,flow"`

	// Standalone frames of interest, observed one at a time via their markers
	Frames []FrameDescriptor `yaml:"frames,omitempty"`

	// Expected call stacks
	Chains []CallChain `yaml:"chains,omitempty"`

	// Exact stdout of a full run, one entry per line; empty means the
	// target produces no output
	OutputLines []string `yaml:"output,omitempty"`

	// Thread-count argument contract, thread target only
	ThreadFlag     string `yaml:"thread_flag,omitempty"`
	DefaultThreads int    `yaml:"default_threads,omitempty"`
}

// Yaml returns the descriptor serialized as YAML, the form external
// harnesses consume.
func (t *TargetDescriptor) Yaml() (string, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to serialize descriptor of target '%s': %w", t.Name, err)
	}
	return string(data), nil
}

// Returns human readable documentation for the target
func (t *TargetDescriptor) DocString() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "## %s (%s)\n\n", t.Name, t.Binary)
	fmt.Fprintf(&builder, "%s\n\n", t.Summary)
	fmt.Fprintf(&builder, "Capabilities: %s\n", utils.FormatSlice(t.Capabilities, ", "))

	if t.ThreadFlag != "" {
		fmt.Fprintf(&builder, "\nArguments: %s <N> (total thread count, default %d, any other shape ignored)\n",
			t.ThreadFlag, t.DefaultThreads)
	}

	for _, chain := range t.Chains {
		fmt.Fprintf(&builder, "\nCall chain %s (depth %d, break on %s):\n", chain.Name, chain.Depth(), chain.Anchor())
		for _, frame := range chain.Frames {
			fmt.Fprintf(&builder, "  %s\n", frameDoc(&frame))
		}
	}

	if len(t.Frames) > 0 {
		fmt.Fprintf(&builder, "\nFrames:\n")
		for _, frame := range t.Frames {
			fmt.Fprintf(&builder, "  %s\n", frameDoc(&frame))
			for _, memory := range frame.Memory {
				fmt.Fprintf(&builder, "    memory %s: % X\n", memory.Variable, memory.Bytes)
			}
		}
	}

	if len(t.OutputLines) > 0 {
		fmt.Fprintf(&builder, "\nOutput: %s\n", utils.FormatSlice(t.OutputLines, ","))
	}

	return builder.String()
}

func frameDoc(frame *FrameDescriptor) string {
	variables := utils.Map(frame.Variables(), func(v VariableDescriptor) string { return v.String() })

	doc := fmt.Sprintf("%s(%s)", frame.Function, utils.FormatSlice(variables, ", "))
	if frame.Marker != "" {
		doc += fmt.Sprintf(" [break on %s]", frame.Marker)
	}
	for _, watch := range frame.Watches {
		doc += fmt.Sprintf(" watch %s: %v -> %v", watch.Variable, watch.Before, watch.After)
	}
	return doc
}

// Contains information about all targets in the suite
type TargetsDescriptor struct {
	targets map[string]*TargetDescriptor
}

// Returns all targets in the suite, ordered by name
func (d *TargetsDescriptor) AllTargets() []*TargetDescriptor {
	return utils.Map(d.Names(), func(name string) *TargetDescriptor { return d.targets[name] })
}

// Returns the names of all targets in the suite, in ascending order
func (d *TargetsDescriptor) Names() []string {
	return utils.SortedKeys(d.targets)
}

var ErrTargetNotKnown = errors.New("target not known")

// Returns the target with the given name
func (d *TargetsDescriptor) Target(name string) (*TargetDescriptor, error) {
	if target, hasTarget := d.targets[name]; hasTarget {
		return target, nil
	} else {
		return nil, utils.MakeError(ErrTargetNotKnown, "no target named '%v'", name)
	}
}

// Returns human readable documentation for the whole suite
func (d *TargetsDescriptor) DocString() string {
	docs := utils.Map(d.AllTargets(), func(target *TargetDescriptor) string { return target.DocString() })
	return strings.Join(docs, "\n")
}

func validateFrame(target *TargetDescriptor, frame *FrameDescriptor, standalone bool) {
	if frame.Function == "" {
		panic(fmt.Errorf("target '%s' has a frame with no function name", target.Name))
	}

	// a frame carrying state must be observable without line numbers: it
	// either has its own marker or sits in a chain whose anchor is further in
	if standalone && frame.Marker == "" && len(frame.Variables()) > 0 {
		panic(fmt.Errorf("frame '%s' of target '%s' has variables but no marker", frame.Function, target.Name))
	}

	for _, variable := range frame.Variables() {
		if variable.Name == "" || variable.Type == "" {
			panic(fmt.Errorf("frame '%s' of target '%s' has an incomplete variable descriptor", frame.Function, target.Name))
		}
		if variable.Value == nil {
			panic(fmt.Errorf("variable '%s' of frame '%s' of target '%s' has no expected value (locals must be initialized before the marker)",
				variable.Name, frame.Function, target.Name))
		}
	}

	for _, watch := range frame.Watches {
		if watch.Variable == "" || watch.Before == nil || watch.After == nil {
			panic(fmt.Errorf("frame '%s' of target '%s' has an incomplete watch descriptor", frame.Function, target.Name))
		}
	}
}

// Initializes a targets descriptor with all the given targets, checking the
// fixture-design invariants every target must satisfy
func NewTargetsDescriptor(targets []*TargetDescriptor) TargetsDescriptor {
	descriptor := TargetsDescriptor{
		targets: make(map[string]*TargetDescriptor, len(targets)),
	}

	for _, target := range targets {
		if target.Name == "" || target.Binary == "" {
			panic(fmt.Errorf("target descriptor with empty name or binary: %+v", target))
		}
		if _, duplicate := descriptor.targets[target.Name]; duplicate {
			panic(fmt.Errorf("duplicate target name '%s'", target.Name))
		}
		if len(target.Capabilities) == 0 {
			panic(fmt.Errorf("target '%s' exercises no capability", target.Name))
		}

		for i := range target.Frames {
			validateFrame(target, &target.Frames[i], true)
		}
		for _, chain := range target.Chains {
			if chain.Depth() == 0 {
				panic(fmt.Errorf("target '%s' has empty call chain '%s'", target.Name, chain.Name))
			}
			for i := range chain.Frames {
				validateFrame(target, &chain.Frames[i], false)
			}
			inner := chain.Frames[chain.Depth()-1]
			if inner.Marker == "" && len(inner.Variables()) > 0 {
				panic(fmt.Errorf("chain '%s' of target '%s' anchors on a frame with state but no marker", chain.Name, target.Name))
			}
		}

		descriptor.targets[target.Name] = target
	}

	return descriptor
}
