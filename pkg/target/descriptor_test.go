package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetsDescriptor_Target(t *testing.T) {
	t.Run("known target", func(t *testing.T) {
		desc, err := Descriptor.Target("stack")
		require.NoError(t, err)
		assert.Equal(t, "stack", desc.Name)
		assert.Equal(t, "stacktarget", desc.Binary)
	})

	t.Run("unknown target", func(t *testing.T) {
		desc, err := Descriptor.Target("bogus")
		assert.Nil(t, desc)
		assert.ErrorIs(t, err, ErrTargetNotKnown)
		assert.Contains(t, err.Error(), "bogus")
	})
}

func TestTargetsDescriptor_Names(t *testing.T) {
	names := Descriptor.Names()

	assert.Equal(t, []string{"data", "exec", "stack", "test", "threads", "watch"}, names)

	// AllTargets follows the same order
	for i, target := range Descriptor.AllTargets() {
		assert.Equal(t, names[i], target.Name)
	}
}

func TestCallChain_Anchor(t *testing.T) {
	tests := []struct {
		name     string
		chain    CallChain
		expected string
	}{
		{
			name:     "empty chain",
			chain:    CallChain{},
			expected: "",
		},
		{
			name: "innermost frame without marker",
			chain: CallChain{Frames: []FrameDescriptor{
				{Function: "outer"},
				{Function: "inner"},
			}},
			expected: "inner",
		},
		{
			name: "innermost frame with marker",
			chain: CallChain{Frames: []FrameDescriptor{
				{Function: "outer"},
				{Function: "inner", Marker: "inner_Inner"},
			}},
			expected: "inner_Inner",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.chain.Anchor())
		})
	}
}

func TestNewTargetsDescriptor_Validation(t *testing.T) {
	valid := func() *TargetDescriptor {
		return &TargetDescriptor{
			Name:         "demo",
			Binary:       "demotarget",
			Capabilities: []Capability{CapVariableEnumeration},
			Frames: []FrameDescriptor{
				{
					Function: "funcWithState",
					Marker:   "funcWithState_Inner",
					Locals:   []VariableDescriptor{{Name: "a", Type: "int32", Value: int32(5)}},
				},
			},
		}
	}

	t.Run("valid descriptor", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{valid()})
		})
	})

	t.Run("duplicate name", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{valid(), valid()})
		})
	})

	t.Run("empty binary", func(t *testing.T) {
		target := valid()
		target.Binary = ""
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{target})
		})
	})

	t.Run("no capability", func(t *testing.T) {
		target := valid()
		target.Capabilities = nil
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{target})
		})
	})

	t.Run("frame with locals but no marker", func(t *testing.T) {
		target := valid()
		target.Frames[0].Marker = ""
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{target})
		})
	})

	t.Run("uninitialized local", func(t *testing.T) {
		target := valid()
		target.Frames[0].Locals[0].Value = nil
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{target})
		})
	})

	t.Run("empty chain", func(t *testing.T) {
		target := valid()
		target.Chains = []CallChain{{Name: "empty"}}
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{target})
		})
	})

	t.Run("chain anchored on stateful frame without marker", func(t *testing.T) {
		target := valid()
		target.Chains = []CallChain{{
			Name: "bad",
			Frames: []FrameDescriptor{
				{Function: "inner", Locals: []VariableDescriptor{{Name: "a", Type: "int32", Value: int32(1)}}},
			},
		}}
		assert.Panics(t, func() {
			NewTargetsDescriptor([]*TargetDescriptor{target})
		})
	})
}

func TestDocString(t *testing.T) {
	doc := Descriptor.DocString()

	for _, target := range Descriptor.AllTargets() {
		assert.Contains(t, doc, target.Name)
		assert.Contains(t, doc, target.Binary)
	}

	// the breakpoint anchors must be documented, harnesses copy them from here
	assert.Contains(t, doc, "funcWithThreeLocalVariables_Inner")
	assert.Contains(t, doc, "break on funcWithNoArgs")
}
