package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentChain(t *testing.T) {
	// each function forwards to the next simpler one before touching its own
	// arguments; the return values fold the known argument constants
	assert.Equal(t, int32(5), funcWithOneSimpleArg(5))
	assert.Equal(t, float32(7.0+7.0+9.0), funcWithTwoArgs(7.0, Point{7.0, 9.0}))

	threeInts := [3]int32{1, 2, 3}
	assert.NotPanics(t, func() {
		funcWithThreeArgs(300, "Test", threeInts[:])
	})
}

func TestArrayParameterIsAnUnsizedView(t *testing.T) {
	// the three-arg function must keep taking a slice: the harness asserts
	// that size information is lost at the call boundary
	var f func(d int64, e string, f []int32) = funcWithThreeArgs
	assert.NotNil(t, f)
}

func TestMarkers(t *testing.T) {
	// markers are breakpoint anchors: callable, side-effect free, constant
	assert.True(t, funcWithOneSimpleLocalVariable_Inner())
	assert.True(t, funcWithOneComplexLocalVariable_Inner())
	assert.True(t, funcWithTwoLocalVariables_Inner())
	assert.True(t, funcWithThreeLocalVariables_Inner())
}

func TestLocalVariableFunctions(t *testing.T) {
	assert.NotPanics(t, funcWithOneSimpleLocalVariable)
	assert.NotPanics(t, funcWithOneComplexLocalVariable)
	assert.NotPanics(t, funcWithTwoLocalVariables)

	// 5 + 10 + 9.5 + 300, the locals' literal initializers
	assert.Equal(t, float32(324.5), funcWithThreeLocalVariables())
}

func TestFrameLevelChain(t *testing.T) {
	assert.NotPanics(t, funcAtFrameLevel1)
}
