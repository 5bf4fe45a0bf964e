package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallableHelpers(t *testing.T) {
	// expression tests call these in the debuggee, their results are fixed
	assert.Equal(t, int32(10), get10())
	assert.Equal(t, int32(7), getInt(7))
}

func TestFixtureFunctions(t *testing.T) {
	// both establish their state, hit the marker and return untouched
	assert.NotPanics(t, expressionEvaluation)
	assert.NotPanics(t, memoryAccess)
	assert.NotPanics(t, expressionEvaluationBreakpoint)
	assert.NotPanics(t, memoryAccessBreakpoint)
}
