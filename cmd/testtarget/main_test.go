package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buffer bytes.Buffer
	out = &buffer
	defer func() { out = os.Stdout }()

	// a full run drives every section: the counter loop output is the only
	// thing observable from outside and must be exactly 0..9
	require.NotPanics(t, run)
	assert.Equal(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n", buffer.String())
}

func TestArgumentShapes(t *testing.T) {
	// unlike stacktarget these functions do not call each other
	assert.True(t, funcWithNoArgs())
	assert.Equal(t, int32(5), funcWithOneSimpleArg(5))
	assert.Equal(t, float32(23), funcWithTwoArgs(7.0, Point{7.0, 9.0}))

	threeInts := [3]int32{1, 2, 3}
	assert.True(t, funcWithThreeArgs(300, "Test", threeInts[:]))
}

func TestLocalVariableFunctions(t *testing.T) {
	assert.True(t, funcWithOneSimpleLocalVariable_Inner())
	assert.True(t, funcWithOneComplexLocalVariable_Inner())
	assert.True(t, funcWithTwoLocalVariables_Inner())
	assert.True(t, funcWithThreeLocalVariables_Inner())

	assert.Equal(t, float32(324.5), funcWithThreeLocalVariables())
}
