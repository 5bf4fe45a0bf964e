package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(i int) int { return i * 2 }))
	assert.Equal(t, []string{}, Map([]string{}, func(s string) string { return s }))
}

func TestSortedKeys(t *testing.T) {
	input := map[string]int{"c": 3, "a": 1, "b": 2}

	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(input))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, Keys(input))
	assert.ElementsMatch(t, []int{1, 2, 3}, Values(input))
}

func TestFormatSlice(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		separator string
		expected  string
	}{
		{name: "empty", input: nil, separator: ", ", expected: ""},
		{name: "single", input: []int{1}, separator: ", ", expected: "1"},
		{name: "multiple", input: []int{1, 2, 3}, separator: ", ", expected: "1, 2, 3"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatSlice(test.input, test.separator))
		})
	}
}

func TestMakeError(t *testing.T) {
	sentinel := errors.New("something not found")
	err := MakeError(sentinel, "no entry named '%v'", "demo")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "something not found: no entry named 'demo'", err.Error())
}
