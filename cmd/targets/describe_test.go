package targets

import (
	"testing"

	"github.com/enlight/dbgmits/pkg/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDescribeTarget(t *testing.T) {
	for _, name := range target.Descriptor.Names() {
		t.Run(name, func(t *testing.T) {
			doc, err := describeTarget(name, false)
			require.NoError(t, err)
			assert.Contains(t, doc, name)

			text, err := describeTarget(name, true)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, yaml.Unmarshal([]byte(text), &decoded))
			assert.Equal(t, name, decoded["name"])
		})
	}
}

func TestDescribeTarget_Unknown(t *testing.T) {
	_, err := describeTarget("bogus", false)
	assert.ErrorIs(t, err, target.ErrTargetNotKnown)
}

func TestBinDirResolution(t *testing.T) {
	assert.Equal(t, "bin", binDir())

	runBinDir = "/tmp/targets"
	defer func() { runBinDir = "" }()
	assert.Equal(t, "/tmp/targets", binDir())
}
