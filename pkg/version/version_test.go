package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	defer func(v, c string) { Version, GitCommit = v, c }(Version, GitCommit)

	Version, GitCommit = "", ""
	assert.Contains(t, String(), "labelsynth version: unknown")

	Version, GitCommit = "v0.3.0", "0ab12cd"
	assert.Equal(t, "labelsynth version: v0.3.0\n        git commit: 0ab12cd\n", String())
}
