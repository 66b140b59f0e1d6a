package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	v := version{majorVersion: 1, minorVersion: 2, patchVersion: 3}
	assert.Equal(t, "1.2.3", v.String())

	v.commit = "1a2b3c"
	assert.Equal(t, "1.2.3", v.String())

	v.commit = "1a2b3c4d5e6f"
	assert.Equal(t, "1.2.3+1a2b3c4d", v.String())
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, current().String(), GetVersion())
}
