package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSupport(t *testing.T) {
	require.Equal(t, SupportedOS(runtime.GOOS), GetOS())

	if runtime.GOOS == "linux" {
		require.True(t, IsSupported())
		require.NoError(t, ValidateSupport())
	} else {
		require.False(t, IsSupported())
		require.Error(t, ValidateSupport())
	}
}
