package limits_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/limits"
)

func TestDefaults(t *testing.T) {
	l := limits.Default()
	require.Equal(t, int64(1<<20), l.MaxTemplateFileSize())
	require.Equal(t, int64(10<<20), l.MaxDataFileSize())
	require.Equal(t, 50, l.MaxPreprocessorNestingDepth())
	require.Equal(t, int64(1<<20), l.MaxPreprocessorInputSize())
	require.Equal(t, 100, l.MaxTemplateNestingDepth())
	require.Equal(t, 100, l.MaxRenderDepth())
	require.Equal(t, int64(10<<20), l.MaxImageSize())
	require.Equal(t, 30*time.Second, l.HttpTimeout())
	require.Equal(t, 1000, l.MaxFlexLines())
}

func TestSettersRejectNonPositive(t *testing.T) {
	l := limits.Default()
	require.Error(t, l.SetMaxTemplateFileSize(0))
	require.Error(t, l.SetMaxTemplateFileSize(-1))
	require.Error(t, l.SetMaxRenderDepth(0))
	require.Error(t, l.SetHttpTimeout(0))
	require.Error(t, l.SetMaxFlexLines(-5))
}

func TestSettersApplyValidValues(t *testing.T) {
	l := limits.Default()
	require.NoError(t, l.SetMaxTemplateNestingDepth(5))
	require.Equal(t, 5, l.MaxTemplateNestingDepth())

	require.NoError(t, l.SetHttpTimeout(time.Minute))
	require.Equal(t, time.Minute, l.HttpTimeout())
}
