package flowerr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/flowerr"
)

func TestMaterializeErrorMessage(t *testing.T) {
	err := flowerr.Materialize("width", "not-a-unit", "Unit")
	require.Equal(t, flowerr.CodeAttrMaterialize, err.Code)
	require.Contains(t, err.Error(), "width")
	require.Contains(t, err.Error(), "not-a-unit")
	require.Contains(t, err.Error(), "Unit")
}

func TestParseErrorMessage(t *testing.T) {
	err := flowerr.Parse(flowerr.CodeExprParse, "unexpected token", 1, 5, "1 +")
	require.Equal(t, flowerr.CodeExprParse, err.Code)
	require.Contains(t, err.Error(), "unexpected token")
	require.Contains(t, err.Error(), "1 +")
}

func TestLimitErrorMessage(t *testing.T) {
	err := flowerr.Limit("MaxTemplateNestingDepth", 150, 100)
	require.Equal(t, flowerr.CodeLimitExceeded, err.Code)
	require.Contains(t, err.Error(), "MaxTemplateNestingDepth")
}

func TestDiagnosticConstruction(t *testing.T) {
	d := flowerr.NewDiagnostic(flowerr.CodeResourceNotFound, flowerr.SeverityWarning, "image missing")
	require.Equal(t, flowerr.CodeResourceNotFound, d.Code)
	require.Equal(t, flowerr.SeverityWarning, d.Severity)
	require.Equal(t, "image missing", d.Message)
}
