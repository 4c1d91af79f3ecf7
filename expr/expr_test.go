package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/value"
)

func evalString(t *testing.T, src string, data value.Value, culture string) string {
	t.Helper()
	e, err := expr.Parse(src)
	require.NoError(t, err, "parse %q", src)
	ctx := &expr.EvalContext{
		Scope:   expr.NewRootScope(data),
		Filters: expr.NewRegistry(),
		Culture: culture,
	}
	return expr.Eval(e, ctx).String()
}

func TestParserPrecedence(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"arithmetic_precedence", "2 + 3 * 4", "14"},
		{"parens_override", "(2 + 3) * 4", "20"},
		{"filter_binds_tighter_than_arithmetic", "1 + 1 | number:0", "2"},
		{"unary_wraps_filter_pipe", "-4 | number:0", "-4"},
		{"null_coalesce_loosest", "null ?? 1 || 0", "1"},
		{"equality_and_relational", "3 > 2 == true", "true"},
		{"string_concat_both_sides", "'a' + 'b'", "ab"},
		{"string_plus_number_numerifies", "'3' + 4", "7"},
	}
	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			got := evalString(t, cse.src, value.Null, "en-US")
			require.Equal(t, cse.want, got)
		})
	}
}

func TestMemberAndIndexAccess(t *testing.T) {
	obj := value.NewObject()
	obj.Set("Name", value.String("Ada"))
	inner := value.NewObject()
	inner.Set("City", value.String("Paris"))
	obj.Set("Address", value.FromObject(inner))
	arr := value.Array([]value.Value{value.Number(1), value.Number(2), value.Number(3)})
	obj.Set("Scores", arr)
	data := value.FromObject(obj)

	require.Equal(t, "Ada", evalString(t, "name", data, ""))
	require.Equal(t, "Paris", evalString(t, "address.city", data, ""))
	require.Equal(t, "2", evalString(t, "scores[1]", data, ""))
	require.Equal(t, "", evalString(t, "missing.path", data, ""))
}

func TestFilterPipelineScenario(t *testing.T) {
	obj := value.NewObject()
	obj.Set("price", value.Number(1.5))
	obj.Set("qty", value.Number(3))
	data := value.FromObject(obj)

	got := evalString(t, "price * qty | number:2", data, "en-US")
	require.Equal(t, "4.50", got)
}

func TestFilterNamedAndFlagArguments(t *testing.T) {
	data := value.String("a very long piece of text that needs truncating")
	got := evalString(t, "self | truncate:10 suffix:'...' fromEnd", data, "")
	require.Equal(t, "...ncating", got)
}

func TestCultureAwareUpperLowerTurkish(t *testing.T) {
	e, err := expr.Parse("self | upper")
	require.NoError(t, err)

	ctx := &expr.EvalContext{
		Scope:   expr.NewRootScope(value.String("i")),
		Filters: expr.NewRegistry(),
		Culture: "tr-TR",
	}
	got := expr.Eval(e, ctx).String()
	require.Equal(t, "İ", got)

	ctxInvariant := &expr.EvalContext{
		Scope:   expr.NewRootScope(value.String("i")),
		Filters: expr.NewRegistry(),
		Culture: "en-US",
	}
	gotInvariant := expr.Eval(e, ctxInvariant).String()
	require.Equal(t, "I", gotInvariant)
}

func TestEvalNeverErrors(t *testing.T) {
	e, err := expr.Parse("a.b.c / 0 ?? 'fallback'")
	require.NoError(t, err)
	ctx := &expr.EvalContext{Scope: expr.NewRootScope(value.Null), Filters: expr.NewRegistry()}
	require.NotPanics(t, func() {
		got := expr.Eval(e, ctx)
		require.Equal(t, "fallback", got.String())
	})
}

func TestParseErrorReporting(t *testing.T) {
	_, err := expr.Parse("1 +")
	require.Error(t, err)
	var perr *expr.ParseError
	require.ErrorAs(t, err, &perr)
	require.NotEmpty(t, perr.Fragment)
}

func TestInterpolateMixedText(t *testing.T) {
	obj := value.NewObject()
	obj.Set("name", value.String("Ada"))
	data := value.FromObject(obj)
	ctx := &expr.EvalContext{Scope: expr.NewRootScope(data), Filters: expr.NewRegistry()}

	out, err := expr.Interpolate("Hello, {{ name }}!", ctx)
	require.NoError(t, err)
	require.Equal(t, "Hello, Ada!", out)
}

func TestInterpolateNoFragmentsPassesThrough(t *testing.T) {
	ctx := &expr.EvalContext{Scope: expr.NewRootScope(value.Null), Filters: expr.NewRegistry()}
	out, err := expr.Interpolate("plain text", ctx)
	require.NoError(t, err)
	require.Equal(t, "plain text", out)
}

func TestIsPureExpressionPreservesKind(t *testing.T) {
	obj := value.NewObject()
	obj.Set("count", value.Number(5))
	data := value.FromObject(obj)
	ctx := &expr.EvalContext{Scope: expr.NewRootScope(data), Filters: expr.NewRegistry()}

	got, err := expr.EvalPureOrInterpolate("{{ count }}", ctx)
	require.NoError(t, err)
	n, ok := got.AsNumber()
	require.True(t, ok)
	require.Equal(t, float64(5), n)

	gotText, err := expr.EvalPureOrInterpolate("Count: {{ count }}", ctx)
	require.NoError(t, err)
	s, ok := gotText.AsString()
	require.True(t, ok)
	require.Equal(t, "Count: 5", s)
}

func TestCurrencySymbolFilter(t *testing.T) {
	require.Equal(t, "$", evalString(t, "self | currencySymbol", value.String("USD"), ""))
	require.Equal(t, "€", evalString(t, "self | currencySymbol", value.String("EUR"), ""))
	require.Equal(t, "XYZ", evalString(t, "self | currencySymbol", value.String("XYZ"), ""))
}
