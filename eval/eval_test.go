package eval

import (
	"errors"
	"testing"

	"github.com/signadot/dts-format/go-dts/ir"
	"github.com/signadot/dts-format/go-dts/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = `/ {
	gpu {
		compatible = "qcom,adreno";
		qcom,gpu-pwrlevel@0 {
			qcom,gpu-freq = <0x2faf0800>;
			qcom,level = <0x100>;
		};
		qcom,gpu-pwrlevel@1 {
			qcom,gpu-freq = <0x1dcd6500>;
			qcom,level = <0x40>;
		};
	};
};`

func names(nodes []*ir.Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.Name
	}
	return res
}

func TestSelect(t *testing.T) {
	root, err := parse.ParseString(src)
	require.NoError(t, err)

	tests := []struct {
		expr string
		want []string
	}{
		{`Has("compatible")`, []string{"gpu"}},
		{`hasPrefix(Name, "qcom,gpu-pwrlevel")`, []string{"qcom,gpu-pwrlevel@0", "qcom,gpu-pwrlevel@1"}},
		{`num(Display("qcom,gpu-freq")) > 600000000`, []string{"qcom,gpu-pwrlevel@0"}},
		{`num(Props["qcom,level"]) == 64`, []string{"qcom,gpu-pwrlevel@1"}},
		{`Depth == 1`, []string{"/"}},
		{`Children == 2 && HasChild("qcom,gpu-pwrlevel@1")`, []string{"gpu"}},
		{`len(Cells("qcom,gpu-freq")) == 1 && Path endsWith "@1"`, []string{"qcom,gpu-pwrlevel@1"}},
		{`false`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Select(root, tc.expr)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestSelectErrors(t *testing.T) {
	root, err := parse.ParseString(src)
	require.NoError(t, err)

	_, err = Select(root, `Name`)
	assert.True(t, errors.Is(err, ErrEval), "non boolean expression: %v", err)

	_, err = Select(root, `Name ==`)
	assert.True(t, errors.Is(err, ErrEval))

	_, err = Select(root, `num(Props["compatible"]) > 0`)
	assert.True(t, errors.Is(err, ErrEval))
}

func TestEval(t *testing.T) {
	root, err := parse.ParseString(src)
	require.NoError(t, err)
	n := root.Find("/gpu/qcom,gpu-pwrlevel@0")
	require.NotNil(t, n)

	v, err := Eval(n, `Display("qcom,gpu-freq")`)
	require.NoError(t, err)
	assert.Equal(t, "800000000", v)

	v, err = Eval(n, `Path`)
	require.NoError(t, err)
	assert.Equal(t, "/gpu/qcom,gpu-pwrlevel@0", v)
}
