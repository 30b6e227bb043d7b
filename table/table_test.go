package table

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dts-format/go-dts/chip"
	"github.com/signadot/dts-format/go-dts/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const konaDTS = `/ {
	soc {
		qcom,kgsl-3d0@3d00000 {
			compatible = "qcom,kgsl-3d0";
			qcom,gpu-pwrlevel-bins {
				compatible = "qcom,gpu-pwrlevels-bins";
				qcom,gpu-pwrlevels-0 {
					qcom,speed-bin = <0x0>;
					qcom,initial-pwrlevel = <0x1>;
					qcom,throttle-pwrlevel = <0x0>;
					qcom,gpu-pwrlevel@0 {
						reg = <0x0>;
						qcom,gpu-freq = <0x27b25a80>;
						qcom,bus-freq = <0xb>;
					};
					qcom,gpu-pwrlevel@1 {
						reg = <0x1>;
						qcom,gpu-freq = <0x1e65fb80>;
						qcom,bus-freq = <0x7>;
					};
				};
				qcom,gpu-pwrlevels-1 {
					qcom,speed-bin = <0x1>;
					qcom,initial-pwrlevel = <0x0>;
					qcom,gpu-pwrlevel@0 {
						reg = <0x0>;
						qcom,gpu-freq = <0x2faf0800>;
					};
				};
			};
		};
	};
};`

const waipioDTS = `/ {
	qcom,kgsl-3d0@3d00000 {
		qcom,gpu-pwrlevels {
			#address-cells = <1>;
			qcom,initial-pwrlevel = <3>;
			qcom,gpu-pwrlevel@0 {
				reg = <0>;
				qcom,gpu-freq = <900000000>;
				qcom,level = <416>;
			};
		};
	};
};`

func konaEditor(t *testing.T) *Editor {
	t.Helper()
	ed, err := NewEditor(strings.Split(konaDTS, "\n"), chip.Kona)
	require.NoError(t, err)
	require.NoError(t, ed.Decode())
	return ed
}

func TestDecodeMultiBin(t *testing.T) {
	ed := konaEditor(t)
	assert.Equal(t, 6, ed.Position())
	assert.Len(t, ed.Lines(), 33-15-8)
	require.Len(t, ed.Bins(), 2)

	b0 := ed.Bins()[0]
	assert.Equal(t, 0, b0.ID)
	assert.Equal(t, []string{
		"qcom,speed-bin = <0x0>;",
		"qcom,initial-pwrlevel = <0x1>;",
		"qcom,throttle-pwrlevel = <0x0>;",
	}, b0.Header)
	require.Len(t, b0.Levels, 2)
	assert.Equal(t, int64(666000000), b0.Levels[0].Frequency())
	assert.Equal(t, int64(510000000), b0.Levels[1].Frequency())
	assert.Equal(t, -1, b0.Levels[0].VoltageLevel())
	sb, ok := b0.HeaderValue("qcom,speed-bin")
	assert.True(t, ok)
	assert.Equal(t, int64(0), sb)

	b1 := ed.Bins()[1]
	assert.Equal(t, 1, b1.ID)
	assert.Equal(t, "sdm865p", chip.LabelFor(ed.Variant(), b1.ID))
}

func TestGenerateFullDts(t *testing.T) {
	original := strings.Split(konaDTS, "\n")
	ed := konaEditor(t)
	table := ed.GenerateTable()
	full := ed.GenerateFullDts()

	consumed := len(original) - len(ed.Lines())
	assert.Equal(t, len(original)-consumed+len(table), len(full))
	assert.Equal(t, table, full[ed.Position():ed.Position()+len(table)])
	assert.Equal(t, "qcom,gpu-pwrlevels-0 {", full[ed.Position()])
	assert.Equal(t, original[:ed.Position()], full[:ed.Position()])

	// the regenerated document parses and decodes to the same bins
	root, err := parse.ParseLines(full, parse.ParseStrict())
	require.NoError(t, err)
	assert.NotNil(t, root.Find("/soc/qcom,kgsl-3d0@3d00000/qcom,gpu-pwrlevel-bins/qcom,gpu-pwrlevels-1"))

	again, err := NewEditor(full, chip.Kona)
	require.NoError(t, err)
	require.NoError(t, again.Decode())
	if diff := cmp.Diff(ed.Bins(), again.Bins()); diff != "" {
		t.Errorf("bins changed through regeneration (-want +got):\n%s", diff)
	}
	assert.Equal(t, ed.Lines(), again.Lines())
}

func TestSingleBin(t *testing.T) {
	ed, err := NewEditor(strings.Split(waipioDTS, "\n"), chip.WaipioSingleBin)
	require.NoError(t, err)
	require.NoError(t, ed.Decode())
	require.Len(t, ed.Bins(), 1)
	b := ed.Bins()[0]
	assert.Equal(t, 0, b.ID)
	assert.Equal(t, int64(900000000), b.Levels[0].Frequency())
	assert.Equal(t, 416, b.Levels[0].VoltageLevel())
	assert.Equal(t, []string{
		"qcom,gpu-pwrlevels {",
		"#address-cells = <1>;",
		"qcom,initial-pwrlevel = <3>;",
		"qcom,gpu-pwrlevel@0 {",
		"reg = <0>;",
		"qcom,gpu-freq = <900000000>;",
		"qcom,level = <416>;",
		"};",
		"};",
	}, ed.GenerateTable())

	assert.Nil(t, SingleBin{}.GenerateTable(nil))
	assert.False(t, SingleBin{}.IsTableStart("qcom,gpu-pwrlevels-0 {"))
	assert.False(t, MultiBin{}.IsTableStart("qcom,gpu-pwrlevels {"))
}

func TestUnsupportedChip(t *testing.T) {
	_, err := NewEditor(nil, chip.Unknown)
	assert.ErrorIs(t, err, ErrUnsupportedChip)
	_, err = ForVariant(chip.Variant(99))
	assert.ErrorIs(t, err, ErrUnsupportedChip)
	s, err := ForVariant(chip.Tuna)
	require.NoError(t, err)
	assert.IsType(t, MultiBin{}, s)
}

func TestDecodeErrors(t *testing.T) {
	ed, err := NewEditor([]string{"/ {", "};"}, chip.Kona)
	require.NoError(t, err)
	assert.ErrorIs(t, ed.Decode(), ErrNoTable)
	assert.Equal(t, -1, ed.Position())
	assert.Equal(t, []string{"/ {", "};"}, ed.GenerateFullDts())

	ed, _ = NewEditor([]string{"qcom,gpu-pwrlevels {", "qcom,gpu-pwrlevel@0 {"}, chip.UkeeSingleBin)
	assert.ErrorIs(t, ed.Decode(), ErrUnterminatedBlock)

	ed, _ = NewEditor([]string{
		"qcom,gpu-pwrlevels {",
		"qcom,gpu-pwrlevel@0 {",
		"x {",
		"};",
		"};",
		"};",
	}, chip.UkeeSingleBin)
	assert.ErrorIs(t, ed.Decode(), ErrNestedBlock)
}

func TestParseBinID(t *testing.T) {
	tests := []struct {
		line string
		def  int
		id   int
	}{
		{"qcom,gpu-pwrlevels-3 {", 0, 3},
		{"qcom,gpu-pwrlevels-12 {", 0, 12},
		{"qcom,gpu-pwrlevels {", 5, 5},
		{"  qcom,gpu-pwrlevels-0 {  ", 2, 0},
		{"qcom,gpu-pwrlevels-99999999999 {", 1, 999999999},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.id, parseBinID(tc.line, tc.def), tc.line)
	}
}

func TestLevelOperations(t *testing.T) {
	ed := konaEditor(t)
	b0 := ed.Bins()[0]

	require.NoError(t, ed.AddLevelTop(0))
	assert.Len(t, b0.Levels, 3)
	assert.Equal(t, "qcom,initial-pwrlevel = <0x2>;", b0.Header[1])
	assert.NotSame(t, b0.Levels[0], b0.Levels[1])
	assert.Equal(t, b0.Levels[0].Lines, b0.Levels[1].Lines)

	require.NoError(t, ed.RemoveLevel(0, 0))
	assert.Equal(t, "qcom,initial-pwrlevel = <0x1>;", b0.Header[1])

	require.NoError(t, ed.AddLevelBottom(0))
	require.Len(t, b0.Levels, 3)
	assert.Equal(t, int64(666000000), b0.Levels[0].Frequency())
	assert.Equal(t, int64(510000000), b0.Levels[2].Frequency())
	assert.Equal(t, "qcom,initial-pwrlevel = <0x2>;", b0.Header[1])

	require.NoError(t, ed.DuplicateLevel(1, 0))
	assert.Equal(t, "qcom,initial-pwrlevel = <0x1>;", ed.Bins()[1].Header[1])
	require.NoError(t, ed.RemoveLevel(1, 1))
	assert.Equal(t, "qcom,initial-pwrlevel = <0x0>;", ed.Bins()[1].Header[1])
	require.NoError(t, ed.RemoveLevel(0, 0))
	require.NoError(t, ed.RemoveLevel(0, 0))
	assert.ErrorIs(t, ed.RemoveLevel(1, 0), ErrTooFewLevels)
	assert.Equal(t, "qcom,initial-pwrlevel = <0x0>;", ed.Bins()[0].Header[1])
	header := []string{"qcom,initial-pwrlevel = <0>;"}
	offsetHeaderValue(header, "qcom,initial-pwrlevel", -1)
	assert.Equal(t, "qcom,initial-pwrlevel = <0>;", header[0], "clamped at 0")

	assert.ErrorIs(t, ed.AddLevelTop(7), ErrIndex)
	assert.ErrorIs(t, ed.DuplicateLevel(0, 9), ErrIndex)
	for len(b0.Levels) < ed.Definition().MaxTableLevels {
		require.NoError(t, ed.AddLevelBottom(0))
	}
	assert.ErrorIs(t, ed.AddLevelBottom(0), ErrTooManyLevels)

	ed.PatchThrottleLevel()
	assert.Equal(t, "qcom,throttle-pwrlevel = <0>;", b0.Header[2])
}

func TestAddLevelBottomKeepsLowestLast(t *testing.T) {
	lines := []string{
		"qcom,gpu-pwrlevels-0 {",
		"qcom,initial-pwrlevel = <1>;",
		"qcom,ca-target-pwrlevel = <2>;",
	}
	for i, f := range []int{900, 600, 300} {
		lines = append(lines,
			fmt.Sprintf("qcom,gpu-pwrlevel@%d {", i),
			fmt.Sprintf("reg = <%d>;", i),
			fmt.Sprintf("qcom,gpu-freq = <%d000000>;", f),
			"};")
	}
	lines = append(lines, "};")

	tests := []struct {
		v        chip.Variant
		freqs    []int64
		caTarget string
	}{
		{chip.Kona, []int64{900e6, 600e6, 600e6, 300e6}, "qcom,ca-target-pwrlevel = <2>;"},
		{chip.Lagoon, nil, "qcom,ca-target-pwrlevel = <3>;"},
	}
	for _, tc := range tests {
		ed, err := NewEditor(lines, tc.v)
		require.NoError(t, err)
		require.NoError(t, ed.Decode())
		require.NoError(t, ed.AddLevelBottom(0))
		b := ed.Bins()[0]
		require.Len(t, b.Levels, 4)
		if tc.freqs != nil {
			var freqs []int64
			for _, l := range b.Levels {
				freqs = append(freqs, l.Frequency())
			}
			assert.Equal(t, tc.freqs, freqs)
		}
		assert.Equal(t, "qcom,initial-pwrlevel = <2>;", b.Header[0], tc.v.String())
		assert.Equal(t, tc.caTarget, b.Header[1], tc.v.String())
	}
}

func TestCaTargetOffset(t *testing.T) {
	lines := []string{
		"qcom,gpu-pwrlevels-0 {",
		"qcom,initial-pwrlevel = <2>;",
		"qcom,ca-target-pwrlevel = <0x3>;",
		"qcom,gpu-pwrlevel@0 {",
		"reg = <0>;",
		"qcom,gpu-freq = <625000000>;",
		"};",
		"};",
	}
	for _, tc := range []struct {
		v        chip.Variant
		expected string
	}{
		{chip.Lagoon, "qcom,ca-target-pwrlevel = <0x4>;"},
		{chip.Kona, "qcom,ca-target-pwrlevel = <0x3>;"},
	} {
		ed, err := NewEditor(lines, tc.v)
		require.NoError(t, err)
		require.NoError(t, ed.Decode())
		require.NoError(t, ed.AddLevelTop(0))
		assert.Equal(t, "qcom,initial-pwrlevel = <3>;", ed.Bins()[0].Header[0])
		assert.Equal(t, tc.expected, ed.Bins()[0].Header[1], tc.v.String())
	}
}

func TestSetValue(t *testing.T) {
	l := &Level{Lines: []string{"qcom,gpu-freq = <0x27b25a80>;", "qcom,level = <256>;"}}
	l.SetValue("qcom,gpu-freq", 700000000)
	l.SetValue("qcom,level", 320)
	l.SetValue("qcom,acd-level", 5)
	assert.Equal(t, []string{
		"qcom,gpu-freq = <0x29b92700>;",
		"qcom,level = <320>;",
		"qcom,acd-level = <5>;",
	}, l.Lines)
	assert.Equal(t, 320, l.VoltageLevel())

	cx := &Level{Lines: []string{"qcom,cx-level = <0x0 0x80>;"}}
	assert.Equal(t, 128, cx.VoltageLevel())
	bad := &Level{Lines: []string{"qcom,gpu-freq = \"x\";"}}
	assert.Equal(t, int64(-1), bad.Frequency())
}

func TestSetLevelValue(t *testing.T) {
	ed := konaEditor(t)
	require.NoError(t, ed.SetLevelValue(0, 1, "qcom,gpu-freq", 587000000))
	assert.Equal(t, int64(587000000), ed.Bins()[0].Levels[1].Frequency())
	assert.Contains(t, ed.Bins()[0].Levels[1].Lines, "qcom,gpu-freq = <0x22fce8c0>;")
	require.NoError(t, ed.SetLevelValue(1, 0, "qcom,level", 416))
	assert.Equal(t, 416, ed.Bins()[1].Levels[0].VoltageLevel())

	assert.ErrorIs(t, ed.SetLevelValue(1, 0, "qcom,level", 417), ErrVoltageLevel)
	assert.ErrorIs(t, ed.SetLevelValue(0, 0, "qcom,cx-level", 0), ErrVoltageLevel)
	assert.ErrorIs(t, ed.SetLevelValue(0, 2, "qcom,gpu-freq", 1), ErrIndex)
	assert.ErrorIs(t, ed.SetLevelValue(3, 0, "qcom,gpu-freq", 1), ErrIndex)
}

const oppDTS = `/ {
	gpu-opp-table_v2 {
		compatible = "operating-points-v2";
		opp-587000000 {
			opp-hz = /bits/ 64 <587000000>;
			opp-microvolt = <0x100>;
		};
		opp-800000000 {
			opp-hz = /bits/ 64 <0x0 0x2faf0800>;
			opp-microvolt = <384>;
		};
		opp-100 {
			opp-hz = /bits/ 64 <100>;
		};
	};
	other {
		opp-hz = /bits/ 64 <1>;
		opp-microvolt = <1>;
	};
};`

func TestVoltTable(t *testing.T) {
	ed, err := NewEditor(strings.Split(oppDTS, "\n"), chip.Kona)
	require.NoError(t, err)
	opps, err := ed.VoltTable()
	require.NoError(t, err)
	assert.Equal(t, []Opp{
		{Frequency: 587000000, Microvolt: 256},
		{Frequency: 800000000, Microvolt: 384},
	}, opps)

	ed, err = NewEditor(strings.Split(oppDTS, "\n"), chip.Tuna)
	require.NoError(t, err)
	_, err = ed.VoltTable()
	assert.ErrorIs(t, err, ErrNoVoltTable)

	ed, err = NewEditor(strings.Split(konaDTS, "\n"), chip.Kona)
	require.NoError(t, err)
	_, err = ed.VoltTable()
	assert.ErrorIs(t, err, ErrNoVoltTable)
}

func TestWithRegistryAndLogger(t *testing.T) {
	r := chip.NewRegistry()
	require.NoError(t, r.Load(strings.NewReader("chips:\n- id: kona\n  strategy: SINGLE_BIN\n")))
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ed, err := NewEditor(strings.Split(waipioDTS, "\n"), chip.Kona, WithRegistry(r), WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, ed.Decode())
	assert.Len(t, ed.Bins(), 1)
	assert.Contains(t, buf.String(), "decoded block")
}

// The generated document always has the length of the decoded lines plus
// the generated block, with the block at the first table's index.
func TestGenerateFullDtsLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := rapid.SliceOfN(rapid.SampledFrom([]string{"a;", "b = <1>;", "n {", "};", ""}), 0, 6).Draw(t, "before")
		after := rapid.SliceOfN(rapid.SampledFrom([]string{"c;", "};", "x {"}), 0, 6).Draw(t, "after")
		nbins := rapid.IntRange(1, 3).Draw(t, "bins")
		var block []string
		for b := 0; b < nbins; b++ {
			block = append(block, "qcom,gpu-pwrlevels-"+string(rune('0'+b))+" {", "qcom,initial-pwrlevel = <0>;")
			nl := rapid.IntRange(0, 3).Draw(t, "levels")
			for l := 0; l < nl; l++ {
				block = append(block, "qcom,gpu-pwrlevel@0 {", "reg = <0>;", "qcom,gpu-freq = <1>;", "};")
			}
			block = append(block, "};")
		}
		lines := append(append(append([]string{}, before...), block...), after...)
		ed, err := NewEditor(lines, chip.Kalama)
		if err != nil {
			t.Fatal(err)
		}
		if err := ed.Decode(); err != nil {
			t.Fatal(err)
		}
		if ed.Position() != len(before) {
			t.Fatalf("expected position %d, got %d", len(before), ed.Position())
		}
		table := ed.GenerateTable()
		full := ed.GenerateFullDts()
		if len(full) != len(lines)-len(block)+len(table) {
			t.Fatalf("expected %d lines, got %d", len(lines)-len(block)+len(table), len(full))
		}
		if diff := cmp.Diff(table, full[len(before):len(before)+len(table)]); diff != "" {
			t.Fatalf("table not at position:\n%s", diff)
		}
	})
}
