package parse

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/ir"
	"pgregory.net/rapid"
)

const konaGPU = `/dts-v1/;

/ {
	model = "Qualcomm Technologies, Inc. kona v2.1";
	soc {
		qcom,kgsl-3d0@3d00000 {
			compatible = "qcom,kgsl-3d0", "qcom,kgsl-3d";
			reg = <0x3d00000 0x40000 0x3d61000 0x800>;
			qcom,gpu-quirk-two-pass-use-wfi;
			qcom,initial-pwrlevel = <0x3>;
		};
	};
};

__symbols__ {
	gpu = "/soc/qcom,kgsl-3d0@3d00000";
};`

func TestParseStructure(t *testing.T) {
	root, err := ParseString(konaGPU)
	if err != nil {
		t.Fatal(err)
	}
	if !root.IsRoot() || !root.Expanded {
		t.Fatal("expected synthetic root")
	}
	if got := root.Property("/dts-v1/"); got == nil || got.Value != "" {
		t.Errorf("expected /dts-v1/ boolean property on root, got %v", got)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top level nodes, got %d", len(root.Children))
	}
	gpu := root.Find("/soc/qcom,kgsl-3d0@3d00000")
	if gpu == nil {
		t.Fatal("gpu node not found")
	}
	var names []string
	for _, p := range gpu.Properties {
		names = append(names, p.Name)
	}
	expected := []string{"compatible", "reg", "qcom,gpu-quirk-two-pass-use-wfi", "qcom,initial-pwrlevel"}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("property names (-want +got):\n%s", diff)
	}
	reg := gpu.Property("reg")
	if !reg.IsNumericArray() || reg.Value != "<0x3d00000 0x40000 0x3d61000 0x800>" {
		t.Errorf("unexpected reg %q", reg.Value)
	}
	if gpu.Property("compatible").IsNumericArray() {
		t.Error("string list reported as numeric")
	}
}

func TestParseComments(t *testing.T) {
	in := `/ {
	// line comment; with { braces }
	a = <0x1>; /* trailing */
	/* block
	   spanning { lines };
	*/
	b;
};`
	root, err := ParseString(in, ParseStrict())
	if err != nil {
		t.Fatal(err)
	}
	top := root.Child("/")
	if top == nil || len(top.Properties) != 2 || len(top.Children) != 0 {
		t.Fatalf("unexpected tree:\n%s", encode.MustString(root))
	}
	if top.Properties[1].Name != "b" {
		t.Errorf("expected b, got %q", top.Properties[1].Name)
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"a; // x\nb;", "a; \nb;"},
		{"a /* x */ b", "a  b"},
		{"/* x */ y /* z */", " y "},
		{"/* a\nb */c", "c"},
		{"// only", ""},
	}
	for _, tc := range tests {
		got := string(StripComments([]byte(tc.in)))
		if got != tc.out {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestParseDegrades(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		err    error
		expect string
	}{
		{
			name:   "unclosed",
			in:     "/ {\n\ta = <0x1>;\n\tsoc {\n\t\tb;",
			err:    ErrUnclosedNode,
			expect: "/ {\n\ta = <0x1>;\n\tsoc {\n\t\tb;\n\t};\n};",
		},
		{
			name:   "stray close",
			in:     "};\n/ {\n\ta;\n};",
			err:    ErrStrayClose,
			expect: "/ {\n\ta;\n};",
		},
		{
			name:   "trailing text",
			in:     "/ {\n\ta;\n};\nb = <1>",
			err:    ErrTrailingText,
			expect: "/ {\n\ta;\n};",
		},
		{
			name:   "close without semicolon",
			in:     "/ { a { b; } c; };",
			expect: "/ {\n\tc;\n\ta {\n\t\tb;\n\t};\n};",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root, err := ParseString(tc.in)
			if err != nil {
				t.Fatalf("default mode returned %v", err)
			}
			if got := encode.MustString(root); got != tc.expect {
				t.Errorf("expected\n%s\ngot\n%s", tc.expect, got)
			}
			strict, err := ParseString(tc.in, ParseStrict())
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
			if tc.err != nil && !errors.Is(err, ir.ErrParse) {
				t.Errorf("expected ir.ErrParse, got %v", err)
			}
			if !ir.Equal(root, strict) {
				t.Error("strict mode changed the tree")
			}
		})
	}
}

func TestParseErrPosition(t *testing.T) {
	in := "/* header */\n/ {\n\tsoc {\n\t\ta;\n};"
	_, err := ParseString(in, ParseStrict())
	pos, ok := Position(err)
	if !ok {
		t.Fatalf("expected positioned error, got %v", err)
	}
	// "/ {" is the outermost unclosed node, on line 2.
	if pos.Line != 1 || pos.Col != 0 {
		t.Errorf("expected line 1 col 0, got %s", pos)
	}
	if !strings.Contains(err.Error(), "line=2, col=1") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestParsePositions(t *testing.T) {
	in := "/ {\n\t// c\n\tsoc {\n\t\tx = <0x1>;\n\t};\n\ty;\n};"
	pos := NewPositions()
	root, err := ParseString(in, ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	soc := root.Find("/soc")
	if p := pos.Nodes[soc]; p.Line != 2 || p.Col != 1 {
		t.Errorf("expected soc at 2:1, got %d:%d", p.Line, p.Col)
	}
	x := soc.Property("x")
	if p := pos.Props[x]; p.Line != 3 || p.Col != 2 {
		t.Errorf("expected x at 3:2, got %d:%d", p.Line, p.Col)
	}
	xOff := strings.Index(in, "x =")
	if got := pos.At(root, xOff); got != soc {
		t.Errorf("expected soc at offset %d, got %v", xOff, got)
	}
	yOff := strings.Index(in, "y;")
	if got := pos.At(root, yOff); got != root.Child("/") {
		t.Errorf("expected / at offset %d, got %v", yOff, got)
	}
	if got := pos.At(root, len(in)); got != nil {
		t.Errorf("expected nil past the end, got %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	root, err := ParseString(konaGPU)
	if err != nil {
		t.Fatal(err)
	}
	gen := encode.MustString(root)
	if gen != konaGPU {
		t.Errorf("canonical input not reproduced:\n%s", gen)
	}
	again, _ := ParseString(gen)
	if !ir.Equal(root, again) {
		t.Error("parse(generate(parse(d))) != parse(d)")
	}
}

var (
	identGen = rapid.StringMatching(`[a-z][a-z0-9,_-]{0,8}(@[0-9a-f]{1,4})?`)
	valueGen = rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`<(0x[0-9a-f]{1,8} ){0,3}0x[0-9a-f]{1,8}>`),
		rapid.StringMatching(`"[a-z ,.-]{0,12}"`),
		rapid.StringMatching(`<&[a-z_]{1,6}>`),
	)
)

func genNode(t *rapid.T, depth int) *ir.Node {
	n := ir.NewNode(identGen.Draw(t, "node"))
	np := rapid.IntRange(0, 4).Draw(t, "nprops")
	for i := 0; i < np; i++ {
		n.AddProperty(ir.NewProperty(identGen.Draw(t, "prop"), valueGen.Draw(t, "value")))
	}
	if depth > 0 {
		nc := rapid.IntRange(0, 3).Draw(t, "nchildren")
		for i := 0; i < nc; i++ {
			n.AddChild(genNode(t, depth-1))
		}
	}
	return n
}

func TestGenerateIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root := ir.NewRoot()
		n := rapid.IntRange(0, 3).Draw(t, "top")
		for i := 0; i < n; i++ {
			root.AddChild(genNode(t, 2))
		}
		text := encode.MustString(root)
		parsed, err := ParseString(text, ParseStrict())
		if err != nil {
			t.Fatalf("%v in\n%s", err, text)
		}
		if !ir.Equal(root, parsed) {
			t.Fatalf("tree changed through\n%s", text)
		}
		if again := encode.MustString(parsed); again != text {
			t.Fatalf("generate not stable:\n%s\n---\n%s", text, again)
		}
	})
}

func ExampleParse() {
	root, _ := ParseString("/ { cpus { cpu@0 { reg = <0x0>; }; }; };")
	fmt.Println(root.Find("/cpus/cpu@0").Property("reg").DisplayValue())
	// Output: 0
}
