package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := []string{"a", "b", "c", "d"}
	to := []string{"a", "B", "c", "d", "e"}
	got := Lines(from, to)
	expected := []Change{
		{Op: Equal, Lines: []string{"a"}},
		{Op: Delete, Lines: []string{"b"}},
		{Op: Insert, Lines: []string{"B"}},
		{Op: Equal, Lines: []string{"c", "d"}},
		{Op: Insert, Lines: []string{"e"}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected a change")
	}
	if Changed(Lines(from, from)) {
		t.Error("expected no change")
	}
}

func TestStrings(t *testing.T) {
	got := Strings("x\ny\n", "x\ny")
	if Changed(got) {
		t.Errorf("final newline reported as change: %v", got)
	}
}

func TestUnified(t *testing.T) {
	from := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	to := []string{"1", "2", "three", "4", "5", "6", "7", "8", "9", "10", "11"}
	got := Unified("a.dts", "b.dts", from, to, 1)
	expected := `--- a.dts
+++ b.dts
@@ -2,3 +2,3 @@
 2
-3
+three
 4
@@ -10 +10,2 @@
 10
+11
`
	if got != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, got)
	}
	if Unified("a", "b", from, from, 3) != "" {
		t.Error("expected empty diff")
	}
}

func TestUnifiedMergesHunks(t *testing.T) {
	from := []string{"a", "b", "c", "d", "e"}
	to := []string{"A", "b", "c", "d", "E"}
	got := Unified("x", "y", from, to, 2)
	expected := `--- x
+++ y
@@ -1,5 +1,5 @@
-a
+A
 b
 c
 d
-e
+E
`
	if got != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, got)
	}
}
