package ir

// Equal reports whether a and b have the same names, properties and children
// in the same order. Parent links and display state are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name {
		return false
	}
	if len(a.Properties) != len(b.Properties) || len(a.Children) != len(b.Children) {
		return false
	}
	for i, ap := range a.Properties {
		bp := b.Properties[i]
		if ap.Name != bp.Name || ap.Value != bp.Value {
			return false
		}
	}
	for i, ac := range a.Children {
		if !Equal(ac, b.Children[i]) {
			return false
		}
	}
	return true
}
