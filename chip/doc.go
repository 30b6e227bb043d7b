// Package chip describes the supported GPU chip variants: how their
// frequency tables are laid out, which silicon each speed bin denotes and
// the help text shown for table properties.
//
// # Usage
//
//	v, err := chip.ParseVariant("kona")
//	label := chip.LabelFor(v, 1)                  // "sdm865p"
//	text := chip.DefaultCatalog().Label(chip.Lookup(v, 1)) // "Snapdragon 865+"
//
// Definitions are static but can be overridden from YAML with
// Registry.Load.
package chip
