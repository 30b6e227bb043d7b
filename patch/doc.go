// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches to
// DTS trees through their JSON form.
//
// A node's JSON form is
//
//	{"name": "...", "properties": [{"name": "...", "value": "..."}], "children": [...]}
//
// so a patch path such as /children/0/properties/1/value addresses the raw
// value of the second property of the first top level node. Patches may be
// written in JSON or YAML.
package patch
