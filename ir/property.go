package ir

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Property struct {
	Name string
	// Value is the raw source text of the value, without the trailing ';'.
	// It is empty for valueless (boolean) properties.
	Value string

	numeric bool
}

// NewProperty trims name and value and records whether value is a bracketed
// cell array. That classification never changes afterwards.
func NewProperty(name, value string) *Property {
	v := strings.TrimSpace(value)
	return &Property{
		Name:    strings.TrimSpace(name),
		Value:   v,
		numeric: IsNumericArray(v),
	}
}

// IsNumericArray reports whether the value was a <...> array when the
// property was created.
func (p *Property) IsNumericArray() bool {
	return p.numeric
}

// IsBool reports whether p has no value.
func (p *Property) IsBool() bool {
	return p.Value == ""
}

// DisplayValue is the value as shown for editing: hex cells of numeric
// arrays become unsigned decimals, anything else is returned as is.
func (p *Property) DisplayValue() string {
	if !p.numeric {
		return p.Value
	}
	return ToDisplay(p.Value)
}

// SetDisplayValue stores an edited display value, converting decimal cells
// back to hex for numeric arrays.
func (p *Property) SetDisplayValue(v string) {
	if !p.numeric {
		p.Value = v
		return
	}
	p.Value = FromDisplay(v)
}

// SetRaw replaces the raw value. The numeric array flag is not recomputed.
func (p *Property) SetRaw(v string) {
	p.Value = strings.TrimSpace(v)
}

func (p *Property) Clone() *Property {
	res := *p
	return &res
}

func (p *Property) String() string {
	if p.Value == "" {
		return p.Name + ";"
	}
	return fmt.Sprintf("%s = %s;", p.Name, p.Value)
}

// IsNumericArray reports whether v, trimmed, is wrapped in '<' and '>'.
func IsNumericArray(v string) bool {
	v = strings.TrimSpace(v)
	return len(v) >= 2 && v[0] == '<' && v[len(v)-1] == '>'
}

// ToDisplay converts the 0x prefixed cells of a <...> array to unsigned
// decimal and drops the brackets. Cells that are not hex, or do not fit in 64
// bits, are kept verbatim. Values that are not arrays are returned unchanged.
//
// Leading zeros and hex case are not preserved through ToDisplay and
// FromDisplay.
func ToDisplay(raw string) string {
	v := strings.TrimSpace(raw)
	if !IsNumericArray(v) {
		return raw
	}
	cells := strings.Fields(v[1 : len(v)-1])
	res := make([]string, len(cells))
	for i, c := range cells {
		res[i] = c
		if len(c) < 2 || !strings.EqualFold(c[:2], "0x") {
			continue
		}
		u, err := strconv.ParseUint(c[2:], 16, 64)
		if err != nil {
			continue
		}
		res[i] = strconv.FormatUint(u, 10)
	}
	return strings.Join(res, " ")
}

var decimalCell = regexp.MustCompile(`^-?\d+$`)

// FromDisplay converts decimal cells to lower case 0x hex and wraps the
// result in '<' and '>'. Negative cells are written as their 64 bit two's
// complement. Other cells are kept verbatim.
func FromDisplay(display string) string {
	cells := strings.Fields(display)
	for i, c := range cells {
		if !decimalCell.MatchString(c) {
			continue
		}
		if n, err := strconv.ParseInt(c, 10, 64); err == nil {
			cells[i] = fmt.Sprintf("0x%x", uint64(n))
			continue
		}
		if u, err := strconv.ParseUint(c, 10, 64); err == nil {
			cells[i] = fmt.Sprintf("0x%x", u)
		}
	}
	return "<" + strings.Join(cells, " ") + ">"
}
