package chip

import "strconv"

// Corners selects the naming of RPMh voltage corners and how many exist.
type Corners int

const (
	StandardCorners Corners = iota
	ExtendedCorners
	FullCorners
	FullExtendedCorners
)

func (c Corners) Count() int {
	switch c {
	case ExtendedCorners:
		return 464
	case FullCorners, FullExtendedCorners:
		return 480
	}
	return 416
}

var standardCorners = map[int]string{
	16:  "RETENTION",
	48:  "MIN_SVS",
	56:  "LOW_SVS_D1",
	64:  "LOW_SVS",
	80:  "LOW_SVS_L1",
	96:  "LOW_SVS_L2",
	128: "SVS",
	144: "SVS_L0",
	192: "SVS_L1",
	224: "SVS_L2",
	256: "NOM",
	320: "NOM_L1",
	336: "NOM_L2",
	352: "NOM_L3",
	384: "TURBO",
	400: "TURBO_L0",
	416: "TURBO_L1",
}

var extendedCorners = map[int]string{
	432: "TURBO_L2",
	448: "SUPER_TURBO",
	464: "SUPER_TURBO_NO_CPR",
}

var fullCorners = map[int]string{
	52:  "LOW_SVS_D2",
	60:  "LOW_SVS_D0",
	72:  "LOW_SVS_P1",
	288: "NOM_L0",
	432: "TURBO_L2",
	448: "TURBO_L3",
	464: "SUPER_TURBO",
	480: "SUPER_TURBO_NO_CPR",
}

var fullExtendedCorners = map[int]string{
	50:  "LOW_SVS_D3",
	51:  "LOW_SVS_D2_5",
	54:  "LOW_SVS_D1_5",
	452: "TURBO_L4",
}

// tables lists the name tables consulted for c, first match wins.
func (c Corners) tables() []map[int]string {
	switch c {
	case ExtendedCorners:
		return []map[int]string{standardCorners, extendedCorners}
	case FullCorners:
		return []map[int]string{standardCorners, extendedCorners, fullCorners}
	case FullExtendedCorners:
		return []map[int]string{standardCorners, extendedCorners, fullCorners, fullExtendedCorners}
	}
	return []map[int]string{standardCorners}
}

// Name returns the display name of voltage level, such as "256 - NOM", or
// the bare number when the corner has no name.
func (c Corners) Name(level int) string {
	n := strconv.Itoa(level)
	if level < 1 || level > c.Count() {
		return n
	}
	for _, t := range c.tables() {
		if s, ok := t[level]; ok {
			return n + " - " + s
		}
	}
	return n
}

// LevelName names a voltage level of v.
func (r *Registry) LevelName(v Variant, level int) string {
	d, _ := r.Definition(v)
	return d.Levels.Name(level)
}
