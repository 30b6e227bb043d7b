package chip

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown chip variant")

// Variant identifies a chip family, and for some families whether the
// device tree carries one table or one per speed bin.
type Variant int

const (
	Kona Variant = iota
	KonaSingleBin
	Msmnile
	MsmnileSingleBin
	Lahaina
	LahainaSingleBin
	LitoV1
	LitoV2
	Lagoon
	Shima
	Yupik
	WaipioSingleBin
	CapeSingleBin
	Kalama
	Diwali
	UkeeSingleBin
	Pineapple
	CliffsSingleBin
	Cliffs7SingleBin
	KalamaSGSingleBin
	Sun
	Canoe
	Tuna
	PineappleSG
	KalamapQCSSingleBin
	Unknown
)

var variantNames = [...]string{
	Kona:                "kona",
	KonaSingleBin:       "kona_singleBin",
	Msmnile:             "msmnile",
	MsmnileSingleBin:    "msmnile_singleBin",
	Lahaina:             "lahaina",
	LahainaSingleBin:    "lahaina_singleBin",
	LitoV1:              "lito_v1",
	LitoV2:              "lito_v2",
	Lagoon:              "lagoon",
	Shima:               "shima",
	Yupik:               "yupik",
	WaipioSingleBin:     "waipio_singleBin",
	CapeSingleBin:       "cape_singleBin",
	Kalama:              "kalama",
	Diwali:              "diwali",
	UkeeSingleBin:       "ukee_singleBin",
	Pineapple:           "pineapple",
	CliffsSingleBin:     "cliffs_singleBin",
	Cliffs7SingleBin:    "cliffs_7_singleBin",
	KalamaSGSingleBin:   "kalama_sg_singleBin",
	Sun:                 "sun",
	Canoe:               "canoe",
	Tuna:                "tuna",
	PineappleSG:         "pineapple_sg",
	KalamapQCSSingleBin: "kalamap_qcs_singleBin",
	Unknown:             "unknown",
}

// Variants returns all variants in declaration order, Unknown last.
func Variants() []Variant {
	res := make([]Variant, 0, len(variantNames))
	for v := range variantNames {
		res = append(res, Variant(v))
	}
	return res
}

func (v Variant) Valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant accepts variant names case insensitively.
func ParseVariant(s string) (Variant, error) {
	for i, n := range variantNames {
		if strings.EqualFold(n, s) {
			return Variant(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(d []byte) error {
	pv, err := ParseVariant(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// SingleBin reports whether the variant name marks a single table layout.
func (v Variant) SingleBin() bool {
	return strings.HasSuffix(v.String(), "_singleBin")
}

// IsEquivalent reports whether a and b are the same silicon family, ignoring
// the table layout and the lito revision.
func IsEquivalent(a, b Variant) bool {
	if a == b {
		return true
	}
	return family(a) == family(b)
}

// Equivalents returns the other known variants of v's family.
func Equivalents(v Variant) []Variant {
	var res []Variant
	for _, o := range Variants() {
		if o != v && o != Unknown && IsEquivalent(v, o) {
			res = append(res, o)
		}
	}
	return res
}

func family(v Variant) string {
	s := strings.Replace(v.String(), "_singleBin", "", 1)
	return strings.Replace(s, "lito_v2", "lito_v1", 1)
}
