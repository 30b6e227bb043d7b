package encode

import (
	"github.com/signadot/dts-format/go-dts/ir"
)

func MustString(node *ir.Node) string {
	s, err := EncodeString(node)
	if err != nil {
		panic(err)
	}
	return s
}
