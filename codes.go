package opendart

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Codes holds either a single disclosure code (Left) or a list of codes (Right).
type Codes = mo.Either[string, []string]

// Code wraps a single disclosure code.
func Code(code string) mo.Option[Codes] {
	return mo.Some(mo.Left[string, []string](code))
}

// CodeList wraps several disclosure codes. They are sent as repeated query keys.
func CodeList(codes ...string) mo.Option[Codes] {
	return mo.Some(mo.Right[string, []string](codes))
}

// Upper returns codes with every value upper-cased, keeping its shape.
// An absent value stays absent.
func Upper(codes mo.Option[Codes]) mo.Option[Codes] {
	c, ok := codes.Get()
	if !ok {
		return codes
	}
	return mo.Some(c.Match(
		func(code string) Codes {
			return mo.Left[string, []string](strings.ToUpper(code))
		},
		func(list []string) Codes {
			return mo.Right[string, []string](lo.Map(list, func(code string, _ int) string {
				return strings.ToUpper(code)
			}))
		},
	))
}

// values flattens codes into the list of strings put on the wire.
func values(codes mo.Option[Codes]) []string {
	c, ok := codes.Get()
	if !ok {
		return nil
	}
	var out []string
	c.ForEach(
		func(code string) { out = []string{code} },
		func(list []string) { out = list },
	)
	return out
}
