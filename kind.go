package transition

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Kind identifies a transition effect.
type Kind uint8

// Transition effects.
const (
	KindSlider Kind = iota
	KindFade
	KindAppearRight
	KindWipe
	KindBarndoor
	KindRadial
	KindPie
	KindPieAdvanced
	KindZoom
	KindBlur
	KindCheckerboard
	KindCheckerboardAnimated
	KindMovingBars
	KindInterleave
	KindRandomCircles
	KindRandomSquares
	KindBlinds

	kindCount
)

var kindNames = [kindCount]string{
	KindSlider:               "slider",
	KindFade:                 "fade",
	KindAppearRight:          "appearright",
	KindWipe:                 "wipe",
	KindBarndoor:             "barndoor",
	KindRadial:               "radial",
	KindPie:                  "pie",
	KindPieAdvanced:          "pieadvanced",
	KindZoom:                 "zoom",
	KindBlur:                 "blur",
	KindCheckerboard:         "checkerboard",
	KindCheckerboardAnimated: "checkerboardanimated",
	KindMovingBars:           "movingbars",
	KindInterleave:           "interleave",
	KindRandomCircles:        "randomcircles",
	KindRandomSquares:        "randomsquares",
	KindBlinds:               "blinds",
}

// kindAliases maps alternative type names onto their effect.
var kindAliases = map[string]Kind{
	"slideright":            KindSlider,
	"piesweep":              KindPieAdvanced,
	"damier":                KindCheckerboard,
	"checkerboard_anim":     KindCheckerboardAnimated,
	"checkerboard-animated": KindCheckerboardAnimated,
	"bars":                  KindMovingBars,
}

// String returns the canonical type name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every effect in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Aliases returns the alternative names accepted for k.
func (k Kind) Aliases() []string {
	var out []string
	for name, kind := range kindAliases {
		if kind == k {
			out = append(out, name)
		}
	}
	return out
}

// ParseKind decodes a type name, case-insensitively. Aliases such as
// "damier" or "piesweep" are accepted. Unknown names fail with an error
// wrapping ErrUnknownKind that quotes the original string.
func ParseKind(name string) (Kind, error) {
	key := fold(name)
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKind, name)
}

// fold lower-cases and trims a configuration string for comparison.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
