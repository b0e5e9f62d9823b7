package data

import (
	"fmt"
	"strings"
)

// Kind identifies the concrete type of a Datum.
type Kind int

const (
	ExtensionFracture Kind = iota
	StyloliteInterface
	CompactionBand
	DilationBand
	StriatedPlane
	NeoformedStriatedPlane
)

var kindNames = [...]string{
	ExtensionFracture:      "extension fracture",
	StyloliteInterface:     "stylolite interface",
	CompactionBand:         "compaction band",
	DilationBand:           "dilation band",
	StriatedPlane:          "striated plane",
	NeoformedStriatedPlane: "neoformed striated plane",
}

// kindAliases maps every accepted type name to its kind.
var kindAliases = map[string]Kind{
	"extension fracture":       ExtensionFracture,
	"joint":                    ExtensionFracture,
	"dyke":                     ExtensionFracture,
	"dike":                     ExtensionFracture,
	"stylolite interface":      StyloliteInterface,
	"stylolite":                StyloliteInterface,
	"compaction band":          CompactionBand,
	"dilation band":            DilationBand,
	"striated plane":           StriatedPlane,
	"neoformed striated plane": NeoformedStriatedPlane,
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{ExtensionFracture, StyloliteInterface, CompactionBand, DilationBand, StriatedPlane, NeoformedStriatedPlane}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsFault reports whether k carries a striation.
func (k Kind) IsFault() bool {
	return k == StriatedPlane || k == NeoformedStriatedPlane
}

// alignsWithSigma1 reports whether the normal of a fracture-like kind is
// expected along σ1 (pressure-solution and compaction structures) rather
// than σ3 (opening structures).
func (k Kind) alignsWithSigma1() bool {
	return k == StyloliteInterface || k == CompactionBand
}

// ParseKind resolves a datum type name, case and spacing insensitive.
// Underscores and hyphens are read as spaces.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnsupportedKind)
}
