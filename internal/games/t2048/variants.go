// Package t2048 is the playable 2048 game: it drives a session from
// platform input and draws the board, HUD and statistics to a screen buffer.
package t2048

import (
	"fmt"

	"github.com/vovakirdan/merge2048/internal/registry"
)

// Variant is a registered board size.
type Variant struct {
	ID   string
	Name string
	Size int
}

// Variants are the board sizes offered by default. The classic 4x4 game
// keeps the bare "2048" ID so existing score tables stay valid.
var Variants = []Variant{
	{ID: "2048", Name: "2048", Size: 4},
	{ID: "2048_3x3", Name: "2048 (3x3)", Size: 3},
	{ID: "2048_5x5", Name: "2048 (5x5)", Size: 5},
	{ID: "2048_6x6", Name: "2048 (6x6)", Size: 6},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// VariantFor returns the registered variant of the given size, or an ad-hoc
// one with its own ID when the size has no registration.
func VariantFor(size int) Variant {
	for _, v := range Variants {
		if v.Size == size {
			return v
		}
	}
	return Variant{
		ID:   fmt.Sprintf("2048_%dx%d", size, size),
		Name: fmt.Sprintf("2048 (%dx%d)", size, size),
		Size: size,
	}
}

// Lookup finds a registered variant by ID.
func Lookup(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
