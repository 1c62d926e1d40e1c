// Package label paints the main faces of the navigation cube, either with a
// flat color or with a rasterized text label.
package label

import (
	"fmt"

	"github.com/Faultbox/navcube/internal/navcube/cube"
)

// Decorator produces the material for one main face. It receives the face's
// current material and must not depend on geometry.
type Decorator interface {
	Decorate(side cube.Sides, base cube.Material) (cube.Material, error)
}

// Flat keeps the base color and drops any texture.
type Flat struct{}

// Decorate implements Decorator.
func (Flat) Decorate(_ cube.Sides, base cube.Material) (cube.Material, error) {
	return cube.Material{Color: base.Color}, nil
}

// Apply decorates all six main faces of cb. It stops at the first failure and
// leaves the faces already painted in place.
func Apply(d Decorator, cb *cube.Cube) error {
	for _, side := range cube.AllSides() {
		f, ok := cb.Facet(side)
		if !ok {
			return fmt.Errorf("label: missing face %s", side)
		}
		mat, err := d.Decorate(side, f.Material)
		if err != nil {
			return fmt.Errorf("label %s: %w", side, err)
		}
		if err := cb.Paint(side, mat); err != nil {
			return err
		}
	}
	return nil
}
