package fortune_test

import (
	"fmt"

	"github.com/hwang/fortune-voronoi/fortune"
	"github.com/hwang/fortune-voronoi/geom"
)

func Example() {
	sites := []geom.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 2},
	}

	d, err := fortune.New(sites)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := d.Construct(); err != nil {
		fmt.Println("error:", err)
		return
	}
	d.Bound(geom.NewRect(-2, -2, 4, 4))

	fmt.Println("faces:", len(d.Faces()))

	foundCircumcenter := false
	for _, v := range d.Vertices() {
		if geom.AlmostEqual(v.Point.X, 1) && geom.AlmostEqual(v.Point.Y, 0.75) {
			foundCircumcenter = true
		}
	}
	fmt.Println("found circumcenter:", foundCircumcenter)

	// Output:
	// faces: 3
	// found circumcenter: true
}
