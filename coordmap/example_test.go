package coordmap_test

import (
	"fmt"

	"github.com/spatialref/coordspace/coordmap"
	"github.com/spatialref/coordspace/coords"
)

// Scenario:
//
//	A scanner stores a volume on an (i, j, k) voxel grid with 2 mm slices
//	and 4 mm in-plane spacing, offset 10 mm from the world origin.
//	FromStartStep captures exactly that grid geometry.
//
// Use case:
//
//	Mapping voxel indices to scanner millimetres and back.
func ExampleFromStartStep() {
	vox2mm, err := coordmap.FromStartStep(
		coords.Axes("ijk"), coords.Axes("xyz"),
		[]float64{10, 10, 10}, []float64{2, 4, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	world, _ := vox2mm.EvalPoint([]float64{1, 2, 3})
	fmt.Println("world:", world)

	mm2vox, _ := vox2mm.Inverse()
	back, _ := mm2vox.EvalPoint(world)
	fmt.Println("voxel:", back)
	// Output:
	// world: [12 18 22]
	// voxel: [1 2 3]
}

// Scenario:
//
//	Two affine steps — voxels to scanner millimetres, millimetres to a
//	standard space — collapse into one exact affine, no numeric
//	approximation involved.
func ExampleCompose() {
	vox2mm, _ := coordmap.FromStartStep(
		[]string{"i"}, []string{"m"}, []float64{0}, []float64{2})
	mm2std, _ := coordmap.FromStartStep(
		[]string{"m"}, []string{"x"}, []float64{5}, []float64{10})

	vox2std, err := coordmap.Compose(mm2std, vox2mm)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	out, _ := vox2std.EvalPoint([]float64{3})
	fmt.Println("input:", vox2std.Input().Names())
	fmt.Println("output:", vox2std.Output().Names())
	fmt.Println("value:", out)
	// Output:
	// input: [i]
	// output: [x]
	// value: [65]
}

// Scenario:
//
//	A purely spatial transform gains a leading time axis via Concat, so a
//	4D series can reuse the 3D geometry untouched.
func ExampleConcat() {
	spatial, _ := coordmap.FromStartStep(
		coords.Axes("ijk"), coords.Axes("xyz"),
		[]float64{0, 0, 0}, []float64{2, 2, 2})

	withTime, err := coordmap.Concat(spatial, "t", false)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("input:", withTime.Input().Names())
	out, _ := withTime.EvalPoint([]float64{1.5, 1, 1, 1})
	fmt.Println("value:", out)
	// Output:
	// input: [t i j k]
	// value: [1.5 2 2 2]
}

// Scenario:
//
//	An arbitrary nonlinear map probed by forward differences; near the
//	origin the returned homogeneous matrix is its best affine stand-in.
func ExampleLinearize() {
	square := coordmap.Func(func(pts [][]float64) ([][]float64, error) {
		out := make([][]float64, len(pts))
		for r, row := range pts {
			out[r] = []float64{row[0] * row[0]}
		}

		return out, nil
	})

	hom, err := coordmap.Linearize(square, 1,
		coordmap.WithStep(0.5), coordmap.WithOrigin([]float64{1}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Print(hom)
	// Output:
	// [2.5, -1.5]
	// [0, 1]
}
