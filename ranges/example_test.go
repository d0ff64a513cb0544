package ranges_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ddscat/ranges"
)

func ExampleNew() {
	r, err := ranges.New(0.2, 0.8, 4)
	if err != nil {
		panic(err)
	}

	fmt.Println(r)

	for v := range r.All() {
		fmt.Printf("%.1f ", v)
	}

	fmt.Println()

	// Output:
	// 0.200000  0.800000  4  LIN
	// 0.2 0.4 0.6 0.8
}

func ExampleNew_logarithmic() {
	r, err := ranges.New(1, 4, 4, ranges.WithMode(ranges.ModeLogarithmic))
	if err != nil {
		panic(err)
	}

	for v := range r.All() {
		fmt.Printf("%.3f ", v)
	}

	fmt.Println()

	// Output:
	// 1.000 1.587 2.520 4.000
}

func ExampleNew_missingTable() {
	_, err := ranges.New(0.5, 0.7, 3, ranges.WithMode(ranges.ModeTabulated))
	fmt.Println(errors.Is(err, ranges.ErrConfiguration))

	// Output:
	// true
}

func ExampleRange_WithBounds() {
	r, _ := ranges.New(0, 1, 3)
	wider, _ := r.WithBounds(0, 1, 5)

	fmt.Println(r.Len(), wider.Len())
	fmt.Println(wider)

	// Output:
	// 3 5
	// 0.000000  1.000000  5  LIN
}

func ExampleNewRotation() {
	rot, _ := ranges.NewRotation(0, 90, 3)
	fmt.Println(rot)
	fmt.Println(rot.Values())

	// Output:
	// 0.000000  90.000000  3
	// [0 45 90]
}

func ExampleNewScatteringPlane() {
	p := ranges.NewScatteringPlane(0, 0, 180, 5)
	fmt.Println(p)

	// Output:
	// 0.000000  0.000000  180.000000  5.0
}

func ExampleParse() {
	r, err := ranges.Parse("0.5 0.5 1 'LIN' = wavelengths")
	if err != nil {
		panic(err)
	}

	fmt.Println(r)

	// Output:
	// 0.500000  0.500000  1  LIN
}
