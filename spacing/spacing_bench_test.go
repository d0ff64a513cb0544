package spacing

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"4096", 4096},
}

func BenchmarkLinearTo(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			dst := make([]float64, tc.size)

			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				LinearTo(dst, 0.1, 2.5)
			}
		})
	}
}

func BenchmarkLogarithmic(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Logarithmic(0.4, 0.8, tc.size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
