package cloth

import (
	"testing"

	"github.com/katalvlaran/clothmesh/draft"
)

// BenchmarkBuild measures the full rasterize-segment-link-quad pipeline on
// a single square patch.
func BenchmarkBuild(b *testing.B) {
	d := draft.New()
	d.Lines = square(0, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Build(d, WithDetail(0.6), WithScale(0.1), WithStiffness(1))
		if err != nil {
			b.Fatal(err)
		}
	}
}
