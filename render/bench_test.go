package render_test

import (
	"testing"

	"github.com/katalvlaran/pixelcal/render"
)

// BenchmarkRender measures a full 30-character message on the default grid.
func BenchmarkRender(b *testing.B) {
	const msg = "PUSH TO PRODUCTION :NODE: 2024"
	for i := 0; i < b.N; i++ {
		_ = render.Render(msg)
	}
}

func BenchmarkMeasureWidth(b *testing.B) {
	const msg = "PUSH TO PRODUCTION :NODE: 2024"
	for i := 0; i < b.N; i++ {
		_ = render.MeasureWidth(msg)
	}
}
