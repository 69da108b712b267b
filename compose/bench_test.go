package compose_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/pixelcal/compose"
	"github.com/katalvlaran/pixelcal/render"
)

func BenchmarkWrite(b *testing.B) {
	g := render.Render("PUSH TO PRODUCTION :NODE: 2024", render.WithMaxWidth(120))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := compose.Write(io.Discard, g, compose.WithAnimation(compose.Spiral)); err != nil {
			b.Fatal(err)
		}
	}
}
