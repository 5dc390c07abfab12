package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/yyyoichi/haar2d"
)

func genSrc(size int) []float32 {
	src := make([]float32, size*size)
	for i := range src {
		src[i] = rand.Float32() * 255.0
	}
	return src
}

func BenchmarkForward(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		src := genSrc(size)
		scratch := make([]float32, len(src))
		out := make([]float32, len(src))
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				_ = haar2d.Forward(size, src, scratch, out)
			}
		})
		t, _ := haar2d.New[float32](size, haar2d.WithWorkers(runtime.GOMAXPROCS(0)))
		b.Run(fmt.Sprintf("parallel_%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				_ = t.Forward(src, out)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		src := genSrc(size)
		scratch := make([]float32, len(src))
		coef := make([]float32, len(src))
		out := make([]float32, len(src))
		_ = haar2d.Forward(size, src, scratch, coef)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				_ = haar2d.Inverse(size, coef, scratch, out)
			}
		})
		t, _ := haar2d.New[float32](size, haar2d.WithWorkers(runtime.GOMAXPROCS(0)))
		b.Run(fmt.Sprintf("parallel_%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				_ = t.Inverse(coef, out)
			}
		})
	}
}

func BenchmarkDebugUnpack(b *testing.B) {
	for _, size := range []int{256, 1024} {
		coef := genSrc(size)
		out := make([]float32, len(coef))
		b.Run(fmt.Sprintf("direct_%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				_ = haar2d.DebugUnpack(size, coef, out, 128)
			}
		})
		t, _ := haar2d.New[float32](size)
		b.Run(fmt.Sprintf("cached_%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				_ = t.DebugUnpack(coef, out, 128)
			}
		})
	}
}
