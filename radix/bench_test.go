package radix_test

import (
	"testing"

	"github.com/katalvlaran/lvpoly/radix"
)

var sinkI int64

func BenchmarkToInt64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := radix.ToInt64("0110111101100001100001010111111", 2)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = v
	}
}
