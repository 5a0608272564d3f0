// SPDX-License-Identifier: MIT
// Package sparse_test provides benchmarks for the sparse kernels,
// using deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmat/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{256, 1024}

// benchDensity keeps fixtures genuinely sparse.
const benchDensity = 0.01

// sinks to defeat dead-code elimination
var sinkM *sparse.Sparse

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A := randomSparse(b, rng, n, n, benchDensity)
			B := randomSparse(b, rng, n, n, benchDensity)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			A := randomSparse(b, rng, n, n, benchDensity)
			B := randomSparse(b, rng, n, n, benchDensity)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(11))
			A := randomSparse(b, rng, n, n, benchDensity)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
