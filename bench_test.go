// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap_test

import (
	"cmp"
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/intervalheap"
)

type orderedSlice[K cmp.Ordered] []K

func (h *orderedSlice[K]) Less(i, j int) bool {
	return (*h)[i] < (*h)[j]
}

func (h *orderedSlice[K]) Swap(i, j int) {
	(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
}

func (h *orderedSlice[K]) Len() int {
	return len(*h)
}

func (h *orderedSlice[K]) Pop() (v any) {
	old := *h
	n := len(old)
	v = (*h)[n-1]
	*h = old[:n-1]
	return
}

func (h *orderedSlice[K]) Push(v any) {
	*h = append(*h, v.(K))
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

const BenchmarkInputSize = 1000

func benchmarkStdHeap[K cmp.Ordered](b *testing.B, h *orderedSlice[K], keys []K) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			stdheap.Push(h, keys[j])
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(h).(K)
		}
	}
}

func BenchmarkStdHeapDup_1000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, BenchmarkInputSize)
	h := make(orderedSlice[int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkStdHeapRand_1000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, BenchmarkInputSize)
	h := make(orderedSlice[int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkStdHeapZipf_1000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, BenchmarkInputSize)
	h := make(orderedSlice[uint64], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func benchmarkIntervalHeap[K cmp.Ordered](b *testing.B, h *intervalheap.T[K], keys []K) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			if err := h.Insert(keys[j]); err != nil {
				b.Fatal(err)
			}
		}
		for h.Len() > 0 {
			if _, err := h.RemoveMin(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkIntervalHeapDup_1000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, BenchmarkInputSize)
	h, err := intervalheap.NewOrdered[int](BenchmarkInputSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	benchmarkIntervalHeap(b, h, keys)
}

func BenchmarkIntervalHeapRand_1000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, BenchmarkInputSize)
	h, err := intervalheap.NewOrdered[int](BenchmarkInputSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	benchmarkIntervalHeap(b, h, keys)
}

func BenchmarkIntervalHeapZipf_1000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, BenchmarkInputSize)
	h, err := intervalheap.NewOrdered[uint64](BenchmarkInputSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	benchmarkIntervalHeap(b, h, keys)
}

func benchmarkBothEnds[K cmp.Ordered](b *testing.B, h *intervalheap.T[K], keys []K) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			if err := h.Insert(keys[j]); err != nil {
				b.Fatal(err)
			}
		}
		for h.Len() > 0 {
			if _, err := h.RemoveMin(); err != nil {
				b.Fatal(err)
			}
			if h.Len() > 0 {
				if _, err := h.RemoveMax(); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
}

func BenchmarkBothEndsDup_1000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, BenchmarkInputSize)
	h, err := intervalheap.NewOrdered[int](BenchmarkInputSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	benchmarkBothEnds(b, h, keys)
}

func BenchmarkBothEndsRand_1000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, BenchmarkInputSize)
	h, err := intervalheap.NewOrdered[int](BenchmarkInputSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	benchmarkBothEnds(b, h, keys)
}

func BenchmarkBothEndsZipf_1000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, BenchmarkInputSize)
	h, err := intervalheap.NewOrdered[uint64](BenchmarkInputSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	benchmarkBothEnds(b, h, keys)
}
