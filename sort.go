package bvh

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// Ranges below this size are sorted serially.
const parallelSortMin = 4096

// sortByCenter sorts a permutation of element indices by each
// element's centroid coordinate along the given axis. Large ranges
// are sorted with a fork/join parallel merge sort. Tie-breaking
// between equal centroid coordinates is unspecified.
func sortByCenter[T constraints.Float, V Vec[T]](order []int, centers []V, axis int) {
	if len(order) < parallelSortMin {
		sort.Slice(order, func(i, j int) bool {
			return centers[order[i]][axis] < centers[order[j]][axis]
		})
		return
	}
	scratch := make([]int, len(order))
	parallelMergeSort[T, V](order, scratch, centers, axis, forkDepth(runtime.NumCPU()))
}

// forkDepth returns how many times to halve the range so that the
// number of sorting goroutines roughly matches the CPU count.
func forkDepth(cpus int) int {
	d := 0
	for 1<<d < cpus {
		d++
	}
	return d
}

func parallelMergeSort[T constraints.Float, V Vec[T]](order, scratch []int, centers []V, axis, depth int) {
	if depth == 0 || len(order) < parallelSortMin {
		sort.Slice(order, func(i, j int) bool {
			return centers[order[i]][axis] < centers[order[j]][axis]
		})
		return
	}

	mid := len(order) / 2
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		parallelMergeSort[T, V](order[:mid], scratch[:mid], centers, axis, depth-1)
	}()
	parallelMergeSort[T, V](order[mid:], scratch[mid:], centers, axis, depth-1)
	wg.Wait()

	i, j, k := 0, mid, 0
	for i < mid && j < len(order) {
		if centers[order[j]][axis] < centers[order[i]][axis] {
			scratch[k] = order[j]
			j++
		} else {
			scratch[k] = order[i]
			i++
		}
		k++
	}
	k += copy(scratch[k:], order[i:mid])
	copy(scratch[k:], order[j:])
	copy(order, scratch)
}
