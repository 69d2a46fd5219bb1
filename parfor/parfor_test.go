package parfor_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpcgo/rangepar/backend"
	"github.com/hpcgo/rangepar/element"
	"github.com/hpcgo/rangepar/gsync"
	"github.com/hpcgo/rangepar/parfor"
	"github.com/hpcgo/rangepar/ranges"
	"github.com/hpcgo/rangepar/tuple"
)

// probed wraps a range and counts Split calls, propagating the counter into
// both halves.
type probed[C ranges.Cursor[C, E], E any] struct {
	ranges.Range[C, E]
	splits *int32
}

func (p probed[C, E]) Split() (ranges.Range[C, E], ranges.Range[C, E]) {
	atomic.AddInt32(p.splits, 1)
	left, right := p.Range.Split()
	return probed[C, E]{left, p.splits}, probed[C, E]{right, p.splits}
}

// countingBackend records whether the driver delegated to it; delegated jobs
// still run, sequentially.
type countingBackend struct {
	calls int32
}

func (b *countingBackend) ForEach(j backend.Job) {
	atomic.AddInt32(&b.calls, 1)
	j.Run()
}

func (b *countingBackend) Reduce(j backend.FoldJob, join func(x, y any) any, init any) any {
	atomic.AddInt32(&b.calls, 1)
	return j.Fold(init)
}

// ref is a dereferenceable handle, standing in for a nested cursor.
type ref[E any] struct {
	v E
}

func (r ref[E]) Deref() E { return r.v }

func delegatingBackends() map[string]backend.Backend {
	return map[string]backend.Backend{
		"forkjoin": backend.NewForkJoin(),
		"group":    backend.NewGroup(backend.WithMinSize(1), backend.WithLimit(4)),
	}
}

func TestForEachNonDivisibleNeverTouchesBackend(t *testing.T) {
	var splits int32
	var r ranges.Range[ranges.IntCursor, int] = probed[ranges.IntCursor, int]{ranges.IntsGrain(0, 5, 10), &splits}
	require.False(t, r.IsDivisible())

	var b countingBackend
	var got []int
	parfor.ForEachOn(&b, r, element.Scalar(func(x int) { got = append(got, x) }))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got, "sequential path preserves traversal order")
	assert.Zero(t, atomic.LoadInt32(&b.calls), "no delegation for a non-divisible range")
	assert.Zero(t, atomic.LoadInt32(&splits), "no split for a non-divisible range")
}

func TestReduceNonDivisibleNeverTouchesBackend(t *testing.T) {
	var splits int32
	var r ranges.Range[ranges.IntCursor, int] = probed[ranges.IntCursor, int]{ranges.IntsGrain(1, 6, 10), &splits}

	var b countingBackend
	got := parfor.ReduceOn(&b, r,
		element.MapScalar(func(x int) int { return x * x }),
		func(x, y int) int { return x + y },
		0,
	)

	assert.Equal(t, 55, got)
	assert.Zero(t, atomic.LoadInt32(&b.calls))
	assert.Zero(t, atomic.LoadInt32(&splits))
}

func TestForEachSameMultisetOnEveryPath(t *testing.T) {
	data := make([]int, 200)
	for i := range data {
		data[i] = i
	}

	record := func(b backend.Backend) map[int]int64 {
		var counts gsync.Counter[int]
		parfor.ForEachOn(b, ranges.SliceGrain(data, 1), element.Scalar(counts.Add))
		return counts.Counts()
	}

	want := record(nil) // forced sequential, divisibility notwithstanding
	for name, b := range delegatingBackends() {
		if diff := cmp.Diff(want, record(b)); diff != "" {
			t.Errorf("%s: invocation multiset mismatch (-sequential +delegated):\n%s", name, diff)
		}
	}
}

func TestReduceSumOfSquares(t *testing.T) {
	// [1,2,3,4,5], op x*x, join +, init 0 -> 55 on every path.
	backends := delegatingBackends()
	backends["nil"] = nil
	backends["sequential"] = backend.Sequential{}

	for name, b := range backends {
		got := parfor.ReduceOn(b, ranges.IntsGrain(1, 6, 1),
			element.MapScalar(func(x int) int { return x * x }),
			func(x, y int) int { return x + y },
			0,
		)
		assert.Equal(t, 55, got, "backend %s", name)
	}
}

func TestReduceMatchesSequentialFoldOnLargeRange(t *testing.T) {
	op := element.MapScalar(func(x int) int { return 3*x + 1 })
	join := func(x, y int) int { return x + y }

	want := parfor.ReduceOn(nil, ranges.IntsGrain(0, 5000, 1), op, join, 0)
	for name, b := range delegatingBackends() {
		got := parfor.ReduceOn(b, ranges.IntsGrain(0, 5000, 1), op, join, 0)
		assert.Equal(t, want, got, "backend %s", name)
	}
}

func TestTupleOperatorReceivesUnpackedFieldsOnEveryPath(t *testing.T) {
	nums := []int{1, 2}
	names := []string{"a", "b"}

	record := func(b backend.Backend) map[tuple.Pair[int, string]]int64 {
		var counts gsync.Counter[tuple.Pair[int, string]]
		parfor.ForEachOn(b, ranges.ZipGrain(nums, names, 1),
			element.Pair(func(n int, s string) { counts.Add(tuple.MakePair(n, s)) }))
		return counts.Counts()
	}

	want := map[tuple.Pair[int, string]]int64{
		tuple.MakePair(1, "a"): 1,
		tuple.MakePair(2, "b"): 1,
	}
	assert.Equal(t, want, record(nil))
	for name, b := range delegatingBackends() {
		if diff := cmp.Diff(want, record(b)); diff != "" {
			t.Errorf("%s: recorded pairs mismatch:\n%s", name, diff)
		}
	}
}

func TestNestedHandleElementsUnwrapOnEveryPath(t *testing.T) {
	handles := []ref[tuple.Pair[int, string]]{
		{v: tuple.MakePair(1, "a")},
		{v: tuple.MakePair(2, "b")},
		{v: tuple.MakePair(3, "c")},
	}
	op := func(counts *gsync.Counter[tuple.Pair[int, string]]) element.Visitor[ref[tuple.Pair[int, string]]] {
		return element.Indirect[ref[tuple.Pair[int, string]]](
			element.Pair(func(n int, s string) { counts.Add(tuple.MakePair(n, s)) }),
		)
	}

	want := map[tuple.Pair[int, string]]int64{
		tuple.MakePair(1, "a"): 1,
		tuple.MakePair(2, "b"): 1,
		tuple.MakePair(3, "c"): 1,
	}
	for name, b := range delegatingBackends() {
		var counts gsync.Counter[tuple.Pair[int, string]]
		parfor.ForEachOn(b, ranges.SliceGrain(handles, 1), op(&counts))
		assert.Equal(t, want, counts.Counts(), "backend %s", name)
	}
}

func TestOperatorPanicAbortsForEach(t *testing.T) {
	errBoom := errors.New("boom")
	backends := delegatingBackends()
	backends["nil"] = nil

	for name, b := range backends {
		func() {
			defer func() {
				p := recover()
				require.NotNil(t, p, "backend %s", name)
				err, ok := p.(error)
				require.True(t, ok, "backend %s: panic value should stay an error, got %T", name, p)
				assert.ErrorIs(t, err, errBoom, "backend %s", name)
			}()
			parfor.ForEachOn(b, ranges.IntsGrain(0, 64, 1), element.Scalar(func(x int) {
				if x == 33 {
					panic(errBoom)
				}
			}))
			t.Errorf("backend %s: ForEach should have panicked", name)
		}()
	}
}

func TestOperatorPanicDiscardsPartialReduction(t *testing.T) {
	errBoom := errors.New("boom")
	for name, b := range delegatingBackends() {
		func() {
			defer func() {
				p := recover()
				require.NotNil(t, p, "backend %s", name)
			}()
			parfor.ReduceOn(b, ranges.IntsGrain(0, 64, 1),
				element.MapScalar(func(x int) int {
					if x == 40 {
						panic(errBoom)
					}
					return x
				}),
				func(x, y int) int { return x + y },
				0,
			)
			t.Errorf("backend %s: Reduce should have panicked instead of returning", name)
		}()
	}
}

func TestUseInstallsDefaultBackend(t *testing.T) {
	prev := parfor.Default()
	defer parfor.Use(prev)

	var b countingBackend
	parfor.Use(&b)
	require.Same(t, backend.Backend(&b), parfor.Default())

	got := parfor.Reduce(ranges.IntsGrain(1, 6, 1),
		element.MapScalar(func(x int) int { return x * x }),
		func(x, y int) int { return x + y },
		0,
	)
	assert.Equal(t, 55, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&b.calls), "divisible range goes through the installed backend")

	parfor.Use(nil)
	got = parfor.Reduce(ranges.IntsGrain(1, 6, 1),
		element.MapScalar(func(x int) int { return x * x }),
		func(x, y int) int { return x + y },
		0,
	)
	assert.Equal(t, 55, got, "nil backend degrades to sequential instead of skipping work")
}
