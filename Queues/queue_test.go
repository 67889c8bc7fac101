package Queues

import (
	"errors"
	"math/rand"
	"testing"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	_, err := q.Pop()
	assert.ErrorIs(t, err, Go_Containers.ErrEmptyStructure)
	var eq *EmptyQueueError
	assert.True(t, errors.As(err, &eq))
	_, err = q.Peek()
	assert.ErrorIs(t, err, &EmptyQueueError{})

	for i := range 100 {
		q.Push(i)
	}
	assert.Equal(t, 100, q.Size())
	for i := range 100 {
		v, err := q.Peek()
		require.NoError(t, err)
		require.Equal(t, i, v)
		v, err = q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	assert.True(t, q.Empty())
}

func TestArrayQueue_Wraparound(t *testing.T) {
	q := MakeArrayQueue[int](4).(*circArrQ[int])
	q.Push(0)
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Pop()
	q.Push(3)
	q.Push(4)
	q.Push(5)
	assert.Equal(t, 4, len(q.content), "still fits")
	assert.Equal(t, []interface{}{2, 3, 4, 5}, q.Values())
	q.Push(6) // full and wrapped
	assert.Equal(t, 7, len(q.content))
	assert.Equal(t, []interface{}{2, 3, 4, 5, 6}, q.Values())
	assert.Equal(t, "ArrayQueue[2 3 4 5 6]", q.String())

	q.Pop()
	q.Shrink()
	assert.Equal(t, 4, len(q.content))
	q.Push(7)
	assert.Equal(t, []interface{}{3, 4, 5, 6, 7}, q.Values())

	q.Clear()
	assert.True(t, q.Empty())
	q.Shrink()
	assert.Equal(t, 1, len(q.content))
	q.Push(8)
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 8, v)
}

func TestArrayQueue_Random(t *testing.T) {
	q := MakeArrayQueue[int](1)
	var ref []int
	for range 5000 {
		if rg.Intn(5) < 3 {
			v := rg.Int()
			q.Push(v)
			ref = append(ref, v)
		} else {
			v, err := q.Pop()
			if len(ref) == 0 {
				require.Error(t, err)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, ref[0], v)
			ref = ref[1:]
		}
		if rg.Intn(100) == 0 {
			q.Shrink()
		}
	}
	require.Equal(t, len(ref), q.Size())
}

func pqs[T any](c Go_Containers.Compare[T]) map[string]PriorityQueue[T] {
	return map[string]PriorityQueue[T]{
		"heap":   NewHeapPQWith(c),
		"linked": NewListPQ(c),
		"array":  NewArrayListPQ(c),
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	for name, pq := range pqs[int](Go_Containers.Ordered[int]) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, pq.Empty())
			assert.False(t, pq.Remove())
			_, err := pq.Peek()
			assert.ErrorIs(t, err, Go_Containers.ErrEmptyStructure)
			assert.True(t, pq.Add(1))
			assert.True(t, pq.Remove())
			assert.False(t, pq.Remove())
		})
	}
}

func TestPriorityQueue_Scenario(t *testing.T) {
	for name, pq := range pqs[int](Go_Containers.Ordered[int]) {
		t.Run(name, func(t *testing.T) {
			for _, v := range []int{5, 3, 8, 1, 9, 2} {
				pq.Add(v)
			}
			var got []int
			for !pq.Empty() {
				v, err := pq.Peek()
				require.NoError(t, err)
				got = append(got, v)
				require.True(t, pq.Remove())
			}
			assert.Equal(t, []int{9, 8, 5, 3, 2, 1}, got)
		})
	}
}

func TestPriorityQueue_MinFirst(t *testing.T) {
	for name, pq := range pqs(Go_Containers.Compare[string](Go_Containers.Ordered[string]).Reverse()) {
		t.Run(name, func(t *testing.T) {
			for _, s := range []string{"m", "c", "x", "a"} {
				pq.Add(s)
			}
			v, err := pq.Peek()
			require.NoError(t, err)
			assert.Equal(t, "a", v)
		})
	}
}

// All back ends hand out the same priorities for the same operations.
func TestPriorityQueue_Equivalence(t *testing.T) {
	all := pqs[int](Go_Containers.Ordered[int])
	heap, linked, array := all["heap"], all["linked"], all["array"]
	for range 4000 {
		switch rg.Intn(3) {
		case 0:
			r := heap.Remove()
			require.Equal(t, r, linked.Remove())
			require.Equal(t, r, array.Remove())
		default:
			v := rg.Intn(500)
			heap.Add(v)
			linked.Add(v)
			array.Add(v)
		}
		hv, herr := heap.Peek()
		lv, lerr := linked.Peek()
		av, aerr := array.Peek()
		require.Equal(t, herr == nil, lerr == nil)
		require.Equal(t, herr == nil, aerr == nil)
		require.Equal(t, hv, lv)
		require.Equal(t, hv, av)
	}
}

func TestHeapPQ_Natural(t *testing.T) {
	pq := NewHeapPQ[float64]()
	lq := NewOrderedListPQ[float64]()
	for _, v := range []float64{0.5, -1, 3.25} {
		pq.Add(v)
		lq.Add(v)
	}
	v, _ := pq.Peek()
	assert.Equal(t, 3.25, v)
	v, _ = lq.Peek()
	assert.Equal(t, 3.25, v)
}
