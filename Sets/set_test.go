package Sets

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Dicts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

func sets() map[string]*DictSet[int] {
	return map[string]*DictSet[int]{
		"btree": NewBTreeSet[int](),
		"tree":  NewTreeSet[int](),
		"array": NewDictSet(func() Dicts.Dictionary[int, struct{}] {
			return Dicts.NewArrayDict[int, struct{}]()
		}),
	}
}

func TestDictSet_Basic(t *testing.T) {
	for name, s := range sets() {
		t.Run(name, func(t *testing.T) {
			_, err := s.Take()
			assert.ErrorIs(t, err, Go_Containers.ErrEmptyStructure)
			assert.True(t, s.Put(3))
			assert.True(t, s.Put(1))
			assert.False(t, s.Put(3))
			assert.True(t, s.Has(1))
			assert.Equal(t, 2, s.Size())
			assert.Equal(t, "DictSet[1 3]", s.String())

			e, err := s.Take()
			require.NoError(t, err)
			assert.Equal(t, 1, e)
			assert.False(t, s.Has(1))
			assert.True(t, s.Remove(3))
			assert.False(t, s.Remove(3))
			assert.True(t, s.Empty())
		})
	}
}

func TestDictSet_Extended(t *testing.T) {
	a, b := NewBTreeSet[int](), NewTreeSet[int]()
	for i := range 10 {
		a.Put(i)
		if i%2 == 0 {
			b.Put(i)
		}
	}
	evens := a.Filter(func(e int) bool { return e%2 == 0 })
	assert.Equal(t, 10, a.Size())
	assert.True(t, evens.Eq(b))
	assert.True(t, b.Eq(evens))
	assert.False(t, a.Eq(b))

	assert.Equal(t, 5, a.RemoveAll(b))
	assert.Equal(t, []interface{}{1, 3, 5, 7, 9}, a.Values())
	assert.Equal(t, 5, a.PutAll(b))
	assert.Equal(t, 0, a.PutAll(b))
	assert.Equal(t, 10, a.Size())
}

func TestDictSet_Random(t *testing.T) {
	ss := sets()
	ref := haxmap.New[int, struct{}]()
	for range 3000 {
		e := rg.Intn(200)
		if rg.Intn(3) == 0 {
			_, had := ref.Get(e)
			ref.Del(e)
			for name, s := range ss {
				require.Equal(t, had, s.Remove(e), name)
			}
		} else {
			_, had := ref.Get(e)
			ref.Set(e, struct{}{})
			for name, s := range ss {
				require.Equal(t, !had, s.Put(e), name)
			}
		}
	}
	for name, s := range ss {
		require.Equal(t, int(ref.Len()), s.Size(), name)
		prev := -1
		s.Range(func(e int) bool {
			require.Less(t, prev, e, name)
			_, ok := ref.Get(e)
			require.True(t, ok, name)
			prev = e
			return true
		})
	}
}
