package Go_Containers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func TestOrdered(t *testing.T) {
	assert.Negative(t, Ordered(1, 2))
	assert.Positive(t, Ordered("b", "a"))
	assert.Zero(t, Ordered(1.5, 1.5))

	rev := Compare[int](Ordered[int]).Reverse()
	assert.Positive(t, rev(1, 2))
	assert.Negative(t, rev(2, 1))
	assert.Zero(t, rev(3, 3))
}

func TestComparatorBridge(t *testing.T) {
	c := FromComparator[int](utils.IntComparator)
	assert.Negative(t, c(1, 9))
	assert.Zero(t, c(4, 4))

	back := Compare[string](Ordered[string]).Comparator()
	values := []interface{}{"c", "a", "b"}
	utils.Sort(values, back)
	assert.Equal(t, []interface{}{"a", "b", "c"}, values)
}

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"empty matches sentinel", &EmptyStructureError{Op: "PeekTop"}, ErrEmptyStructure, true},
		{"wrapped empty matches", fmt.Errorf("queue: %w", &EmptyStructureError{Op: "Peek"}), ErrEmptyStructure, true},
		{"empty is not notfound", &EmptyStructureError{Op: "GetEntry"}, ErrNotFound, false},
		{"notfound matches sentinel", &NotFoundError{Op: "GetEntry"}, ErrNotFound, true},
		{"index matches sentinel", &InvalidIndexError{Op: "Get", Index: 0, Size: 3}, ErrInvalidIndex, true},
		{"index is not empty", &InvalidIndexError{Op: "Get", Index: 4, Size: 3}, ErrEmptyStructure, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "PeekTop: called on an empty structure", (&EmptyStructureError{Op: "PeekTop"}).Error())
	assert.Equal(t, "GetEntry: entry not found", (&NotFoundError{Op: "GetEntry"}).Error())
	assert.Equal(t, "Get: position 5 out of range [1, 3]", (&InvalidIndexError{Op: "Get", Index: 5, Size: 3}).Error())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Heap[]", Format("Heap", nil))
	assert.Equal(t, "BSTree[1 2 3]", Format("BSTree", []interface{}{1, 2, 3}))
}
