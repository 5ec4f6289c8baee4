package timetable

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	tab, err := NewTable("profiles.txt", "tab1", []float64{0, 5, 1, 3, 2, 9.2}, 3, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, "profiles.txttab1", tab.Key())
	assert.EqualValues(t, 3, tab.Rows())
	assert.EqualValues(t, 2, tab.Columns())
	assert.True(t, tab.Loaded())

	v, ok := tab.Value(2, 1)
	assert.True(t, ok)
	assert.EqualValues(t, 9.2, v)

	_, ok = tab.Value(3, 0)
	assert.False(t, ok)

	_, ok = tab.Value(0, 2)
	assert.False(t, ok)

	assert.Equal(t, []float64{0, 1, 2}, tab.Column(0))
	assert.Equal(t, []float64{5, 3, 9.2}, tab.Column(1))
	assert.Nil(t, tab.Column(-1))
}

func TestNewTableCopiesBuffer(t *testing.T) {
	vs := []float64{1, 2, 3, 4}

	tab, err := NewTable("", "t", vs, 2, 2)
	assert.Nil(t, err)

	vs[0] = 100

	v, _ := tab.Value(0, 0)
	assert.EqualValues(t, 1, v)

	out := tab.Values()
	out[1] = 100

	v, _ = tab.Value(0, 1)
	assert.EqualValues(t, 2, v)
}

func TestNewTableLayout(t *testing.T) {
	_, err := NewTable("", "t", []float64{1, 2, 3}, 2, 2)
	assert.True(t, errors.Is(err, ErrShortBuffer))

	_, err = NewTable("", "t", []float64{1}, 1, 0)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = NewTable("", "t", nil, -1, 2)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = NewTable("", "t", nil, math.MaxInt/2, 3)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = NewTable("f", "", []float64{1}, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidName))

	tab, err := NewTable("", "t", []float64{1, 2, 3, 4, 5}, 2, 2)
	assert.Nil(t, err)
	assert.Len(t, tab.Values(), 4)
}

func TestUnloadedTable(t *testing.T) {
	tab, err := NewUnloadedTable("a.mat", "data", 2)
	assert.Nil(t, err)
	assert.False(t, tab.Loaded())
	assert.Nil(t, tab.Column(0))
	assert.Nil(t, tab.Values())

	_, err = NewUnloadedTable("a.mat", "data", 0)
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestHandle(t *testing.T) {
	assert.False(t, NoHandle.Valid())
	assert.False(t, HandleOf(nil).Valid())

	tab, err := NewTable("", "t", []float64{1}, 1, 1)
	assert.Nil(t, err)

	h := HandleWithID(7, tab)
	assert.True(t, h.Valid())
	assert.EqualValues(t, 7, h.ID())
	assert.Same(t, tab, h.Table())
}
