package profile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/powerbalance/libtimetable/timetable"
	"github.com/stretchr/testify/assert"
)

func TestPFCoilCurrent(t *testing.T) {
	peaks := []float64{10e3, 5e3, 2e3, 5e3, 3e3, 5e3}

	for n := 1; n <= PFCoilCount; n++ {
		tab, err := PFCoilCurrent(nil, n)
		assert.Nil(t, err)
		assert.EqualValues(t, fmt.Sprintf("currentPF%d.txt", n), tab.FileName())
		assert.EqualValues(t, 601, tab.Rows())

		h := timetable.HandleOf(tab)
		assert.EqualValues(t, peaks[n-1], timetable.ColumnMaximum(h, 1), n)

		v, _ := tab.Value(0, 1)
		assert.EqualValues(t, 0, v, n)

		v, _ = tab.Value(500, 1) // t = 50
		assert.EqualValues(t, 0, v, n)
	}

	_, err := PFCoilCurrent(nil, 0)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = PFCoilCurrent(nil, PFCoilCount+1)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestPFCoilCurrentShape(t *testing.T) {
	tab, err := PFCoilCurrent(&Config{MaxValues: map[string]float64{"pf6": 1000}}, 6)
	assert.Nil(t, err)

	v, _ := tab.Value(100, 1) // t = 10, end of premagnetization
	assert.InDelta(t, -450, v, 1e-9)

	v, _ = tab.Value(200, 1) // t = 20, flat top start
	assert.InDelta(t, 900, v, 1e-9)

	v, _ = tab.Value(450, 1) // t = 45, half way down
	assert.InDelta(t, 500, v, 1e-9)

	tab, err = PFCoilCurrent(nil, 1)
	assert.Nil(t, err)

	v, _ = tab.Value(50, 1) // t = 5
	assert.InDelta(t, 4.5e3, v, 1e-9)
}

func TestCSCoilCurrent(t *testing.T) {
	tab, err := CSCoilCurrent(nil)
	assert.Nil(t, err)
	assert.EqualValues(t, "currentCS.txt", tab.FileName())

	col := tab.Column(1)

	minV, maxV := col[0], col[0]
	for _, v := range col {
		if v < minV {
			minV = v
		}

		if v > maxV {
			maxV = v
		}
	}

	assert.InDelta(t, 50e3, maxV, 1e-6)
	assert.InDelta(t, 50e3, timetable.ColumnMaximum(timetable.HandleOf(tab), 1), 1e-6)
	assert.InDelta(t, -50e3, minV, 1e-6)
	assert.InDelta(t, 0, col[len(col)-1], 1e-6)
	assert.InDelta(t, -40e3, col[200], 1e-6) // t = 20
}
