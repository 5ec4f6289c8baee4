package tablefile

import (
	"errors"
	"testing"

	"github.com/powerbalance/libtimetable/timetable"
	"github.com/stretchr/testify/assert"
)

func TestYAMLCodec(t *testing.T) {
	tab, err := timetable.NewTable("ut.yaml", "data", []float64{0, 1, 10, 60e3, 50, 60e3, 60, 0}, 4, 2)
	assert.Nil(t, err)

	d, err := YAMLCodec{}.Encode([]*timetable.Table{tab})
	assert.Nil(t, err)

	tables, err := YAMLCodec{}.Decode("ut.yaml", d)
	assert.Nil(t, err)
	assert.Len(t, tables, 1)
	assert.EqualValues(t, tab.Key(), tables[0].Key())
	assert.Equal(t, tab.Values(), tables[0].Values())
	assert.EqualValues(t, 60e3, timetable.ColumnMaximum(timetable.HandleOf(tables[0]), 1))
}

func TestYAMLDecodeErrors(t *testing.T) {
	_, err := YAMLCodec{}.Decode("ut.yaml", []byte("- name: t\n  rows: 2\n  columns: 2\n  values: [1, 2, 3]\n"))
	assert.True(t, errors.Is(err, ErrBadData))

	_, err = YAMLCodec{}.Decode("ut.yaml", []byte("name: [\n"))
	assert.True(t, errors.Is(err, ErrBadData))

	_, err = YAMLCodec{}.Decode("ut.yaml", []byte("- name: ''\n  rows: 1\n  columns: 1\n  values: [1]\n"))
	assert.True(t, errors.Is(err, timetable.ErrInvalidName))
}
