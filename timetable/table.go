package timetable

import (
	"fmt"
	"math"
)

// Key is the lookup key of a table: the file name and table name concatenated.
func Key(fileName, tableName string) string {
	return fileName + tableName
}

// Table is a row-major matrix of nRow x nCol values. It is immutable once built.
type Table struct {
	key       string
	fileName  string
	tableName string

	values []float64
	nRow   int
	nCol   int
}

func NewTable(fileName, tableName string, values []float64, nRow, nCol int) (*Table, error) {
	if tableName == "" {
		return nil, ErrInvalidName
	}

	need, err := bufferSize(nRow, nCol)
	if err != nil {
		return nil, err
	}

	if len(values) < need {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrShortBuffer, len(values), nRow, nCol)
	}

	vs := make([]float64, need)
	copy(vs, values)

	return &Table{
		key:       Key(fileName, tableName),
		fileName:  fileName,
		tableName: tableName,
		values:    vs,
		nRow:      nRow,
		nCol:      nCol,
	}, nil
}

// NewUnloadedTable describes a table whose data has not been read yet.
func NewUnloadedTable(fileName, tableName string, nCol int) (*Table, error) {
	if tableName == "" {
		return nil, ErrInvalidName
	}

	if nCol < 1 {
		return nil, fmt.Errorf("%w: %d columns", ErrInvalidLayout, nCol)
	}

	return &Table{
		key:       Key(fileName, tableName),
		fileName:  fileName,
		tableName: tableName,
		nCol:      nCol,
	}, nil
}

func bufferSize(nRow, nCol int) (int, error) {
	if nRow < 0 || nCol < 1 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, nRow, nCol)
	}

	if nRow > 0 && nCol > math.MaxInt/nRow {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidLayout, nRow, nCol)
	}

	return nRow * nCol, nil
}

func (t *Table) Key() string {
	return t.key
}

func (t *Table) FileName() string {
	return t.fileName
}

func (t *Table) TableName() string {
	return t.tableName
}

func (t *Table) Rows() int {
	return t.nRow
}

func (t *Table) Columns() int {
	return t.nCol
}

func (t *Table) Loaded() bool {
	return t.values != nil
}

func (t *Table) Value(row, col int) (v float64, ok bool) {
	if !t.Loaded() || row < 0 || row >= t.nRow || col < 0 || col >= t.nCol {
		return
	}

	return t.values[row*t.nCol+col], true
}

// Column returns a copy of column col, or nil when the column does not exist.
func (t *Table) Column(col int) []float64 {
	if !t.Loaded() || col < 0 || col >= t.nCol {
		return nil
	}

	vs := make([]float64, t.nRow)
	for row := 0; row < t.nRow; row++ {
		vs[row] = t.values[row*t.nCol+col]
	}

	return vs
}

// Values returns a copy of the row-major buffer.
func (t *Table) Values() []float64 {
	if !t.Loaded() {
		return nil
	}

	return append([]float64{}, t.values...)
}
