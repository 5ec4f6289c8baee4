package tablefile

import (
	"errors"

	"github.com/powerbalance/libtimetable/timetable"
)

var (
	ErrBadHeader     = errors.New("bad header")
	ErrBadData       = errors.New("bad data")
	ErrNoData        = errors.New("table has no data")
	ErrTableNotFound = errors.New("table not found")
)

// Codec converts between a table file and the tables it holds.
type Codec interface {
	Decode(fileName string, d []byte) ([]*timetable.Table, error)
	Encode(tables []*timetable.Table) ([]byte, error)
}

func Find(tables []*timetable.Table, tableName string) (*timetable.Table, error) {
	for _, t := range tables {
		if t.TableName() == tableName {
			return t, nil
		}
	}

	return nil, ErrTableNotFound
}

// Replace swaps the table with the same name as t, or appends t.
func Replace(tables []*timetable.Table, t *timetable.Table) []*timetable.Table {
	for idx, old := range tables {
		if old.TableName() == t.TableName() {
			tables[idx] = t

			return tables
		}
	}

	return append(tables, t)
}
