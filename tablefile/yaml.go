package tablefile

import (
	"fmt"

	"github.com/powerbalance/libtimetable/timetable"
	"gopkg.in/yaml.v3"
)

type Record struct {
	Name    string    `yaml:"name"`
	Rows    int       `yaml:"rows"`
	Columns int       `yaml:"columns"`
	Values  []float64 `yaml:"values,flow"`
}

func RecordOf(t *timetable.Table) (r Record, err error) {
	if !t.Loaded() {
		err = fmt.Errorf("%w: %s", ErrNoData, t.TableName())

		return
	}

	r = Record{
		Name:    t.TableName(),
		Rows:    t.Rows(),
		Columns: t.Columns(),
		Values:  t.Values(),
	}

	return
}

func (r Record) Table(fileName string) (*timetable.Table, error) {
	if len(r.Values) != r.Rows*r.Columns {
		return nil, fmt.Errorf("%w: table %s has %d values for %dx%d", ErrBadData,
			r.Name, len(r.Values), r.Rows, r.Columns)
	}

	return timetable.NewTable(fileName, r.Name, r.Values, r.Rows, r.Columns)
}

type YAMLCodec struct{}

func (YAMLCodec) Decode(fileName string, d []byte) (tables []*timetable.Table, err error) {
	var rs []Record

	err = yaml.Unmarshal(d, &rs)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrBadData, err)

		return
	}

	for _, r := range rs {
		var t *timetable.Table

		t, err = r.Table(fileName)
		if err != nil {
			return
		}

		tables = append(tables, t)
	}

	return
}

func (YAMLCodec) Encode(tables []*timetable.Table) ([]byte, error) {
	rs := make([]Record, 0, len(tables))

	for _, t := range tables {
		r, err := RecordOf(t)
		if err != nil {
			return nil, err
		}

		rs = append(rs, r)
	}

	return yaml.Marshal(rs)
}
