package tablefile

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/powerbalance/libtimetable/timetable"
	"github.com/spf13/cast"
)

// TextCodec reads and writes the Modelica text table format, version 1:
//
//	#1
//	double tab1(3,2)  # comment
//	0  1.5
//	1  2.5
//	2  0.5
type TextCodec struct{}

const textVersionLine = "#1"

type textTable struct {
	name   string
	nRow   int
	nCol   int
	values []float64
	line   int
}

func (tt *textTable) complete() bool {
	return len(tt.values) == tt.nRow*tt.nCol
}

func (TextCodec) Decode(fileName string, d []byte) (tables []*timetable.Table, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(d))

	var (
		lineNo  int
		header  bool
		current *textTable
		pending []*textTable
	)

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())

		if !header {
			if line == "" {
				continue
			}

			if !strings.HasPrefix(line, textVersionLine) {
				err = fmt.Errorf("%w: line %d: expected %q", ErrBadHeader, lineNo, textVersionLine)

				return
			}

			header = true

			continue
		}

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "double ") || strings.HasPrefix(line, "float ") {
			if current != nil && !current.complete() {
				err = fmt.Errorf("%w: table %s (line %d) has %d of %d values", ErrBadData,
					current.name, current.line, len(current.values), current.nRow*current.nCol)

				return
			}

			current, err = parseTextHeader(line, lineNo)
			if err != nil {
				return
			}

			pending = append(pending, current)

			continue
		}

		if current == nil {
			err = fmt.Errorf("%w: line %d: values before table header", ErrBadData, lineNo)

			return
		}

		for _, field := range strings.FieldsFunc(line, isTextSeparator) {
			var v float64

			v, err = cast.ToFloat64E(field)
			if err != nil {
				err = fmt.Errorf("%w: line %d: %q", ErrBadData, lineNo, field)

				return
			}

			if current.complete() {
				err = fmt.Errorf("%w: line %d: too many values for table %s", ErrBadData, lineNo, current.name)

				return
			}

			current.values = append(current.values, v)
		}
	}

	if err = scanner.Err(); err != nil {
		return
	}

	if !header {
		err = fmt.Errorf("%w: empty file", ErrBadHeader)

		return
	}

	for _, tt := range pending {
		if !tt.complete() {
			err = fmt.Errorf("%w: table %s (line %d) has %d of %d values", ErrBadData,
				tt.name, tt.line, len(tt.values), tt.nRow*tt.nCol)

			return
		}

		var t *timetable.Table

		t, err = timetable.NewTable(fileName, tt.name, tt.values, tt.nRow, tt.nCol)
		if err != nil {
			return
		}

		tables = append(tables, t)
	}

	return
}

func isTextSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == ';'
}

// parseTextHeader parses "double name(nRow,nCol)".
func parseTextHeader(line string, lineNo int) (*textTable, error) {
	_, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	open := strings.IndexByte(rest, '(')
	closing := strings.LastIndexByte(rest, ')')

	if open <= 0 || closing < open {
		return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, lineNo, line)
	}

	dims := strings.Split(rest[open+1:closing], ",")
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, lineNo, line)
	}

	nRow, err := parseDim(dims[0])
	if err != nil || nRow < 0 {
		return nil, fmt.Errorf("%w: line %d: bad row count", ErrBadHeader, lineNo)
	}

	nCol, err := parseDim(dims[1])
	if err != nil || nCol < 1 {
		return nil, fmt.Errorf("%w: line %d: bad column count", ErrBadHeader, lineNo)
	}

	return &textTable{
		name: strings.TrimSpace(rest[:open]),
		nRow: nRow,
		nCol: nCol,
		line: lineNo,
	}, nil
}

// parseDim reads a decimal dimension; leading zeros do not switch the base.
func parseDim(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0, nil
	}

	return cast.ToIntE(s)
}

func (TextCodec) Encode(tables []*timetable.Table) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(textVersionLine)
	buf.WriteByte('\n')

	for _, t := range tables {
		if !t.Loaded() {
			return nil, fmt.Errorf("%w: %s", ErrNoData, t.TableName())
		}

		fmt.Fprintf(&buf, "double %s(%d,%d)\n", t.TableName(), t.Rows(), t.Columns())

		values := t.Values()

		for row := 0; row < t.Rows(); row++ {
			for col := 0; col < t.Columns(); col++ {
				if col > 0 {
					buf.WriteByte('\t')
				}

				buf.WriteString(strconv.FormatFloat(values[row*t.Columns()+col], 'g', -1, 64))
			}

			buf.WriteByte('\n')
		}
	}

	return buf.Bytes(), nil
}
