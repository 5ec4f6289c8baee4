package timetable

// Sentinel is returned by the maximum queries for absent or empty tables.
const Sentinel = 0.0

// MaximumValue returns the largest value in the first column of the table
// behind h, or Sentinel when there is no table, no data or no rows.
func MaximumValue(h Handle) float64 {
	return ColumnMaximum(h, 0)
}

func ColumnMaximum(h Handle, col int) float64 {
	if !h.Valid() || !h.table.Loaded() {
		return Sentinel
	}

	yMax, ok := ScanColumnMax(h.table.values, h.table.nRow, h.table.nCol, col)
	if !ok {
		return Sentinel
	}

	return yMax
}

// ScanColumnMax scans column col of a row-major buffer with nCol values per row.
// ok is false when the layout is empty or would read outside values.
func ScanColumnMax(values []float64, nRow, nCol, col int) (yMax float64, ok bool) {
	if nRow < 1 || nCol < 1 || col < 0 || col >= nCol {
		return
	}

	last, err := bufferSize(nRow-1, nCol)
	if err != nil || last > len(values)-1-col {
		return
	}

	yMax = values[col]

	for row := 1; row < nRow; row++ {
		if v := values[row*nCol+col]; v > yMax {
			yMax = v
		}
	}

	ok = true

	return
}
