// Command timetableymax is built with -buildmode=c-shared and loaded by the
// simulation runtime. It exports:
//
//	double maximumValue(void *tableID);
//
// tableID points at a CombiTimeTable (see combitimetable.h).
package main

/*
#include "combitimetable.h"
*/
import "C"

import (
	"unsafe"

	"github.com/powerbalance/libtimetable/timetable"
)

// maxValues bounds the number of values a table may describe.
const maxValues = 1 << 40

//export maximumValue
func maximumValue(tableID unsafe.Pointer) C.double {
	return C.double(tableMaximum(tableID))
}

func tableMaximum(tableID unsafe.Pointer) float64 {
	if tableID == nil {
		return timetable.Sentinel
	}

	tab := (*C.CombiTimeTable)(tableID)
	if tab.table == nil {
		return timetable.Sentinel
	}

	nRow, nCol := uint64(tab.nRow), uint64(tab.nCol)
	if nRow == 0 || nCol == 0 || nRow > maxValues || nCol > maxValues || nRow-1 > (maxValues-1)/nCol {
		return timetable.Sentinel
	}

	n := int((nRow-1)*nCol + 1)
	values := unsafe.Slice((*float64)(unsafe.Pointer(tab.table)), n)

	yMax, ok := timetable.ScanColumnMax(values, int(nRow), int(nCol), 0)
	if !ok {
		return timetable.Sentinel
	}

	return yMax
}

func main() {}
