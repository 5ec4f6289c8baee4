package main

/*
#include <stdlib.h>
#include "combitimetable.h"
*/
import "C"

import "unsafe"

// Test fixtures: go test cannot use cgo in _test.go files, so the C-side
// table builders live here and are only called from main_test.go.

// newCombiTimeTable allocates a CombiTimeTable in C memory, the way the
// runtime's table loader lays it out. A nil values leaves the buffer NULL.
func newCombiTimeTable(key string, values []float64, nRow, nCol int) unsafe.Pointer {
	tab := (*C.CombiTimeTable)(C.calloc(1, C.size_t(unsafe.Sizeof(C.CombiTimeTable{}))))

	tab.key = C.CString(key)
	tab.nRow = C.size_t(nRow)
	tab.nCol = C.size_t(nCol)

	if values != nil {
		n := len(values)
		if n == 0 {
			n = 1
		}

		buf := (*C.double)(C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(C.double(0)))))
		copy(unsafe.Slice((*float64)(unsafe.Pointer(buf)), len(values)), values)

		tab.table = buf
	}

	return unsafe.Pointer(tab)
}

func freeCombiTimeTable(p unsafe.Pointer) {
	if p == nil {
		return
	}

	tab := (*C.CombiTimeTable)(p)

	C.free(unsafe.Pointer(tab.key))
	C.free(unsafe.Pointer(tab.table))
	C.free(p)
}
