package timetable

// Handle references a loaded table. The zero value is NoHandle.
type Handle struct {
	id    uint64
	table *Table
}

var NoHandle = Handle{}

func HandleOf(t *Table) Handle {
	return HandleWithID(0, t)
}

func HandleWithID(id uint64, t *Table) Handle {
	if t == nil {
		return NoHandle
	}

	return Handle{
		id:    id,
		table: t,
	}
}

func (h Handle) Valid() bool {
	return h.table != nil
}

func (h Handle) ID() uint64 {
	return h.id
}

func (h Handle) Table() *Table {
	return h.table
}
