package registry

import (
	"errors"

	"github.com/powerbalance/libtimetable/timetable"
)

var ErrNoStorage = errors.New("no storage")

type Storage interface {
	Load(fileName, tableName string) (*timetable.Table, error)
	Save(t *timetable.Table) error
	Tables(fileName string) ([]string, error)
}

// Registry owns the loaded tables and hands out handles to them.
// Tables are immutable: replacing one never changes what an existing handle sees.
type Registry interface {
	Put(t *timetable.Table) timetable.Handle
	Load(fileName, tableName string) (timetable.Handle, error)
	LoadFile(fileName string) ([]timetable.Handle, error)
	Get(key string) timetable.Handle
	Lookup(id uint64) timetable.Handle
	Release(key string)
	Keys() []string

	MaximumValue(key string) float64
	ColumnMaximum(key string, col int) float64

	Reload() error

	TriggerStop()
	Wait()
}
