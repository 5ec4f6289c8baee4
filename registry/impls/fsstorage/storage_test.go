package fsstorage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/powerbalance/libtimetable/registry"
	"github.com/powerbalance/libtimetable/tablefile"
	"github.com/powerbalance/libtimetable/timetable"
	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestFSStorageText(t *testing.T) {
	root := t.TempDir()
	stg := NewFSStorage(root, nil, nil)

	tab1, err := timetable.NewTable("pulse.txt", "tab1", []float64{0, 5.0, 1, 3.0, 2, 9.2, 3, 1.0}, 4, 2)
	assert.Nil(t, err)

	tab2, err := timetable.NewTable("pulse.txt", "tab2", []float64{-4.5}, 1, 1)
	assert.Nil(t, err)

	assert.Nil(t, stg.Save(tab1))
	assert.Nil(t, stg.Save(tab2))

	d, err := os.ReadFile(filepath.Join(root, "pulse.txt"))
	assert.Nil(t, err)
	assert.Contains(t, string(d), "double tab1(4,2)")
	assert.Contains(t, string(d), "double tab2(1,1)")

	names, err := stg.Tables("pulse.txt")
	assert.Nil(t, err)
	assert.Equal(t, []string{"tab1", "tab2"}, names)

	got, err := stg.Load("pulse.txt", "tab1")
	assert.Nil(t, err)
	assert.Equal(t, tab1.Values(), got.Values())

	tab1b, err := timetable.NewTable("pulse.txt", "tab1", []float64{0, 1}, 1, 2)
	assert.Nil(t, err)
	assert.Nil(t, stg.Save(tab1b))

	got, err = stg.Load("pulse.txt", "tab1")
	assert.Nil(t, err)
	assert.EqualValues(t, 1, got.Rows())

	_, err = stg.Load("pulse.txt", "tab3")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
	assert.True(t, errors.Is(err, tablefile.ErrTableNotFound))

	_, err = stg.Load("missing.txt", "tab1")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	assert.NotNil(t, stg.Save(nil))
}

func TestFSStorageYAMLWithRegistry(t *testing.T) {
	stg := NewFSStorage(filepath.Join(t.TempDir(), "profiles"), tablefile.YAMLCodec{}, nil)

	tab, err := timetable.NewTable("currentTF.yaml", "data", []float64{0, 0, 10, 60e3, 50, 60e3, 60, 0}, 4, 2)
	assert.Nil(t, err)
	assert.Nil(t, stg.Save(tab))

	r := registry.NewRegistry(registry.WithStorage(stg))

	h, err := r.Load("currentTF.yaml", "data")
	assert.Nil(t, err)
	assert.EqualValues(t, 60, timetable.MaximumValue(h))
	assert.EqualValues(t, 60e3, r.ColumnMaximum(tab.Key(), 1))
}

func TestFSStorageBadFile(t *testing.T) {
	root := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(root, "bad.txt"), []byte("double t(1,1)\n1\n"), 0600))

	stg := NewFSStorage(root, tablefile.TextCodec{}, nil)

	_, err := stg.Load("bad.txt", "t")
	assert.True(t, errors.Is(err, tablefile.ErrBadHeader))

	tab, err := timetable.NewTable("bad.txt", "t", []float64{1}, 1, 1)
	assert.Nil(t, err)
	assert.True(t, errors.Is(stg.Save(tab), tablefile.ErrBadHeader))
}

func TestFSStorageRootNotDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	assert.Nil(t, os.WriteFile(root, []byte("x"), 0600))

	stg := NewFSStorage(root, tablefile.TextCodec{}, nil)

	_, err := stg.Load("a.txt", "t")
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, commerr.ErrNotFound))
	assert.True(t, errors.Is(err, syscall.ENOTDIR))

	tab, err := timetable.NewTable("a.txt", "t", []float64{1}, 1, 1)
	assert.Nil(t, err)
	assert.True(t, errors.Is(stg.Save(tab), syscall.ENOTDIR))
}

func TestFSStorageMissingFileKeepsCause(t *testing.T) {
	stg := NewFSStorage(t.TempDir(), tablefile.TextCodec{}, nil)

	_, err := stg.Load("missing.txt", "t")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
