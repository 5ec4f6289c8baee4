package fsstorage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/powerbalance/libtimetable/registry"
	"github.com/powerbalance/libtimetable/tablefile"
	"github.com/powerbalance/libtimetable/timetable"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
)

// NewFSStorage keeps table files under root, many tables per file.
func NewFSStorage(root string, codec tablefile.Codec, storage stg.FileStorage) registry.Storage {
	if codec == nil {
		codec = tablefile.TextCodec{}
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fsStorageImpl{
		root:    root,
		codec:   codec,
		storage: storage,
	}
}

type fsStorageImpl struct {
	root    string
	codec   tablefile.Codec
	storage stg.FileStorage

	lock sync.Mutex
}

func (impl *fsStorageImpl) fileNameByKey(fileName string) string {
	return filepath.Join(impl.root, fileName)
}

func (impl *fsStorageImpl) read(fileName string) (tables []*timetable.Table, err error) {
	d, err := impl.storage.ReadFile(impl.fileNameByKey(fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", commerr.ErrNotFound, err)
		}

		return
	}

	tables, err = impl.codec.Decode(fileName, d)

	return
}

func (impl *fsStorageImpl) Load(fileName, tableName string) (*timetable.Table, error) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	tables, err := impl.read(fileName)
	if err != nil {
		return nil, err
	}

	t, err := tablefile.Find(tables, tableName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s in %s", commerr.ErrNotFound, err, tableName, fileName)
	}

	return t, nil
}

func (impl *fsStorageImpl) Save(t *timetable.Table) error {
	if t == nil {
		return commerr.ErrInvalidArgument
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	tables, err := impl.read(t.FileName())
	if err != nil && !errors.Is(err, commerr.ErrNotFound) {
		return err
	}

	d, err := impl.codec.Encode(tablefile.Replace(tables, t))
	if err != nil {
		return err
	}

	_ = os.MkdirAll(filepath.Dir(impl.fileNameByKey(t.FileName())), 0700)

	return impl.storage.WriteFile(impl.fileNameByKey(t.FileName()), d)
}

func (impl *fsStorageImpl) Tables(fileName string) (names []string, err error) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	tables, err := impl.read(fileName)
	if err != nil {
		return
	}

	for _, t := range tables {
		names = append(names, t.TableName())
	}

	return
}
