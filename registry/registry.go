package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/powerbalance/libtimetable/timetable"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
)

type entry struct {
	id    uint64
	table *timetable.Table
}

func NewRegistry(opts ...Option) Registry {
	o := optionNew(opts...)

	logger := o.logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "registryImpl"))

	expiration, cleanupInterval := cache.NoExpiration, time.Duration(0)
	if o.cfg.CacheExpiration > 0 {
		expiration, cleanupInterval = o.cfg.CacheExpiration, o.cfg.CacheExpiration
	}

	impl := &registryImpl{
		logger:     logger,
		cfg:        o.cfg,
		storage:    o.storage,
		metrics:    o.metrics,
		tables:     cache.New(expiration, cleanupInterval),
		ids:        make(map[uint64]string),
		keys:       make(map[string]uint64),
		routineMan: routineman.NewRoutineMan(context.Background(), logger),
	}

	impl.init()

	return impl
}

type registryImpl struct {
	logger  l.Wrapper
	cfg     Config
	storage Storage
	metrics *Metrics

	// putLock orders replacements of the same key against id bookkeeping.
	putLock sync.RWMutex
	tables  *cache.Cache
	ids     map[uint64]string
	keys    map[string]uint64

	routineMan routineman.RoutineMan
}

func (impl *registryImpl) init() {
	impl.tables.OnEvicted(impl.onEvicted)

	if impl.cfg.ReloadInterval > 0 {
		if impl.storage == nil {
			impl.logger.Error("reload interval set without storage")

			return
		}

		impl.routineMan.StartRoutine(impl.reloadRoutine, "reloadRoutine")
	}
}

func (impl *registryImpl) TriggerStop() {
	impl.routineMan.TriggerStop()
}

func (impl *registryImpl) Wait() {
	impl.routineMan.Wait()
}

func (impl *registryImpl) onEvicted(key string, i interface{}) {
	e, ok := i.(*entry)
	if !ok {
		return
	}

	impl.putLock.Lock()

	if _, live := impl.tables.Get(key); !live && impl.keys[key] == e.id {
		delete(impl.ids, e.id)
		delete(impl.keys, key)
	}

	impl.putLock.Unlock()

	impl.metrics.setLoaded(impl.tables.ItemCount())

	impl.logger.WithFields(l.StringField("key", key), l.UInt64Field("id", e.id)).Debug("table released")
}

func (impl *registryImpl) Put(t *timetable.Table) timetable.Handle {
	if t == nil {
		return timetable.NoHandle
	}

	impl.putLock.Lock()

	// an expired item may still sit in the cache without having been evicted,
	// so the id is taken from keys rather than from the cached entry
	id, ok := impl.keys[t.Key()]
	if !ok {
		id = snowflake.ID()
		impl.ids[id] = t.Key()
		impl.keys[t.Key()] = id
	}

	impl.tables.SetDefault(t.Key(), &entry{
		id:    id,
		table: t,
	})

	impl.putLock.Unlock()

	impl.metrics.setLoaded(impl.tables.ItemCount())

	return timetable.HandleWithID(id, t)
}

func (impl *registryImpl) Load(fileName, tableName string) (timetable.Handle, error) {
	if impl.storage == nil {
		return timetable.NoHandle, ErrNoStorage
	}

	t, err := impl.storage.Load(fileName, tableName)
	if err != nil {
		impl.metrics.loadFailed()

		impl.logger.WithFields(l.ErrorField(err), l.StringField("fileName", fileName),
			l.StringField("tableName", tableName)).Error("load table failed")

		return timetable.NoHandle, err
	}

	return impl.Put(t), nil
}

func (impl *registryImpl) LoadFile(fileName string) (hs []timetable.Handle, err error) {
	if impl.storage == nil {
		err = ErrNoStorage

		return
	}

	names, err := impl.storage.Tables(fileName)
	if err != nil {
		impl.metrics.loadFailed()

		return
	}

	for _, name := range names {
		var h timetable.Handle

		h, err = impl.Load(fileName, name)
		if err != nil {
			return
		}

		hs = append(hs, h)
	}

	return
}

func (impl *registryImpl) get(key string) *entry {
	i, ok := impl.tables.Get(key)
	if !ok {
		return nil
	}

	e, _ := i.(*entry)

	return e
}

func (impl *registryImpl) Get(key string) timetable.Handle {
	e := impl.get(key)
	if e == nil {
		return timetable.NoHandle
	}

	return timetable.HandleWithID(e.id, e.table)
}

func (impl *registryImpl) Lookup(id uint64) timetable.Handle {
	impl.putLock.RLock()
	key, ok := impl.ids[id]
	impl.putLock.RUnlock()

	if !ok {
		return timetable.NoHandle
	}

	return impl.Get(key)
}

func (impl *registryImpl) Release(key string) {
	impl.tables.Delete(key)
}

func (impl *registryImpl) Keys() []string {
	items := impl.tables.Items()

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func (impl *registryImpl) MaximumValue(key string) float64 {
	return impl.ColumnMaximum(key, 0)
}

func (impl *registryImpl) ColumnMaximum(key string, col int) float64 {
	h := impl.Get(key)

	impl.metrics.observeQuery(!h.Valid() || !h.Table().Loaded() || h.Table().Rows() == 0 ||
		col < 0 || col >= h.Table().Columns())

	return timetable.ColumnMaximum(h, col)
}

func (impl *registryImpl) Reload() error {
	if impl.storage == nil {
		return ErrNoStorage
	}

	var errs []error

	for _, key := range impl.Keys() {
		e := impl.get(key)
		if e == nil {
			continue
		}

		t, err := impl.storage.Load(e.table.FileName(), e.table.TableName())
		if err != nil {
			impl.metrics.loadFailed()

			if errors.Is(err, commerr.ErrNotFound) {
				impl.logger.WithFields(l.StringField("key", key)).Debug("table gone from storage, kept")

				continue
			}

			errs = append(errs, fmt.Errorf("%s: %w", key, err))

			continue
		}

		impl.Put(t)
	}

	return errors.Join(errs...)
}

func (impl *registryImpl) reloadRoutine(ctx context.Context, _ func() bool) {
	logger := impl.logger.WithFields(l.StringField(l.RoutineKey, "reloadRoutine"))

	logger.Debug("enter")

	defer logger.Debug("leave")

	loop := true

	for loop {
		select {
		case <-ctx.Done():
			loop = false

			continue
		case <-time.After(impl.cfg.ReloadInterval):
			if err := impl.Reload(); err != nil {
				logger.WithFields(l.ErrorField(err)).Error("reload failed")
			}
		}
	}
}
