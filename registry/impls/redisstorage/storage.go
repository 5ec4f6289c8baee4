package redisstorage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/powerbalance/libtimetable/registry"
	"github.com/powerbalance/libtimetable/tablefile"
	"github.com/powerbalance/libtimetable/timetable"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"
)

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) registry.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisTableStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorageImpl) tableKey(fileName, tableName string) string {
	return impl.preKey + ":table:" + fileName + ":" + tableName
}

func (impl *redisStorageImpl) fileKey(fileName string) string {
	return impl.preKey + ":file:" + fileName
}

func (impl *redisStorageImpl) Load(fileName, tableName string) (t *timetable.Table, err error) {
	d, err := impl.redisCli.Get(context.Background(), impl.tableKey(fileName, tableName)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = fmt.Errorf("%w: %w: %s in %s", commerr.ErrNotFound, tablefile.ErrTableNotFound, tableName, fileName)
		}

		return
	}

	var r tablefile.Record

	err = yaml.Unmarshal(d, &r)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("tableName", tableName)).Error("bad table record")

		err = fmt.Errorf("%w: %v", tablefile.ErrBadData, err)

		return
	}

	t, err = r.Table(fileName)

	return
}

func (impl *redisStorageImpl) Save(t *timetable.Table) error {
	if t == nil {
		return commerr.ErrInvalidArgument
	}

	r, err := tablefile.RecordOf(t)
	if err != nil {
		return err
	}

	d, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	_, err = impl.redisCli.TxPipelined(context.Background(), func(pipe redis.Pipeliner) error {
		pipe.Set(context.Background(), impl.tableKey(t.FileName(), t.TableName()), d, 0)
		pipe.SAdd(context.Background(), impl.fileKey(t.FileName()), t.TableName())

		return nil
	})

	return err
}

func (impl *redisStorageImpl) Tables(fileName string) (names []string, err error) {
	names, err = impl.redisCli.SMembers(context.Background(), impl.fileKey(fileName)).Result()
	if err != nil {
		return
	}

	if len(names) == 0 {
		err = fmt.Errorf("%w: %s", commerr.ErrNotFound, fileName)

		return
	}

	sort.Strings(names)

	return
}
