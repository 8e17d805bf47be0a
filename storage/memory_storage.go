package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timewindow/misc"
)

type memoryStorage struct {
	_    misc.NoCopy
	lock sync.Mutex
	data map[string][]byte
}

// NewMemoryStorage copies seed so later changes to it are not visible.
func NewMemoryStorage(seed map[string][]byte) *memoryStorage {
	data := make(map[string][]byte, len(seed))
	for k, v := range seed {
		data[k] = misc.CopyBytes(v)
	}
	return &memoryStorage{data: data}
}

// Put stores a document, replacing any previous one.
func (m *memoryStorage) Put(key string, data []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.data[key] = misc.CopyBytes(data)
}

func (m *memoryStorage) GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	ret := []string{}
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			ret = append(ret, k)
		}
	}
	sort.Strings(ret)

	return ret, nil
}

func (m *memoryStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	data, ok := m.data[key]
	if !ok {
		return nil, errors.Wrapf(ErrDoesNotExist, "key %q", key)
	}

	return misc.CopyBytes(data), nil
}
