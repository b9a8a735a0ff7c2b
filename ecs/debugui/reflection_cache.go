package debugui

import (
	"reflect"
	"sync"
)

type fieldInfo struct {
	Name     string
	Index    int
	IsStruct bool
	IsSlice  bool
	IsMap    bool
}

// fieldCache memoizes the exported fields of component struct types so
// the inspector does not walk reflect metadata every frame.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}
}

func (fc *fieldCache) get(t reflect.Type) []fieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			kind := field.Type.Kind()
			fields = append(fields, fieldInfo{
				Name:     field.Name,
				Index:    i,
				IsStruct: kind == reflect.Struct,
				IsSlice:  kind == reflect.Slice,
				IsMap:    kind == reflect.Map,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

var globalFieldCache = newFieldCache()
