package rollbarlog

import (
	"fmt"
	"maps"
)

// Well-known record keys.
const (
	KeyLevel = "level"
	KeyMsg   = "msg"
	KeyErr   = "err"
	KeyReq   = "req"
	KeyTime  = "time"
)

// fieldPrefix is prepended to user fields whose names collide with the
// keys a front-end sets itself.
const fieldPrefix = "fields."

// Record is one structured log event.
type Record map[string]any

// Level returns the record level as stored, or nil.
func (r Record) Level() any {
	return r[KeyLevel]
}

// Message returns the msg field as text. Missing messages are empty.
func (r Record) Message() string {
	switch m := r[KeyMsg].(type) {
	case nil:
		return ""
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprint(m)
	}
}

// without returns a shallow copy of r lacking the given keys.
func (r Record) without(keys ...string) Record {
	out := maps.Clone(r)
	if out == nil {
		out = Record{}
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// fieldKey returns the record key for a user supplied field.
func fieldKey(key string) string {
	switch key {
	case KeyLevel, KeyMsg, KeyTime:
		return fieldPrefix + key
	}
	return key
}

// asRecord accepts the structured shapes a stream can receive.
func asRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, r != nil
	case map[string]any:
		return Record(r), r != nil
	}
	return nil, false
}
