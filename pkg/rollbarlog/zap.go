package rollbarlog

import (
	"slices"

	"go.uber.org/zap/zapcore"
)

// zapErrorKey is the key zap.Error uses. It is stored as err so the stream
// recovers it.
const zapErrorKey = "error"

// Core is a zapcore.Core that forwards each entry to a Stream.
type Core struct {
	zapcore.LevelEnabler
	stream *Stream
	fields []zapcore.Field
}

// NewCore creates a zap core on top of stream.
func NewCore(stream *Stream, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, stream: stream}
}

// With returns a core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(slices.Clip(c.fields), fields...)
	return &clone
}

// Check adds the core when the entry level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry into a Record and writes it to the stream.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := Record{
		KeyLevel: FromZapLevel(ent.Level),
		KeyMsg:   ent.Message,
	}
	if !ent.Time.IsZero() {
		rec[KeyTime] = ent.Time
	}
	if ent.LoggerName != "" {
		rec["logger"] = ent.LoggerName
	}
	if ent.Caller.Defined {
		rec["caller"] = ent.Caller.TrimmedPath()
	}
	if ent.Stack != "" {
		rec["stack"] = ent.Stack
	}

	enc := zapcore.NewMapObjectEncoder()
	recovered := map[string]any{}
	serializers := c.stream.Serializers()

	for _, f := range slices.Concat(c.fields, fields) {
		key, val, ok := recoverable(f)
		if ok && serializers[key] != nil {
			recovered[key] = serializers.Apply(key, val)
			continue
		}
		f.AddTo(enc)
	}

	for k, v := range enc.Fields {
		rec[fieldKey(k)] = v
	}
	for k, v := range recovered {
		rec[k] = v
	}

	return c.stream.Write(rec)
}

// Sync is a no-op; the stream does not buffer.
func (c *Core) Sync() error {
	return nil
}

// recoverable returns the original object carried by f, when zap kept one.
func recoverable(f zapcore.Field) (string, any, bool) {
	switch f.Type {
	case zapcore.ErrorType:
		if f.Interface == nil {
			return "", nil, false
		}
		key := f.Key
		if key == zapErrorKey {
			key = KeyErr
		}
		return key, f.Interface, true
	case zapcore.ReflectType, zapcore.StringerType, zapcore.ObjectMarshalerType:
		if f.Interface == nil {
			return "", nil, false
		}
		return f.Key, f.Interface, true
	}
	return "", nil, false
}
