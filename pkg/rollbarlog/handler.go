package rollbarlog

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"
)

// HandlerOptions configure a Handler.
type HandlerOptions struct {
	// Level is the minimum level delivered to the stream. Defaults to warn.
	Level slog.Leveler
}

// Handler is a slog.Handler that forwards each record to a Stream.
type Handler struct {
	stream *Stream
	level  slog.Leveler
	steps  []handlerStep
}

// handlerStep is either a WithGroup (group != "") or a WithAttrs call.
type handlerStep struct {
	group string
	attrs []slog.Attr
}

// NewHandler creates a slog handler on top of stream.
func NewHandler(stream *Stream, opts *HandlerOptions) *Handler {
	h := &Handler{stream: stream, level: slog.LevelWarn}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether level reaches the configured minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle converts r into a Record and writes it to the stream.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	rec := Record{
		KeyLevel: Level(r.Level),
		KeyMsg:   r.Message,
	}
	if !r.Time.IsZero() {
		rec[KeyTime] = r.Time
	}

	target := map[string]any(rec)
	top := true
	for _, step := range h.steps {
		if step.group != "" {
			target = h.descend(target, step.group)
			top = false
			continue
		}
		for _, a := range step.attrs {
			h.addAttr(target, a, top)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		h.addAttr(target, a, top)
		return true
	})

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		rec["trace_id"] = sc.TraceID().String()
		rec["span_id"] = sc.SpanID().String()
	}

	return h.stream.Write(rec)
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerStep{attrs: slices.Clone(attrs)})
}

// WithGroup returns a handler that nests subsequent attrs under name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerStep{group: name})
}

func (h *Handler) with(step handlerStep) *Handler {
	h2 := *h
	h2.steps = append(slices.Clip(h.steps), step)
	return &h2
}

func (h *Handler) descend(m map[string]any, group string) map[string]any {
	if child, ok := m[group].(map[string]any); ok {
		return child
	}
	child := map[string]any{}
	m[group] = child
	return child
}

// addAttr stores a into m. Serializers only run on top level keys, where
// err and req live.
func (h *Handler) addAttr(m map[string]any, a slog.Attr, top bool) {
	v := a.Value
	if v.Kind() == slog.KindLogValuer && !(top && h.hasSerializer(a.Key)) {
		v = v.Resolve()
	}

	if v.Kind() == slog.KindGroup {
		group := v.Group()
		if len(group) == 0 {
			return
		}
		target := m
		if a.Key != "" {
			target = h.descend(m, a.Key)
		}
		for _, ga := range group {
			h.addAttr(target, ga, top && a.Key == "")
		}
		return
	}

	if a.Key == "" {
		return
	}
	key, val := a.Key, v.Any()
	if top {
		val = h.stream.Serializers().Apply(key, val)
		key = fieldKey(key)
	}
	m[key] = val
}

func (h *Handler) hasSerializer(key string) bool {
	_, ok := h.stream.Serializers()[key]
	return ok
}
