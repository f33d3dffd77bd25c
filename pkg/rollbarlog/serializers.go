package rollbarlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"reflect"

	"go.uber.org/zap/zapcore"
)

// Serializer turns a field value into its logged representation.
type Serializer func(v any) any

// Serializers maps field names to serializers.
type Serializers map[string]Serializer

// Apply runs the serializer registered for key, if any.
func (s Serializers) Apply(key string, v any) any {
	if fn, ok := s[key]; ok && fn != nil {
		return fn(v)
	}
	return v
}

// StdSerializers are the plain serializers for err, req and res fields.
var StdSerializers = Serializers{
	"err": serializeError,
	"req": serializeRequest,
	"res": serializeResponse,
}

// RecoveringSerializers returns a copy of StdSerializers whose err and req
// entries keep the original value reachable from the serialized result.
func RecoveringSerializers() Serializers {
	out := maps.Clone(StdSerializers)
	for _, key := range []string{KeyErr, KeyReq} {
		out[key] = Recovering(StdSerializers[key])
	}
	return out
}

// Recovering wraps fn so a value it turns into a plain map comes back as a
// *Serialized pointing at the input.
func Recovering(fn Serializer) Serializer {
	return func(v any) any {
		serialized := fn(v)
		m, ok := serialized.(map[string]any)
		if !ok || sameValue(serialized, v) {
			return serialized
		}
		return &Serialized{Value: m, original: v}
	}
}

// Serialized is a serialized field that still knows its source object.
// Every encoding path emits Value only.
type Serialized struct {
	Value    map[string]any
	original any
}

// Original returns the value the serializer was given.
func (s *Serialized) Original() any {
	if s == nil {
		return nil
	}
	return s.original
}

// MarshalJSON encodes the serialized form.
func (s *Serialized) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value)
}

// MarshalLogObject encodes the serialized form for zap.
func (s *Serialized) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if s == nil {
		return nil
	}
	for k, v := range s.Value {
		if err := enc.AddReflected(k, v); err != nil {
			return err
		}
	}
	return nil
}

// LogValue renders the serialized form for slog.
func (s *Serialized) LogValue() slog.Value {
	if s == nil {
		return slog.GroupValue()
	}
	attrs := make([]slog.Attr, 0, len(s.Value))
	for k, v := range s.Value {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return ta == tb
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Func, reflect.Chan:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// isNil reports whether v is nil or a nil pointer, map, slice, func or
// channel held in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func serializeError(v any) any {
	err, ok := v.(error)
	if !ok || isNil(err) {
		return v
	}

	out := map[string]any{
		"message": err.Error(),
		"name":    fmt.Sprintf("%T", err),
	}
	if stack := fmt.Sprintf("%+v", err); stack != err.Error() {
		out["stack"] = stack
	}

	var causes []string
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		causes = append(causes, cause.Error())
	}
	if len(causes) > 0 {
		out["causes"] = causes
	}
	return out
}

func serializeRequest(v any) any {
	r, ok := v.(*http.Request)
	if !ok || r == nil {
		return v
	}

	host, port, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	out := map[string]any{
		"method":        r.Method,
		"headers":       headerMap(r.Header),
		"remoteAddress": host,
		"remotePort":    port,
	}
	if r.URL != nil {
		out["url"] = r.URL.RequestURI()
	}
	return out
}

func serializeResponse(v any) any {
	r, ok := v.(*http.Response)
	if !ok || r == nil {
		return v
	}
	return map[string]any{
		"statusCode": r.StatusCode,
		"header":     headerMap(r.Header),
	}
}

const redactedValue = "[REDACTED]"

var sensitiveHeaders = map[string]struct{}{
	"Authorization":       {},
	"Proxy-Authorization": {},
	"Cookie":              {},
	"Set-Cookie":          {},
	"X-Api-Key":           {},
}

func headerMap(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		if _, ok := sensitiveHeaders[http.CanonicalHeaderKey(k)]; ok {
			out[k] = redactedValue
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}
