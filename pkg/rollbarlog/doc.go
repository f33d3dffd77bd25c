// Package rollbarlog forwards structured log records to Rollbar.
//
// A Stream takes one Record per call and makes exactly one Reporter call:
// records carrying an error are reported as errors, everything else as a
// message. Errors and requests that were passed through the stream's
// Serializers are recovered by identity and removed from the custom data so
// they are not sent twice.
//
// Usage with slog:
//
//	stream, err := rollbarlog.New(rollbarlog.WithToken(token))
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//	logger := slog.New(rollbarlog.NewHandler(stream, nil))
//	logger.Error("charge failed", slog.Any("err", err), slog.Any("req", r))
//
// NewCore provides the same bridge for zap.
package rollbarlog
