package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the request id in and out of the API.
const RequestIDHeader = "X-Request-ID"

func requestIDOrNew(requestID string) string {
	if requestID != "" {
		return requestID
	}
	return uuid.Must(uuid.NewV4()).String()
}

// Middleware attaches a LogData to every huma request and logs it once the
// handler returns. Handlers fetch it with GetLogData.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		requestID := requestIDOrNew(ctx.Header(RequestIDHeader))
		ctx.SetHeader(RequestIDHeader, requestID)

		operationID := ctx.Operation().OperationID
		logData.AddData("requestId", requestID)
		logData.AddData("operation", operationID)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
