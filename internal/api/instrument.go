package api

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/go-resty/resty/v2"
)

type reqCtxKeyType int

var reqCtxKey reqCtxKeyType

type reqCtx struct {
	id        uint64
	startTime time.Time
}

// instrument logs the request lifecycle of client through log.
type instrument struct {
	log       logging.Logger
	idcounter *uint64
}

func instrumentResty(client *resty.Client, log logging.Logger) {
	var idcounter uint64
	i := instrument{log: log, idcounter: &idcounter}

	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrument) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	id := atomic.AddUint64(i.idcounter, 1)
	ctx := context.WithValue(req.Context(), reqCtxKey, reqCtx{id: id, startTime: time.Now()})
	req.SetContext(ctx)
	i.log.Debug("http request", "id", id, "method", req.Method, "url", req.URL)
	return nil
}

func (i instrument) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	rc, ok := res.Request.Context().Value(reqCtxKey).(reqCtx)
	if !ok {
		return nil
	}
	i.log.Debug("http response",
		"id", rc.id,
		"status", res.StatusCode(),
		"duration", time.Since(rc.startTime).String(),
	)
	return nil
}

func (i instrument) onError(req *resty.Request, err error) {
	rc, _ := req.Context().Value(reqCtxKey).(reqCtx)
	i.log.Warn("http request failed",
		"id", rc.id,
		"method", req.Method,
		"url", req.URL,
		"error", err.Error(),
	)
}

// restyLogger routes resty's own debug dumps into the structured logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug(fmt.Sprintf(format, v...)) }
