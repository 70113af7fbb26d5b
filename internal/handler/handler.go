package handler

import (
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"paydate-engine/internal/engine"
	"paydate-engine/internal/model"
)

// New returns the fasthttp handler serving due date calculations on any path.
func New(e *engine.Engine, log *logrus.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !ctx.IsPost() {
			writeError(ctx, log, fasthttp.StatusBadRequest, "Method not allowed")
			return
		}

		var req model.CalculationRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, log, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}

		if len(req.Loans) == 0 {
			writeError(ctx, log, fasthttp.StatusBadRequest, "At least one loan is required")
			return
		}

		writeJSON(ctx, fasthttp.StatusOK, e.Process(&req))
	}
}

func writeError(ctx *fasthttp.RequestCtx, log *logrus.Logger, status int, message string) {
	log.WithFields(logrus.Fields{
		"method": string(ctx.Method()),
		"path":   string(ctx.Path()),
		"status": status,
	}).Warn(message)

	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
