package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/greetings-skill/internal/logger"
	"bitbucket.org/sotavant/greetings-skill/internal/models"
	"bitbucket.org/sotavant/greetings-skill/internal/skill"
)

type app struct {
	dispatcher *skill.Dispatcher
}

func newApp(d *skill.Dispatcher) *app {
	return &app{dispatcher: d}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp, err := a.dispatcher.Dispatch(ctx, &req)
	if err != nil {
		logger.Log.Info("cannot handle event",
			zap.String("type", req.Request.Type),
			zap.Error(err))

		w.WriteHeader(statusFor(err))
		return
	}

	// на SessionEndedRequest отвечать нечем
	if resp == nil {
		logger.Log.Debug("session ended", zap.String("reason", req.Request.Reason))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	// SSML-разметку отдаём как есть, без \u003c
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

func statusFor(err error) int {
	switch skill.KindOf(err) {
	case skill.KindUnknownIntentType, skill.KindUnknownIntentName:
		return http.StatusUnprocessableEntity
	case skill.KindMissingSlot:
		return http.StatusBadRequest
	case skill.KindTransport, skill.KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
