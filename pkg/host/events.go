package host

import (
	"errors"
	"time"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
)

func (h *Host) newEvent(layer log.Layer, category log.Category, id clsid.ID) log.Event {
	e := log.Event{
		Timestamp: time.Now(),
		SessionID: h.config.SessionID,
		Layer:     layer,
		Category:  category,
	}
	if !id.IsZero() {
		e.DriverID = id.String()
	}
	return e
}

func (h *Host) emitLifecycle(op log.Operation, id clsid.ID, result string, refs uint32) {
	e := h.newEvent(log.LayerTable, log.CategoryLifecycle, id)
	e.Lifecycle = &log.LifecycleEvent{Op: op, Result: result, RefCount: refs}
	h.config.EventLogger.Log(e)
}

func (h *Host) emitGuard(op log.GuardOp, count int32, transition bool, released int) {
	e := h.newEvent(log.LayerGuard, log.CategoryGuard, clsid.Nil)
	e.Guard = &log.GuardEvent{Op: op, Count: count, Transition: transition, Released: released}
	h.config.EventLogger.Log(e)
}

func (h *Host) emitFailure(op log.Operation, id clsid.ID, err error) {
	h.emitError(log.LayerTable, id, err, op.String())
}

func (h *Host) emitError(layer log.Layer, id clsid.ID, err error, context string) {
	e := h.newEvent(layer, log.CategoryError, id)
	e.Error = &log.ErrorEventData{Layer: layer, Message: err.Error(), Context: context}

	var code asio.Error
	if errors.As(err, &code) {
		c := int(code)
		e.Error.Code = &c
	}
	h.config.EventLogger.Log(e)
}
