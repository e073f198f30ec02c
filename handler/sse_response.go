package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context bound to an open DataStar event stream.
type StreamContext interface {
	Context
	SendComponent(c templ.Component, opts ...TemplOption) error
	SendMultiple(patches ...TemplPatch) error
	// SendSignals patches client side signals with the JSON encoding of v.
	SendSignals(v any) error
}

// SSEHandler runs for the lifetime of the stream. Returning ends the response.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE keeps the response open as an event stream and hands it to h.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignals(state); err != nil {
//			return err
//		}
//		<-stream.Done()
//		return nil
//	})
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(comp templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(comp, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
