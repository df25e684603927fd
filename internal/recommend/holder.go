// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "sync/atomic"

// Holder publishes the engine currently being served. Readers always see a
// complete engine; Swap replaces it atomically after a successful rebuild.
type Holder struct {
	current atomic.Pointer[Engine]
}

// NewHolder creates a holder serving engine.
func NewHolder(engine *Engine) *Holder {
	h := &Holder{}
	h.current.Store(engine)
	return h
}

// Engine returns the engine currently being served.
func (h *Holder) Engine() *Engine {
	return h.current.Load()
}

// Swap installs engine and returns the previous one. A nil engine is ignored.
func (h *Holder) Swap(engine *Engine) *Engine {
	if engine == nil {
		return h.current.Load()
	}
	return h.current.Swap(engine)
}
