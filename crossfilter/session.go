// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"github.com/apex/log"

	"github.com/aclements/sharkfilter/incident"
)

// Session dispatches UI events against one base table and keeps the
// latest derived table.
//
// Events are handled one at a time and each Dispatch publishes a
// fresh derived table that replaces the previous one. A Session is
// not safe for concurrent use; callers must serialize events.
type Session struct {
	base    *incident.Table
	opts    Options
	log     log.Interface
	state   State
	derived *Derived
}

// NewSession returns a Session in st and publishes its first derived
// table. If logger is nil, the apex/log default logger is used.
func NewSession(base *incident.Table, st State, o Options, logger log.Interface) *Session {
	if logger == nil {
		logger = log.Log
	}
	s := &Session{base: base, opts: o, log: logger, state: st}
	s.publish("init")
	return s
}

// Dispatch applies ev and returns the new derived table.
func (s *Session) Dispatch(ev Event) *Derived {
	s.state = ev.Apply(s.state)
	s.publish(ev.String())
	return s.derived
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Derived() *Derived {
	return s.derived
}

func (s *Session) Base() *incident.Table {
	return s.base
}

func (s *Session) publish(event string) {
	d := Publish(s.base, s.state, s.opts)
	s.derived = d
	s.log.WithFields(log.Fields{
		"event":       event,
		"years":       s.state.Years.String(),
		"rows":        d.Len(),
		"selected":    d.NumSelected(),
		"highlighted": d.NumHighlighted(),
	}).Debug("published")
}
