package gui

import (
	"time"
)

var _ Component = &Status{}

type Status struct {
	*Message
	Tag    string
	flash  string
	status string
	ttl    time.Time
}

func (s *Status) tag() string {
	return s.Tag
}

func (s *Status) expired() bool {
	return !s.ttl.IsZero() && time.Now().After(s.ttl)
}

func (s *Status) SetFlashMsg(m string, delta time.Duration) {
	s.flash = m
	s.ttl = time.Now().Add(delta)
}

func (s *Status) SetStatusMsg(m string) {
	s.status = m
	s.flash = ""
	s.ttl = time.Time{}
}

func (s *Status) Update(v *View) {
	if s.Disabled {
		return
	}

	if s.expired() {
		s.flash = ""
	}

	if s.flash != "" {
		s.Text = s.flash
	} else {
		s.Text = s.status
	}

	s.Message.Update(v)
}

func (s *Status) Draw(v *View) error {
	if s.Disabled || (s.flash == "" && s.status == "") {
		return nil
	}

	return s.Message.Draw(v)
}
