// Package notify carries the transient outcome messages of admin actions:
// the toast shown to the acting admin and the activity feed on the dashboard.
package notify

import (
	"context"
	"time"
)

// Level is the severity of a notice.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
)

// Notice is one toast.
type Notice struct {
	Level Level     `json:"level"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
	// View names the screen the notice came from, e.g. "service-providers".
	View string `json:"view,omitempty"`
}

// Notifier receives every notice emitted by the console.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

// Discard drops every notice.
var Discard Notifier = NotifierFunc(func(context.Context, Notice) {})

func newNotice(level Level, view, text string) Notice {
	return Notice{Level: level, Text: text, View: view, At: time.Now().UTC()}
}

// Succeeded builds a success notice.
func Succeeded(view, text string) Notice { return newNotice(Success, view, text) }

// Failed builds an error notice.
func Failed(view, text string) Notice { return newNotice(Error, view, text) }

// Warned builds a warning notice.
func Warned(view, text string) Notice { return newNotice(Warning, view, text) }
