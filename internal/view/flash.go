package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages shown on the next full page render.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool { return len(f.Success) == 0 && len(f.Error) == 0 }

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

func SetFlashSuccess(c echo.Context, message string) { setFlash(c, flashKeySuccess, message) }

func SetFlashError(c echo.Context, message string) { setFlash(c, flashKeyError, message) }

// GetFlashData reads and clears the pending flash messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return data
	}
	data.Success = asStrings(sess.Flashes(flashKeySuccess))
	data.Error = asStrings(sess.Flashes(flashKeyError))
	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func asStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
