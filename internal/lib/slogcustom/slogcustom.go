package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// CustomHandler пишет записи slog одной цветной строкой:
// время, уровень, сообщение и атрибуты key=value.
type CustomHandler struct {
	l      *log.Logger
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	colors bool
}

// NewCustomHandler создаёт обработчик. colors=false отключает цвет (для файлов и NO_COLOR).
func NewCustomHandler(out io.Writer, level slog.Leveler, colors bool) *CustomHandler {
	return &CustomHandler{
		l:      log.New(out, "", 0),
		mu:     &sync.Mutex{},
		level:  level,
		colors: colors,
	}
}

func (c *CustomHandler) paint(attr color.Attribute, s string) string {
	if !c.colors {
		return s
	}

	p := color.New(attr)
	p.EnableColor()

	return p.Sprint(s)
}

func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level >= slog.LevelError:
		level = c.paint(color.FgRed, level)
	case r.Level >= slog.LevelWarn:
		level = c.paint(color.FgYellow, level)
	case r.Level >= slog.LevelInfo:
		level = c.paint(color.FgHiBlue, level)
	default:
		level = c.paint(color.FgMagenta, level)
	}

	var attrs strings.Builder
	write := func(a slog.Attr) {
		attrs.WriteString(c.paint(color.FgGreen, a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " ")
	}

	for _, a := range c.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(c.qualify(a))
		return true
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSpace(attrs.String()),
	)
	return nil
}

// qualify добавляет к ключу текущую группу.
func (c *CustomHandler) qualify(a slog.Attr) slog.Attr {
	if c.group != "" {
		a.Key = c.group + "." + a.Key
	}
	return a
}

func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *c
	clone.attrs = append([]slog.Attr(nil), c.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, c.qualify(a))
	}

	return &clone
}

func (c *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}

	clone := *c
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}

	return &clone
}

func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}
