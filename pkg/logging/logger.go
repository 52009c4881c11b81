package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New 建立 slog Logger
//
// 參數:
//
//	level: "debug", "info", "warn", "error"，無法解析時使用 info
//	format: "json" 或 "text" (預設)
//	w: 輸出目標
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard 回傳丟棄所有輸出的 Logger，給測試使用
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
