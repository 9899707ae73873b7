package clog

import (
	"log/slog"

	"connectrpc.com/connect"
)

type Level int

const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func HTTPStatusToLevel(status int) Level {
	switch {
	case status >= 100 && status < 400:
		return LevelInfo
	case status == 499:
		return LevelInfo
	case status >= 400 && status < 500:
		return LevelWarn
	case status >= 500:
		return LevelError
	default:
		return LevelError
	}
}

// serverFaults are the codes that point at a bug or an unhealthy
// dependency rather than at the caller.
var serverFaults = map[connect.Code]struct{}{
	connect.CodeUnknown:           {},
	connect.CodeResourceExhausted: {},
	connect.CodeUnimplemented:     {},
	connect.CodeInternal:          {},
	connect.CodeUnavailable:       {},
	connect.CodeDataLoss:          {},
}

// ConnectCodeToLevel maps a code to the level its log line is written at.
// Unrecognized codes are errors.
func ConnectCodeToLevel(code connect.Code) Level {
	if _, ok := serverFaults[code]; ok {
		return LevelError
	}
	if code < connect.CodeCanceled || code > connect.CodeUnauthenticated {
		return LevelError
	}
	return LevelInfo
}
