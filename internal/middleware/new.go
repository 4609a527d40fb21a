package middleware

import (
	"todo-me/pkg/log"
)

// Header names read and written by the middlewares.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
