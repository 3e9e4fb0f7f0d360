// Package goroutine запускает фоновые задачи так, чтобы паника в них не роняла процесс.
package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

// Go запускает fn в отдельной горутине. Паника перехватывается и пишется в лог
// вместе со стеком и именем задачи. Возвращает канал, закрывающийся после завершения fn.
func Go(ctx context.Context, name string, fn func(context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer Recover(ctx, name)
		fn(ctx)
	}()
	return done
}

// Recover предназначен для defer внутри горутин, запущенных в обход Go.
func Recover(ctx context.Context, name string) {
	if r := recover(); r != nil {
		logger.FromContext(ctx).WithFields(logrus.Fields{
			"task":  name,
			"panic": r,
			"stack": string(debug.Stack()),
		}).Error("паника в фоновой задаче")
	}
}
