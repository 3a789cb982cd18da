// Package sentryx Sentry 에러 추적 클라이언트의 초기화와 종료를 담당합니다.
package sentryx

import (
	"errors"
	"net"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	productionTracesSampleRate = 0.1
	defaultTracesSampleRate    = 1.0

	maxBreadcrumbs = 50

	// networkErrorType 클라이언트가 보고하는 네트워크 장애 예외 타입. 이 타입의 이벤트는 전송하지 않습니다.
	networkErrorType = "NetworkError"
)

// Options Sentry 초기화 옵션
type Options struct {
	DSN         string
	Environment string
	Release     string
	Production  bool
}

// Init 전역 Sentry 클라이언트를 초기화합니다.
//
// DSN이 비어 있으면 아무 작업도 하지 않고 false를 반환합니다.
func Init(opts Options) (bool, error) {
	if opts.DSN == "" {
		return false, nil
	}

	if err := sentry.Init(clientOptions(opts)); err != nil {
		return false, err
	}

	return true, nil
}

func clientOptions(opts Options) sentry.ClientOptions {
	tracesSampleRate := defaultTracesSampleRate
	if opts.Production {
		tracesSampleRate = productionTracesSampleRate
	}

	return sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		MaxBreadcrumbs:   maxBreadcrumbs,
		AttachStacktrace: true,
		BeforeSend:       beforeSend,
	}
}

// beforeSend 네트워크 장애로 인한 이벤트를 걸러냅니다.
func beforeSend(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if hint != nil && hint.OriginalException != nil {
		var netErr net.Error
		if errors.As(hint.OriginalException, &netErr) {
			return nil
		}
	}

	if len(event.Exception) > 0 && event.Exception[0].Type == networkErrorType {
		return nil
	}

	return event
}

// Flush 전송 대기 중인 이벤트를 최대 timeout 동안 전송합니다.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
