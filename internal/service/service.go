// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 생명주기 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 시작하고 종료 신호로 정리하는 서비스의 생명주기 인터페이스입니다.
//
// Start는 serviceStopWG.Add(1)이 호출된 상태에서 호출되며, 구현체는 serviceStopCtx가 취소되어
// 정리가 끝나면(또는 Start가 에러를 반환하기 직전에) 반드시 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
