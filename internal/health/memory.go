package health

import (
	"math"
	"runtime"
	"strconv"
)

const bytesPerMB = 1024 * 1024

// MemoryStats 보고서에 사용되는 메모리 통계의 원시 값(바이트)입니다.
type MemoryStats struct {
	HeapUsed  uint64
	HeapTotal uint64
	External  uint64
}

// ReadRuntimeMemory Go 런타임의 메모리 통계를 읽습니다.
//
//   - HeapUsed: 할당되어 사용 중인 힙 (HeapAlloc)
//   - HeapTotal: OS로부터 확보한 힙 (HeapSys)
//   - External: 힙 외부에서 런타임이 확보한 메모리 (Sys - HeapSys)
func ReadRuntimeMemory() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var external uint64
	if ms.Sys > ms.HeapSys {
		external = ms.Sys - ms.HeapSys
	}

	return MemoryStats{
		HeapUsed:  ms.HeapAlloc,
		HeapTotal: ms.HeapSys,
		External:  external,
	}
}

// FormatMB 바이트 값을 MB 단위로 반올림하여 "<n> MB" 형식으로 반환합니다.
func FormatMB(bytes uint64) string {
	mb := math.Round(float64(bytes) / bytesPerMB)
	return strconv.FormatUint(uint64(mb), 10) + " MB"
}

func (s MemoryStats) usage() MemoryUsage {
	return MemoryUsage{
		HeapUsed:  FormatMB(s.HeapUsed),
		HeapTotal: FormatMB(s.HeapTotal),
		External:  FormatMB(s.External),
	}
}
