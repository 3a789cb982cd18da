package log

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// resetForTest 테스트 간 독립성을 보장하기 위해 패키지 전역 상태를 초기화합니다.
func resetForTest() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil
	stdout = os.Stdout

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

// setStdoutForTest 콘솔 출력 대상을 교체합니다. Setup() 호출 전에 사용해야 합니다.
func setStdoutForTest(w io.Writer) {
	stdout = w
}
