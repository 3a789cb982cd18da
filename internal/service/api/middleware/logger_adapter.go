package middleware

import (
	"io"

	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo 프레임워크의 log.Logger 인터페이스를 애플리케이션 로거(logrus)로 연결하는 어댑터입니다.
//
// Echo 내부 로그(서버 시작 오류 등)도 애플리케이션 로그와 같은 형식과 출력 대상을 사용하게 됩니다.
// 각 메서드는 대부분 logrus의 해당 메서드로 단순 위임합니다.
type Logger struct {
	*applog.Logger
}

// NewLogger 전역 로거를 사용하는 Echo 로거 어댑터를 생성합니다.
func NewLogger() Logger {
	return Logger{Logger: applog.StandardLogger()}
}

// echoToAppLevels Echo 로그 레벨과 logrus 로그 레벨의 대응표
var echoToAppLevels = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix, SetPrefix, SetHeader Echo의 Prefix/Header 기능은 사용하지 않습니다.
func (l Logger) Prefix() string { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level 현재 로그 레벨을 Echo 로그 레벨로 변환합니다.
// Trace 레벨은 Debug로, Echo에 대응하는 레벨이 없는 Fatal/Panic은 OFF로 취급합니다.
func (l Logger) Level() log.Lvl {
	lvl := l.Logger.GetLevel()
	if lvl == applog.TraceLevel {
		return log.DEBUG
	}

	for echoLvl, appLvl := range echoToAppLevels {
		if appLvl == lvl {
			return echoLvl
		}
	}

	return log.OFF
}

// SetLevel Echo 로그 레벨을 logrus 로그 레벨로 변환하여 설정합니다. (OFF는 무시)
func (l Logger) SetLevel(lvl log.Lvl) {
	if appLvl, ok := echoToAppLevels[lvl]; ok {
		l.Logger.SetLevel(appLvl)
	}
}

func (l Logger) Print(i ...interface{}) { l.Logger.Print(i...) }
func (l Logger) Printf(format string, args ...interface{}) { l.Logger.Printf(format, args...) }
func (l Logger) Printj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...interface{}) { l.Logger.Debug(i...) }
func (l Logger) Debugf(format string, args ...interface{}) { l.Logger.Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...interface{}) { l.Logger.Info(i...) }
func (l Logger) Infof(format string, args ...interface{}) { l.Logger.Infof(format, args...) }
func (l Logger) Infoj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...interface{}) { l.Logger.Warn(i...) }
func (l Logger) Warnf(format string, args ...interface{}) { l.Logger.Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...interface{}) { l.Logger.Error(i...) }
func (l Logger) Errorf(format string, args ...interface{}) { l.Logger.Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...interface{}) { l.Logger.Fatal(i...) }
func (l Logger) Fatalf(format string, args ...interface{}) { l.Logger.Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...interface{}) { l.Logger.Panic(i...) }
func (l Logger) Panicf(format string, args ...interface{}) { l.Logger.Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Panic() }
