package glog

import (
	"fmt"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeDebug   = "debug"
	ModeRelease = "release"

	logTag = "gl2demo"
)

type Options struct {
	Mode   string
	Dir    string
	MaxAge time.Duration
}

func StdError(logContent string) {
	logContent = strings.TrimSpace(logContent)
	os.Stderr.WriteString(fmt.Sprintf("[%s]%s\n", time.Now().Format("2006-01-02 15:04:05"), logContent))
}

func StdInfo(logContent string) {
	logContent = strings.TrimSpace(logContent)
	os.Stdout.WriteString(fmt.Sprintf("[%s]%s\n", time.Now().Format("2006-01-02 15:04:05"), logContent))
}

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

func init() {
	SetLogger(newLogger(os.Getenv("glog_run_mode"), nil))
}

// Setup installs a logger that also writes to a daily rotated file under
// opts.Dir. On failure the current logger is kept.
func Setup(opts Options) error {

	if len(opts.Dir) < 1 {
		SetLogger(newLogger(opts.Mode, nil))
		return nil
	}

	if opts.MaxAge <= 0 {
		opts.MaxAge = 24 * time.Hour
	}

	logFileInfo, pathErr := os.Stat(opts.Dir)
	if pathErr != nil {
		pathErr = os.MkdirAll(opts.Dir, 0755)
		if pathErr != nil {
			return errors.Wrap(pathErr, "create log dir")
		}
	} else if !logFileInfo.IsDir() {
		return errors.Errorf("log path=[%s] is not a directory", opts.Dir)
	}

	logFileFormat := path.Join(opts.Dir, "app_%Y%m%d.log")

	logHandle, logErr := rotatelogs.New(logFileFormat,
		rotatelogs.WithClock(rotatelogs.Local),
		rotatelogs.WithMaxAge(opts.MaxAge))
	if logErr != nil {
		return errors.Wrap(logErr, "rotatelogs.New")
	}

	SetLogger(newLogger(opts.Mode, zapcore.AddSync(logHandle)))

	return nil
}

// SetLogger replaces the process logger. A nil logger silences all output.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger = l
	if logger != nil {
		zap.ReplaceGlobals(logger)
	}
}

func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func newLogger(logMode string, fileSink zapcore.WriteSyncer) *zap.Logger {

	logConfig := zap.NewProductionEncoderConfig()
	logConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConfig.EncodeLevel = func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString("[" + level.CapitalString() + "]")
	}

	logEncoder := zapcore.NewConsoleEncoder(logConfig)

	logInfoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl == zapcore.InfoLevel
	})

	logWarnLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.WarnLevel
	})

	var logCores []zapcore.Core

	if fileSink != nil {
		logCores = append(logCores,
			zapcore.NewCore(logEncoder, fileSink, logInfoLevel),
			zapcore.NewCore(logEncoder, fileSink, logWarnLevel),
		)
	}

	// release mode keeps the console quiet unless there is nowhere else to write
	if !strings.EqualFold(logMode, ModeRelease) || fileSink == nil {
		logCores = append(logCores,
			zapcore.NewCore(logEncoder, zapcore.AddSync(os.Stdout), logInfoLevel),
			zapcore.NewCore(logEncoder, zapcore.AddSync(os.Stderr), logWarnLevel),
		)
	}

	return zap.New(zapcore.NewTee(logCores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	).Named(logTag)
}

func Info(args ...interface{}) {

	xLogger := Logger()
	if xLogger == nil {
		return
	}

	logData := fmt.Sprint(args...)
	xLogger.Info(logData)
}

func InfoF(format string, args ...interface{}) {

	xLogger := Logger()
	if xLogger == nil {
		return
	}

	logData := fmt.Sprintf(format, args...)
	xLogger.Info(logData)
}

func Warn(args ...interface{}) {
	xLogger := Logger()
	if xLogger == nil {
		return
	}

	logData := fmt.Sprint(args...)
	xLogger.Warn(logData)
}

func WarnF(format string, args ...interface{}) {
	xLogger := Logger()
	if xLogger == nil {
		return
	}

	logData := fmt.Sprintf(format, args...)
	xLogger.Warn(logData)
}

func Error(args ...interface{}) {
	xLogger := Logger()
	if xLogger == nil {
		return
	}

	logData := fmt.Sprint(args...)
	xLogger.Error(logData)
}

func ErrorF(format string, args ...interface{}) {
	xLogger := Logger()
	if xLogger == nil {
		return
	}

	logData := fmt.Sprintf(format, args...)
	xLogger.Error(logData)
}

func Sync() {
	xLogger := Logger()
	if xLogger == nil {
		return
	}
	xLogger.Sync()
}
