package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log アプリケーション全体で共有するロガー
// Init を呼ぶ前でも既定設定で利用できる
var Log = logrus.New()

// Init LOG_LEVEL / LOG_FORMAT からロガーを設定する。起動時に一度だけ呼ぶ
func Init(level, format string) {
	Configure(Log, level, format, os.Stdout)
}

// Configure 任意のロガーを設定する（テストでの出力差し替え用）
func Configure(l *logrus.Logger, level, format string, out io.Writer) {
	if level == "" {
		level = "info"
	}
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}
	l.SetLevel(lv)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	l.SetOutput(out)
}

// Component コンポーネント名付きのエントリ
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
