package logger

import "github.com/sirupsen/logrus"

var (
	// App 业务日志
	App *logrus.Logger
	// Audit 账务审计日志，保留期比业务日志长
	Audit *logrus.Logger
)

func InitLogger() {
	App = NewLogger("app")
	Audit = NewLogger("audit")
}
