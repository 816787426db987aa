package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func ProvideLogger() *zap.Logger { return NewLog("filter.log") }

var Module = fx.Options(
	fx.Provide(ProvideLogger),
)
