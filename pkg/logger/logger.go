package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dreamdecode/backend/pkg/config"
)

// New builds the process-wide sugared logger. Dev gets the console encoder
// with debug enabled; everything else logs production JSON.
func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	var zcfg zap.Config
	if cfg.Env == config.EnvDev {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.TimeKey = "time"
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

var Module = fx.Options(
	fx.Provide(New),
)
