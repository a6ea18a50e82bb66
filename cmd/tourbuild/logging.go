package main

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
)

// newLogger writes console-encoded logs to w; verbose enables debug level.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// zapObserver reports build progress through a zap.Logger.
type zapObserver struct {
	log *zap.Logger
}

func (o *zapObserver) OnSeed(start, nearest pointset.Key) {
	o.log.Debug("seed", zap.Int("start", int(start)), zap.Int("nearest", int(nearest)))
}

func (o *zapObserver) OnInsert(step int, c tsp.Candidate) {
	o.log.Debug("insert",
		zap.Int("step", step),
		zap.Int("node", int(c.Node)),
		zap.Int("from", int(c.Edge.From)),
		zap.Int("to", int(c.Edge.To)),
		zap.Float64("dist2", c.Distance),
	)
}

func (o *zapObserver) OnComplete(steps int, elapsed time.Duration) {
	o.log.Debug("complete", zap.Int("steps", steps), zap.Duration("elapsed", elapsed))
}
