package mock

import (
	"time"

	"github.com/hr-tools/hrdb/core"
)

type resultStreamConfig struct {
	nextSleep time.Duration
	nextErr   error
	meta      *core.Meta
	header    core.Header
}

type ResultStreamOption func(*resultStreamConfig)

func ResultStreamWithNextSleep(s time.Duration) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.nextSleep = s
	}
}

// ResultStreamWithNextError makes every Next call fail with err.
func ResultStreamWithNextError(err error) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.nextErr = err
	}
}

func ResultStreamWithMeta(meta *core.Meta) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.meta = meta
	}
}

func ResultStreamWithHeader(header core.Header) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.header = header
	}
}
