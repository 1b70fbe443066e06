package discovery

import "github.com/mwcockerill/sermon-scribe/internal/logger"

func testLogger() logger.Logger {
	return logger.New("error")
}
