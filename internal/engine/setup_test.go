package engine

import (
	"os"
	"testing"

	"ancestor-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
