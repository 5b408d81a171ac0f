package state

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"storefront/internal/repository"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seedRaw(t *testing.T, store *repository.MemoryStateRepository, key, raw string) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), key, []byte(raw)))
}
