package transcriber

import (
	"os"
	"time"

	"github.com/google/uuid"

	"meeting-transcriber/internal/logger"
	"meeting-transcriber/pkg/executor"
)

type implEngine struct {
	model    *Model
	chunk    time.Duration
	executor executor.Executor
	logger   logger.Logger
	tempDir  string
	runID    string
}

// New creates an Engine slicing tracks into chunk-sized segments.
// The uuid run identifier keeps transient chunk files from colliding with
// leftovers of earlier runs sharing the temp directory.
func New(model *Model, chunk time.Duration, exec executor.Executor, log logger.Logger) Engine {
	return &implEngine{
		model:    model,
		chunk:    chunk,
		executor: exec,
		logger:   log,
		tempDir:  os.TempDir(),
		runID:    uuid.New().String(),
	}
}
