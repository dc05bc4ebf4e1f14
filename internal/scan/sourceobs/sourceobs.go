package sourceobs

import (
	"context"

	"trendfin/internal/interfaces"
	"trendfin/internal/logger"
	"trendfin/internal/trace"
	"trendfin/internal/types"
)

// observableSource wraps a TextSource with observability (logging & tracing)
type observableSource struct {
	source interfaces.TextSource
}

// Compile-time interface check
var _ interfaces.TextSource = (*observableSource)(nil)

// Wrap wraps a text source with observability middleware
func Wrap(source interfaces.TextSource) interfaces.TextSource {
	return &observableSource{source: source}
}

func (os *observableSource) Name() string {
	return os.source.Name()
}

// Collect gathers documents with observability
func (os *observableSource) Collect(ctx context.Context) ([]types.Document, error) {
	ctx, span := trace.StartSpan(ctx, "source.Collect")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Collecting documents", "source", os.source.Name())

	docs, err := os.source.Collect(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to collect documents", err, "source", os.source.Name())
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Documents collected", "source", os.source.Name(), "count", len(docs))
	return docs, nil
}
