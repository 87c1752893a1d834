package infrastructure

import (
	"context"
	"time"
)

type (
	// BarcodeScanner returns the raw text of the barcode found in an encoded image.
	BarcodeScanner interface {
		Scan(ctx context.Context, image []byte) ([]byte, error)
	}

	// AnalysisRecorder collects per-request analysis outcomes.
	AnalysisRecorder interface {
		ObserveAnalysis(outcome string, elapsed time.Duration)
	}
)
