package greenpass

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/entity"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure/transcoder"
)

type UseCase struct {
	scanner infrastructure.BarcodeScanner
}

func New(s infrastructure.BarcodeScanner) *UseCase {
	return &UseCase{scanner: s}
}

// Analyze reads the Green Pass QR code in image and maps its vaccination record.
func (uc *UseCase) Analyze(ctx context.Context, image []byte) (*entity.Certificate, error) {
	text, err := uc.scanner.Scan(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - Analyze - uc.scanner.Scan: %w", err)
	}

	cert, err := uc.AnalyzePayload(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - Analyze - uc.AnalyzePayload: %w", err)
	}

	return cert, nil
}

// AnalyzePayload starts from the decoded barcode text ("HC1:...").
func (uc *UseCase) AnalyzePayload(ctx context.Context, payload []byte) (*entity.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - AnalyzePayload: %w", err)
	}

	raw, err := transcoder.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - AnalyzePayload - transcoder.Decode: %w", err)
	}

	inner, err := decodeEnvelope(raw)
	if err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - AnalyzePayload - decodeEnvelope: %w", err)
	}

	doc, err := decodePayload(inner)
	if err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - AnalyzePayload - decodePayload: %w", err)
	}

	cert, err := mapCertificate(doc)
	if err != nil {
		return nil, fmt.Errorf("GreenPassUseCase - AnalyzePayload - mapCertificate: %w", err)
	}

	return cert, nil
}
