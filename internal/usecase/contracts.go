package usecase

import (
	"context"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/entity"
)

type (
	GreenPassUseCase interface {
		Analyze(ctx context.Context, image []byte) (*entity.Certificate, error)
		AnalyzePayload(ctx context.Context, payload []byte) (*entity.Certificate, error)
	}
)
