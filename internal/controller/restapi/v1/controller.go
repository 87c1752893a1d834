package v1

import (
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/usecase"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/logger"
)

type V1 struct {
	gp      usecase.GreenPassUseCase
	metrics infrastructure.AnalysisRecorder
	logger  logger.Interface
}
