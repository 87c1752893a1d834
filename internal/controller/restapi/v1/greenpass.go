package v1

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @Summary  	Analyze Green Pass
// @Description Reads the QR code of an EU Digital COVID Certificate and returns its vaccination record
// @Tags 		greenpass
// @Accept 		mpfd
// @Produce 	json
// @Param 		image formData file true "Image with the QR code (jpeg, png, gif, webp)"
// @Success 	200 {object} response.Analysis
// @Failure 	400 {object} response.Error "Missing or empty image"
// @Failure 	413 {object} response.Error "Image too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	500 {object} response.Error "Unreadable certificate"
// @Router 		/analyzer/greenPass/analysis/perform [post]
func (r *V1) analyze(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile(validate.FormField)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "image is required")
	}

	// 1. size
	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "image is empty")
	}

	if file.Size > validate.MaxImageSize {
		return errorResponse(ctx, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image size cant be more than %d bytes", validate.MaxImageSize))
	}

	// 2. content type
	contentType := file.Header.Get(fiber.HeaderContentType)
	if !validate.AllowedContentTypes[contentType] {
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "unsupported image type. Allowed: jpeg, png, gif, webp")
	}

	// 3. extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !validate.AllowedExtensions[ext] {
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "unsupported file extension. Allowed: .jpg, .jpeg, .png, .gif, .webp")
	}

	// 4. read
	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - analyze - file.Open")

		return errorResponse(ctx, http.StatusInternalServerError, response.UnknownErrorMessage)
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - analyze - io.ReadAll")

		return errorResponse(ctx, http.StatusInternalServerError, response.UnknownErrorMessage)
	}

	// 5. decode
	start := time.Now()
	cert, err := r.gp.Analyze(ctx.UserContext(), data)
	elapsed := time.Since(start)

	kind := errs.Kind(err)
	r.metrics.ObserveAnalysis(kind, elapsed)

	l := r.logger.With(
		zap.String("request_id", ctx.GetRespHeader(fiber.HeaderXRequestID)),
		zap.String("outcome", kind),
		zap.Duration("elapsed", elapsed),
	)

	if err != nil {
		l.Error(err, "restapi - v1 - analyze")

		return errorResponse(ctx, http.StatusInternalServerError, response.UnknownErrorMessage)
	}

	l.Debug("restapi - v1 - analyze - certificate decoded")

	return ctx.Status(http.StatusOK).JSON(response.Analysis{
		Status:  http.StatusOK,
		Message: response.SuccessMessage,
		Data:    cert,
	})
}
