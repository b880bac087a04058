package server

import (
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"net/http"
	"stegbench/api"
	"stegbench/internal/logging"
	"stegbench/pkg/imageio"
	"stegbench/pkg/metrics"
	"stegbench/pkg/model"
	"stegbench/pkg/stego"
)

// EmbedHandler godoc
//
// @Summary Embed a payload into an image
// @Description Hides the payload in the cover image with the selected method and returns the stego image, the embedding stats and the quality of the stego image against the cover. Images are base64 encoded PNG, BMP or JPEG.
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedRequest true "Cover image, payload and embedding settings"
// @Success 200 {object} api.EmbedResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed [post]
func EmbedHandler(ctx *gin.Context) {
	var requestBody api.EmbedRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing embed request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	payload := requestBody.Payload
	if payload == nil {
		if requestBody.Text == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}
		payload = stego.PayloadFromText(requestBody.Text)
	}

	outputFormat := imageio.FormatPNG
	if requestBody.OutputFormat != "" {
		format, err := imageio.ParseFormat(requestBody.OutputFormat)
		if err != nil || format == imageio.FormatJPEG {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errLossyOutput)
			return
		}
		outputFormat = format
	}

	cover, ok := decodeRequestImage(ctx, logger, requestBody.CoverImage)
	if !ok {
		return
	}
	engine, err := stego.NewEngine(requestBody.ToEmbedConfig(), stego.WithSink(logger))
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	stegoImage, stats, err := engine.Embed(cover, payload)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}
	quality, err := metrics.Evaluate(cover, stegoImage)
	if err != nil {
		// SSIM needs at least an 11x11 image, PSNR is still meaningful below that
		quality.PSNR, _ = metrics.PSNR(cover, stegoImage)
	}
	encoded, err := imageio.EncodeBytes(stegoImage, outputFormat, responseEncodeOptions)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	humanizedStats := toHumanizedEmbedStats(stats)
	logger.With("stats", humanizedStats).Info("Embedding was successful")
	ctx.JSON(http.StatusOK, api.EmbedResponse{StegoImage: encoded, Stats: humanizedStats, Quality: quality})
}

// ExtractHandler godoc
//
// @Summary Extract a payload from an image
// @Description Reads the payload hidden in the stego image. The settings must match the ones used to embed it, and adaptive extraction must use the threshold reported at embed time. Extraction never fails on a missing end marker, the bytes read so far are returned instead.
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractRequest true "Stego image and embedding settings"
// @Success 200 {object} api.ExtractResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract [post]
func ExtractHandler(ctx *gin.Context) {
	var requestBody api.ExtractRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	stegoImage, ok := decodeRequestImage(ctx, logger, requestBody.StegoImage)
	if !ok {
		return
	}
	engine, err := stego.NewEngine(requestBody.ToEmbedConfig(), stego.WithSink(logger))
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	payload, err := engine.Extract(stegoImage)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}
	ctx.JSON(http.StatusOK, api.ExtractResponse{Payload: payload, Text: stego.TextFromPayload(payload)})
}

// CapacityHandler godoc
//
// @Summary Report how many bytes an image can carry
// @Description The capacity includes the bytes used to mark the end of the payload.
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityRequest true "Image and embedding settings"
// @Success 200 {object} api.CapacityResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /capacity [post]
func CapacityHandler(ctx *gin.Context) {
	var requestBody api.CapacityRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, ok := decodeRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}
	engine, err := stego.NewEngine(requestBody.ToEmbedConfig())
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	capacity, err := engine.Capacity(img)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}
	ctx.JSON(http.StatusOK, api.CapacityResponse{Bytes: capacity, Human: humanize.Bytes(uint64(capacity))})
}

func decodeRequestImage(ctx *gin.Context, logger *logging.Logger, data []byte) (*model.Raster, bool) {
	img, _, err := imageio.DecodeBytes(data)
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return nil, false
	}
	return img, true
}

func abortWithError(ctx *gin.Context, logger *logging.Logger, err error) {
	status, body := errorResponse(err)
	logger.WithError(err).Error("Request failed", "status", status)
	ctx.AbortWithStatusJSON(status, body)
}
