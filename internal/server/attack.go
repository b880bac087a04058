package server

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"stegbench/api"
	"stegbench/internal/logging"
	"stegbench/pkg/attack"
	"stegbench/pkg/imageio"
	"stegbench/pkg/metrics"
)

// AttackHandler godoc
//
// @Summary Run an attack against an image
// @Description Applies one of jpeg, blur, crop or noise. Parameters left out take their default values.
// @Tags attack
// @Accept json
// @Produce json
// @Param requestBody body api.AttackRequest true "Image, attack kind and parameters"
// @Success 200 {object} api.AttackResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /attack [post]
func AttackHandler(ctx *gin.Context) {
	var requestBody api.AttackRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	outputFormat := imageio.FormatPNG
	if requestBody.OutputFormat != "" {
		format, err := imageio.ParseFormat(requestBody.OutputFormat)
		if err != nil {
			abortWithError(ctx, logger, err)
			return
		}
		outputFormat = format
	}

	img, ok := decodeRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}
	attacked, err := attack.Apply(img, requestBody.Kind, requestBody.Params)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}
	encoded, err := imageio.EncodeBytes(attacked, outputFormat, responseEncodeOptions)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	logger.Info("Attack was successful", "kind", requestBody.Kind)
	ctx.JSON(http.StatusOK, api.AttackResponse{Image: encoded})
}

// MetricsHandler godoc
//
// @Summary Measure image quality and text error rate
// @Description Computes PSNR and SSIM between two images and the character error rate between two texts. Either pair may be omitted, but not both. An infinite PSNR is reported as null with psnr_infinite set.
// @Tags metrics
// @Accept json
// @Produce json
// @Param requestBody body api.MetricsRequest true "Images and/or texts to compare"
// @Success 200 {object} api.MetricsResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /metrics [post]
func MetricsHandler(ctx *gin.Context) {
	var requestBody api.MetricsRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	compareImages := len(requestBody.Original) > 0 || len(requestBody.Modified) > 0
	compareTexts := requestBody.TextOriginal != nil || requestBody.TextExtracted != nil
	if !compareImages && !compareTexts {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errNothingToCompare)
		return
	}

	var response api.MetricsResponse
	if compareImages {
		original, ok := decodeRequestImage(ctx, logger, requestBody.Original)
		if !ok {
			return
		}
		modified, ok := decodeRequestImage(ctx, logger, requestBody.Modified)
		if !ok {
			return
		}
		quality, err := metrics.Evaluate(original, modified)
		if err != nil {
			abortWithError(ctx, logger, err)
			return
		}
		response.Quality = &quality
	}
	if compareTexts {
		var original, extracted string
		if requestBody.TextOriginal != nil {
			original = *requestBody.TextOriginal
		}
		if requestBody.TextExtracted != nil {
			extracted = *requestBody.TextExtracted
		}
		ber := metrics.BERText(original, extracted)
		response.BERText = &ber
	}
	ctx.JSON(http.StatusOK, response)
}
