package server

import (
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"io"
	"net/http"
	"stegbench/api"
	"stegbench/api/fb/EmbedImage"
	"stegbench/internal/logging"
	"stegbench/pkg/config"
	"stegbench/pkg/imageio"
	"stegbench/pkg/stego"
)

const (
	octetStream = "application/octet-stream"
)

// FlatbuffersEmbedHandler godoc
//
// @Summary Embed a payload into an image using flatbuffers
// @Description Same as /api/v1/embed, but the request and response are EmbedImage.EmbedRequest and EmbedImage.EmbedResponse flatbuffers, avoiding base64 overhead on large images. The stego image is always PNG. Errors are returned as JSON.
// @Tags stego
// @Accept octet-stream
// @Produce octet-stream
// @Success 200 {string} binary
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /fb/embed [post]
func FlatbuffersEmbedHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(requestBody) < flatbuffers.SizeUOffsetT {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	request, err := readEmbedRequest(requestBody)
	if err != nil {
		logger.WithError(err).Error("Error decoding flatbuffers request")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	cover, ok := decodeRequestImage(ctx, logger, request.coverImage)
	if !ok {
		return
	}
	engine, err := stego.NewEngine(request.config, stego.WithSink(logger))
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	stegoImage, stats, err := engine.Embed(cover, request.payload)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}
	encoded, err := imageio.EncodeBytes(stegoImage, imageio.FormatPNG, responseEncodeOptions)
	if err != nil {
		abortWithError(ctx, logger, err)
		return
	}

	// pre allocate with size of the stego image, since it dominates the response
	builder := flatbuffers.NewBuilder(len(encoded) + 64)
	stegoImageOffset := builder.CreateByteVector(encoded)
	EmbedImage.EmbedResponseStart(builder)
	EmbedImage.EmbedResponseAddStegoImage(builder, stegoImageOffset)
	if stats.Threshold != nil {
		EmbedImage.EmbedResponseAddThreshold(builder, int32(*stats.Threshold))
	}
	EmbedImage.EmbedResponseAddBitsEmbedded(builder, int32(stats.BitsEmbedded))
	builder.Finish(EmbedImage.EmbedResponseEnd(builder))

	logger.With("stats", toHumanizedEmbedStats(stats)).Info("Flatbuffers embedding was successful")
	ctx.Data(http.StatusOK, octetStream, builder.FinishedBytes())
}

type embedRequest struct {
	coverImage []byte
	payload    []byte
	config     config.EmbedConfig
}

// readEmbedRequest copies every field out of the buffer. Malformed buffers make the generated accessors panic, so all
// of them run under the recover.
func readEmbedRequest(buf []byte) (request embedRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			request, err = embedRequest{}, errMalformedFlatbuffer
		}
	}()

	fbRequest := EmbedImage.GetRootAsEmbedRequest(buf, 0)
	return embedRequest{
		coverImage: fbRequest.CoverImageBytes(),
		payload:    fbRequest.PayloadBytes(),
		config: config.EmbedConfig{
			Method:    config.Method(fbRequest.Method()),
			Threshold: int(fbRequest.Threshold()),
			Framing:   config.Framing(fbRequest.Framing()),
		},
	}, nil
}

// BuildEmbedRequest serializes an embed request for the flatbuffers endpoint.
func BuildEmbedRequest(coverImage, payload []byte, settings api.EmbedSettings) []byte {
	c := settings.ToEmbedConfig()
	builder := flatbuffers.NewBuilder(len(coverImage) + len(payload) + 64)
	coverOffset := builder.CreateByteVector(coverImage)
	payloadOffset := builder.CreateByteVector(payload)
	methodOffset := builder.CreateString(string(c.Method))
	framingOffset := builder.CreateString(string(c.Framing))

	EmbedImage.EmbedRequestStart(builder)
	EmbedImage.EmbedRequestAddCoverImage(builder, coverOffset)
	EmbedImage.EmbedRequestAddPayload(builder, payloadOffset)
	EmbedImage.EmbedRequestAddMethod(builder, methodOffset)
	EmbedImage.EmbedRequestAddThreshold(builder, int32(c.Threshold))
	EmbedImage.EmbedRequestAddFraming(builder, framingOffset)
	builder.Finish(EmbedImage.EmbedRequestEnd(builder))
	return builder.FinishedBytes()
}
