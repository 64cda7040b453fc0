package rgbsplit

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/visual-utils/lambda-deploy-and-promote/s3"
)

type Logger interface {
	Info(tag, msg string, args ...interface{})
	Error(tag, msg string, args ...interface{})
}

// Response is the payload shape the function has always returned.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler splits every uploaded image into its RGB channels and stores
// them under red/, green/ and blue/ prefixes in the destination bucket.
type Handler struct {
	store             s3.Client
	destinationBucket string
	logger            Logger
}

func NewHandler(store s3.Client, destinationBucket string, logger Logger) *Handler {
	return &Handler{
		store:             store,
		destinationBucket: destinationBucket,
		logger:            logger,
	}
}

// Handle processes every record of the event. The first failing record
// fails the whole invocation with a 500 response.
func (h *Handler) Handle(event events.S3Event) Response {
	var processedKeys []string

	for _, record := range event.Records {
		objectKey, err := h.processRecord(record)
		if objectKey != "" {
			processedKeys = append(processedKeys, objectKey)
		}
		if err != nil {
			errorMessage := fmt.Sprintf("Error in handler: %s", err)
			h.logger.Error("rgbsplit", errorMessage)
			return Response{StatusCode: 500, Body: errorMessage}
		}
	}

	result := fmt.Sprintf("Processed the following s3Objects: %s", strings.Join(processedKeys, ", "))
	h.logger.Info("rgbsplit", result)

	return Response{StatusCode: 200, Body: result}
}

func (h *Handler) processRecord(record events.S3EventRecord) (string, error) {
	sourceBucket := record.S3.Bucket.Name

	objectKey, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		return "", fmt.Errorf("could not unescape object key '%s': %s", record.S3.Object.Key, err)
	}

	h.logger.Info("rgbsplit", "Processing object %s from bucket %s", objectKey, sourceBucket)

	contents, err := h.store.Get(sourceBucket, objectKey)
	if err != nil {
		return objectKey, err
	}

	originalImage, format, err := image.Decode(bytes.NewReader(contents))
	if err != nil {
		return objectKey, fmt.Errorf("could not decode image '%s': %s", objectKey, err)
	}

	bounds := originalImage.Bounds()
	h.logger.Info("rgbsplit", "Loaded %s image %s: %dx%d pixels", format, objectKey, bounds.Dx(), bounds.Dy())

	red, green, blue := SplitChannels(originalImage)
	h.logger.Info("rgbsplit", "Channel separation completed for %s", objectKey)

	channels := []struct {
		color string
		img   image.Image
	}{
		{"red", red},
		{"green", green},
		{"blue", blue},
	}

	for _, channel := range channels {
		if err := h.uploadChannelImage(channel.img, channel.color+"/"+objectKey); err != nil {
			return objectKey, err
		}
	}

	return objectKey, nil
}

func (h *Handler) uploadChannelImage(img image.Image, destinationKey string) error {
	buffer := new(bytes.Buffer)
	if err := jpeg.Encode(buffer, img, nil); err != nil {
		return fmt.Errorf("could not encode '%s': %s", destinationKey, err)
	}

	if err := h.store.Put(h.destinationBucket, destinationKey, bytes.NewReader(buffer.Bytes()), int64(buffer.Len())); err != nil {
		return err
	}

	h.logger.Info("rgbsplit", "Successfully uploaded %s to bucket %s", destinationKey, h.destinationBucket)

	return nil
}
