package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/visual-utils/lambda-deploy-and-promote/rgbsplit"
	"github.com/visual-utils/lambda-deploy-and-promote/s3"
)

func main() {
	destinationBucket := os.Getenv("DESTINATION_BUCKET")
	if destinationBucket == "" {
		fmt.Fprintln(os.Stderr, "DESTINATION_BUCKET must be set")
		os.Exit(1)
	}

	store, err := s3.NewDefaultChainClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	handler := rgbsplit.NewHandler(store, destinationBucket, boshlog.NewLogger(boshlog.LevelInfo))

	lambda.Start(func(event events.S3Event) (rgbsplit.Response, error) {
		return handler.Handle(event), nil
	})
}
