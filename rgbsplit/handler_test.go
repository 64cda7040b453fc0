package rgbsplit_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aws/aws-lambda-go/events"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/visual-utils/lambda-deploy-and-promote/rgbsplit"
	s3Fakes "github.com/visual-utils/lambda-deploy-and-promote/s3/fakes"
)

func encodePNG(img image.Image) []byte {
	buffer := new(bytes.Buffer)
	Expect(png.Encode(buffer, img)).To(Succeed())
	return buffer.Bytes()
}

func recordFor(bucket, key string) events.S3EventRecord {
	return events.S3EventRecord{
		S3: events.S3Entity{
			Bucket: events.S3Bucket{Name: bucket},
			Object: events.S3Object{Key: key},
		},
	}
}

var _ = Describe("Handler", func() {
	var (
		store   *s3Fakes.FakeClient
		handler *rgbsplit.Handler

		uploads map[string][]byte
	)

	BeforeEach(func() {
		original := image.NewRGBA(image.Rect(0, 0, 2, 1))
		original.SetRGBA(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		original.SetRGBA(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

		store = new(s3Fakes.FakeClient)
		store.GetReturns(encodePNG(original), nil)

		uploads = map[string][]byte{}
		store.PutStub = func(bucket, key string, body io.Reader, length int64) error {
			contents, err := io.ReadAll(body)
			uploads[key] = contents
			return err
		}

		handler = rgbsplit.NewHandler(store, "destination-bucket", boshlog.NewLogger(boshlog.LevelNone))
	})

	It("splits the uploaded image into three channel images", func() {
		response := handler.Handle(events.S3Event{
			Records: []events.S3EventRecord{recordFor("source-bucket", "photos/cat.png")},
		})

		Expect(response.StatusCode).To(Equal(200))
		Expect(response.Body).To(Equal("Processed the following s3Objects: photos/cat.png"))

		bucket, key := store.GetArgsForCall(0)
		Expect(bucket).To(Equal("source-bucket"))
		Expect(key).To(Equal("photos/cat.png"))

		Expect(store.PutCallCount()).To(Equal(3))
		Expect(uploads).To(HaveLen(3))
		for _, destinationKey := range []string{"red/photos/cat.png", "green/photos/cat.png", "blue/photos/cat.png"} {
			Expect(uploads).To(HaveKey(destinationKey))

			destinationBucket, _, _, _ := store.PutArgsForCall(indexOfKey(store, destinationKey))
			Expect(destinationBucket).To(Equal("destination-bucket"))

			decoded, format, err := image.Decode(bytes.NewReader(uploads[destinationKey]))
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal("jpeg"))
			Expect(decoded.Bounds().Dx()).To(Equal(2))
			Expect(decoded.Bounds().Dy()).To(Equal(1))
		}
	})

	It("processes every record of the event", func() {
		response := handler.Handle(events.S3Event{
			Records: []events.S3EventRecord{
				recordFor("source-bucket", "one.png"),
				recordFor("source-bucket", "two.png"),
			},
		})

		Expect(response.StatusCode).To(Equal(200))
		Expect(response.Body).To(Equal("Processed the following s3Objects: one.png, two.png"))
		Expect(store.GetCallCount()).To(Equal(2))
		Expect(store.PutCallCount()).To(Equal(6))
	})

	It("URL-unescapes object keys the way the event encodes them", func() {
		response := handler.Handle(events.S3Event{
			Records: []events.S3EventRecord{recordFor("source-bucket", "my+photo%281%29.png")},
		})

		Expect(response.StatusCode).To(Equal(200))

		_, key := store.GetArgsForCall(0)
		Expect(key).To(Equal("my photo(1).png"))
		Expect(uploads).To(HaveKey("red/my photo(1).png"))
	})

	It("marshals responses in the original payload shape", func() {
		payload, err := json.Marshal(rgbsplit.Response{StatusCode: 200, Body: "ok"})

		Expect(err).NotTo(HaveOccurred())
		Expect(string(payload)).To(Equal(`{"statusCode":200,"body":"ok"}`))
	})

	When("an object key cannot be unescaped", func() {
		It("fails the invocation", func() {
			response := handler.Handle(events.S3Event{
				Records: []events.S3EventRecord{recordFor("source-bucket", "bad%zz.png")},
			})

			Expect(response.StatusCode).To(Equal(500))
			Expect(response.Body).To(ContainSubstring("could not unescape object key"))
			Expect(store.GetCallCount()).To(Equal(0))
		})
	})

	When("the object cannot be fetched", func() {
		It("fails the invocation", func() {
			store.GetReturns(nil, errors.New("could not get object 'photos/cat.png' from bucket source-bucket: no such key"))

			response := handler.Handle(events.S3Event{
				Records: []events.S3EventRecord{recordFor("source-bucket", "photos/cat.png")},
			})

			Expect(response.StatusCode).To(Equal(500))
			Expect(response.Body).To(ContainSubstring("Error in handler: could not get object"))
			Expect(store.PutCallCount()).To(Equal(0))
		})
	})

	When("the object is not an image", func() {
		It("fails the invocation", func() {
			store.GetReturns([]byte("not an image"), nil)

			response := handler.Handle(events.S3Event{
				Records: []events.S3EventRecord{recordFor("source-bucket", "notes.txt")},
			})

			Expect(response.StatusCode).To(Equal(500))
			Expect(response.Body).To(ContainSubstring("could not decode image 'notes.txt'"))
		})
	})

	When("an upload fails", func() {
		It("fails the invocation", func() {
			store.PutStub = nil
			store.PutReturns(errors.New("could not put object 'red/photos/cat.png' into bucket destination-bucket: denied"))

			response := handler.Handle(events.S3Event{
				Records: []events.S3EventRecord{recordFor("source-bucket", "photos/cat.png")},
			})

			Expect(response.StatusCode).To(Equal(500))
			Expect(response.Body).To(ContainSubstring("could not put object"))
			Expect(store.PutCallCount()).To(Equal(1))
		})
	})

	When("a later record fails", func() {
		It("fails the whole invocation after the earlier uploads", func() {
			store.GetReturnsOnCall(1, nil, errors.New("could not get object 'two.png' from bucket source-bucket: no such key"))

			response := handler.Handle(events.S3Event{
				Records: []events.S3EventRecord{
					recordFor("source-bucket", "one.png"),
					recordFor("source-bucket", "two.png"),
				},
			})

			Expect(response.StatusCode).To(Equal(500))
			Expect(store.PutCallCount()).To(Equal(3))
		})
	})
})

func indexOfKey(store *s3Fakes.FakeClient, key string) int {
	for i := 0; i < store.PutCallCount(); i++ {
		_, candidate, _, _ := store.PutArgsForCall(i)
		if candidate == key {
			return i
		}
	}
	return -1
}
