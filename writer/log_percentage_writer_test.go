package writer_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	orchestratorFakes "github.com/visual-utils/lambda-deploy-and-promote/orchestrator/fakes"
	"github.com/visual-utils/lambda-deploy-and-promote/writer"
	"github.com/visual-utils/lambda-deploy-and-promote/writer/fakes"
)

var _ = Describe("LogPercentageWriter", func() {
	var (
		backingWriter *bytes.Buffer
		logger        *orchestratorFakes.FakeLogger
	)

	BeforeEach(func() {
		backingWriter = bytes.NewBuffer([]byte{})
		logger = new(orchestratorFakes.FakeLogger)
	})

	It("writes through to the underlying writer", func() {
		percentageWriter := writer.NewLogPercentageWriter(backingWriter, logger, 100, "fnpack", "Uploaded %d%%")

		n, err := percentageWriter.Write([]byte("four"))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(4))
		Expect(backingWriter.String()).To(Equal("four"))
	})

	It("logs progress once per increment", func() {
		percentageWriter := writer.NewLogPercentageWriter(backingWriter, logger, 100, "fnpack", "Uploaded %d%%")

		_, err := percentageWriter.Write(make([]byte, 4))
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.InfoCallCount()).To(Equal(0))

		_, err = percentageWriter.Write(make([]byte, 1))
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.InfoCallCount()).To(Equal(1))

		tag, message, args := logger.InfoArgsForCall(0)
		Expect(tag).To(Equal("fnpack"))
		Expect(message).To(Equal("Uploaded %d%%"))
		Expect(args).To(Equal([]interface{}{5}))

		_, err = percentageWriter.Write(make([]byte, 4))
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.InfoCallCount()).To(Equal(1))

		_, err = percentageWriter.Write(make([]byte, 1))
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.InfoCallCount()).To(Equal(2))

		_, _, args = logger.InfoArgsForCall(1)
		Expect(args).To(Equal([]interface{}{10}))
	})

	It("caps the logged percentage at 100", func() {
		percentageWriter := writer.NewLogPercentageWriter(backingWriter, logger, 10, "fnpack", "Uploaded %d%%")

		_, err := percentageWriter.Write(make([]byte, 11))
		Expect(err).NotTo(HaveOccurred())

		Expect(logger.InfoCallCount()).To(Equal(1))
		_, _, args := logger.InfoArgsForCall(0)
		Expect(args).To(Equal([]interface{}{100}))
	})

	When("the write fails", func() {
		It("returns the error and logs nothing", func() {
			failingWriter := new(fakes.FakeWriter)
			failingWriter.WriteReturns(0, errors.New("disk full"))
			percentageWriter := writer.NewLogPercentageWriter(failingWriter, logger, 100, "fnpack", "Uploaded %d%%")

			_, err := percentageWriter.Write(make([]byte, 50))
			Expect(err).To(MatchError("disk full"))
			Expect(logger.InfoCallCount()).To(Equal(0))
		})
	})
})
