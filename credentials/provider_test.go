package credentials_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

var _ = Describe("NewProvider", func() {
	When("no role is configured", func() {
		It("serves the static credential pair", func() {
			provider := credentials.NewProvider(credentials.Credentials{
				AccessKeyID:     "AKIASTATIC",
				SecretAccessKey: "staticsecret",
			}, "", "eu-west-1")

			retrieved, err := provider.Retrieve(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.AccessKeyID).To(Equal("AKIASTATIC"))
			Expect(retrieved.SecretAccessKey).To(Equal("staticsecret"))
		})
	})
})
