package orderer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
	"github.com/visual-utils/lambda-deploy-and-promote/orderer"
)

var _ = Describe("KahnDeployOrderer", func() {
	var kahnOrderer = orderer.NewKahnDeployOrderer()

	environment := func(name string, dependsOn ...string) orchestrator.Environment {
		return orchestrator.Environment{Name: name, Region: "eu-west-1", DependsOn: dependsOn}
	}

	It("stages a dependent environment after its dependency", func() {
		dev := environment("dev")
		prod := environment("prod", "dev")

		stages, err := kahnOrderer.Order([]orchestrator.Environment{dev, prod})

		Expect(err).NotTo(HaveOccurred())
		Expect(stages).To(Equal([][]orchestrator.Environment{{dev}, {prod}}))
	})

	It("orders by dependency regardless of declaration order", func() {
		dev := environment("dev")
		prod := environment("prod", "dev")

		stages, err := kahnOrderer.Order([]orchestrator.Environment{prod, dev})

		Expect(err).NotTo(HaveOccurred())
		Expect(stages).To(Equal([][]orchestrator.Environment{{dev}, {prod}}))
	})

	It("shares a stage between independent environments, preserving declaration order", func() {
		devEU := environment("dev-eu")
		devUS := environment("dev-us")
		prod := environment("prod", "dev-eu", "dev-us")

		stages, err := kahnOrderer.Order([]orchestrator.Environment{devEU, devUS, prod})

		Expect(err).NotTo(HaveOccurred())
		Expect(stages).To(Equal([][]orchestrator.Environment{{devEU, devUS}, {prod}}))
	})

	It("handles a diamond of dependencies", func() {
		dev := environment("dev")
		stagingA := environment("staging-a", "dev")
		stagingB := environment("staging-b", "dev")
		prod := environment("prod", "staging-a", "staging-b")

		stages, err := kahnOrderer.Order([]orchestrator.Environment{dev, stagingA, stagingB, prod})

		Expect(err).NotTo(HaveOccurred())
		Expect(stages).To(Equal([][]orchestrator.Environment{{dev}, {stagingA, stagingB}, {prod}}))
	})

	It("is deterministic across repeated runs", func() {
		environments := []orchestrator.Environment{
			environment("one"),
			environment("two"),
			environment("three", "one", "two"),
		}

		first, err := kahnOrderer.Order(environments)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 10; i++ {
			again, err := kahnOrderer.Order(environments)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(first))
		}
	})

	It("rejects a dependency cycle, naming its members", func() {
		dev := environment("dev", "prod")
		prod := environment("prod", "dev")

		_, err := kahnOrderer.Order([]orchestrator.Environment{dev, prod})

		Expect(err).To(MatchError("dependency cycle involving environments: dev, prod"))
	})

	It("rejects a dependency on an undeclared environment", func() {
		prod := environment("prod", "staging")

		_, err := kahnOrderer.Order([]orchestrator.Environment{prod})

		Expect(err).To(MatchError("environment 'prod' depends on unknown environment 'staging'"))
	})

	It("rejects an environment depending on itself", func() {
		dev := environment("dev", "dev")

		_, err := kahnOrderer.Order([]orchestrator.Environment{dev})

		Expect(err).To(MatchError("environment 'dev' depends on itself"))
	})

	It("rejects duplicate environment names", func() {
		_, err := kahnOrderer.Order([]orchestrator.Environment{environment("dev"), environment("dev")})

		Expect(err).To(MatchError("environment 'dev' is declared more than once"))
	})

	It("puts every environment in one stage when nothing depends on anything", func() {
		one := environment("one")
		two := environment("two")

		stages, err := kahnOrderer.Order([]orchestrator.Environment{one, two})

		Expect(err).NotTo(HaveOccurred())
		Expect(stages).To(Equal([][]orchestrator.Environment{{one, two}}))
	})
})
