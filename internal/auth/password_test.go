package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Password hashing", func() {
	ginkgo.Describe("GenerateSalt", func() {
		ginkgo.It("should produce 16 random bytes as lowercase hex", func() {
			salt, err := GenerateSalt()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(salt).To(gomega.HaveLen(32))
			gomega.Expect(salt).To(gomega.MatchRegexp(`^[0-9a-f]{32}$`))
		})

		ginkgo.It("should not repeat", func() {
			a, err := GenerateSalt()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			b, err := GenerateSalt()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(a).NotTo(gomega.Equal(b))
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("should be deterministic for the same salt and password", func() {
			gomega.Expect(HashPassword("aabb", "secret1")).To(gomega.Equal(HashPassword("aabb", "secret1")))
		})

		ginkgo.It("should change with the salt", func() {
			gomega.Expect(HashPassword("aabb", "secret1")).NotTo(gomega.Equal(HashPassword("ccdd", "secret1")))
		})

		ginkgo.It("should produce a lowercase hex SHA-256 digest", func() {
			digest := HashPassword("aabb", "secret1")
			gomega.Expect(digest).To(gomega.MatchRegexp(`^[0-9a-f]{64}$`))
		})
	})

	ginkgo.Describe("VerifyPassword", func() {
		ginkgo.It("should accept the original password and nothing else", func() {
			salt, err := GenerateSalt()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			digest := HashPassword(salt, "secret1")

			gomega.Expect(VerifyPassword(salt, digest, "secret1")).To(gomega.BeTrue())
			gomega.Expect(VerifyPassword(salt, digest, "secret2")).To(gomega.BeFalse())
			gomega.Expect(VerifyPassword(salt, digest, "")).To(gomega.BeFalse())
		})
	})
})
