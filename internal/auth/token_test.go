package auth

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/adminrec/personnel-management/internal"
)

var _ = ginkgo.Describe("JWTTokenService", func() {
	var (
		service *JWTTokenService
		secret  = "test-secret-at-least-32-characters!!"
		ttl     = time.Hour
	)

	ginkgo.BeforeEach(func() {
		service = NewJWTTokenService(secret, ttl)
	})

	ginkgo.Describe("Issue and Validate", func() {
		ginkgo.It("should round-trip subject and claims", func() {
			token, err := service.Issue("30111222", ClaimSet{
				Role:         "SUPERVISOR",
				EmployeeName: "Garcia, Laura",
				EmployeeDNI:  "30111222",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := service.Validate(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.Subject).To(gomega.Equal("30111222"))
			gomega.Expect(claims.Role).To(gomega.Equal("SUPERVISOR"))
			gomega.Expect(claims.EmployeeName).To(gomega.Equal("Garcia, Laura"))
			gomega.Expect(claims.EmployeeDNI).To(gomega.Equal("30111222"))
		})

		ginkgo.It("should stamp expiry at issuance plus the fixed TTL", func() {
			issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			service.WithClock(func() time.Time { return issuedAt })

			token, err := service.Issue("30111222", ClaimSet{Role: "EMPLOYEE"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := service.Validate(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.ExpiresAt.Time).To(gomega.Equal(issuedAt.Add(ttl)))
		})

		ginkgo.It("should reject an expired token", func() {
			issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			service.WithClock(func() time.Time { return issuedAt })

			token, err := service.Issue("30111222", ClaimSet{Role: "EMPLOYEE"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			service.WithClock(func() time.Time { return issuedAt.Add(ttl + time.Minute) })

			_, err = service.Validate(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrTokenExpired))
		})

		ginkgo.It("should reject a token signed with a different secret", func() {
			other := NewJWTTokenService("another-secret-also-32-characters!!!", ttl)
			token, err := other.Issue("30111222", ClaimSet{Role: "EMPLOYEE"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Validate(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := service.Validate("not.a.token")
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})
	})

	ginkgo.Describe("ExtractClaim", func() {
		ginkgo.It("should read individual claims by key", func() {
			token, _ := service.Issue("30111222", ClaimSet{
				Role:         "ADMIN",
				EmployeeName: "Suarez, Ana",
				EmployeeDNI:  "27555444",
			})
			claims, err := service.Validate(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(ExtractClaim(claims, ClaimRole)).To(gomega.Equal("ADMIN"))
			gomega.Expect(ExtractClaim(claims, ClaimEmployeeName)).To(gomega.Equal("Suarez, Ana"))
			gomega.Expect(ExtractClaim(claims, ClaimEmployeeDNI)).To(gomega.Equal("27555444"))
			gomega.Expect(ExtractClaim(claims, "sub")).To(gomega.Equal("30111222"))
			gomega.Expect(ExtractClaim(claims, "unknown")).To(gomega.BeEmpty())
			gomega.Expect(ExtractClaim(nil, ClaimRole)).To(gomega.BeEmpty())
		})
	})
})
