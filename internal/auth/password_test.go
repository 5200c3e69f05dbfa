package auth

import (
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/adminrec/personnel-management/internal"
)

var _ = ginkgo.Describe("Password hashing", func() {
	cfg := internal.DefaultArgon2()

	ginkgo.It("should verify the password it hashed", func() {
		hash, err := HashPassword("cambiame123", cfg)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(hash).To(gomega.HavePrefix("$argon2id$v=19$m=4096,t=1,p=4$"))
		gomega.Expect(VerifyPassword(hash, "cambiame123")).To(gomega.Succeed())
	})

	ginkgo.It("should reject a wrong password", func() {
		hash, err := HashPassword("cambiame123", cfg)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(VerifyPassword(hash, "otra_clave")).ToNot(gomega.Succeed())
	})

	ginkgo.It("should salt every hash", func() {
		first, err := HashPassword("cambiame123", cfg)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		second, err := HashPassword("cambiame123", cfg)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(first).ToNot(gomega.Equal(second))
	})

	ginkgo.It("should verify against parameters embedded in the hash, not the config", func() {
		small := internal.Argon2Config{Memory: 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32}
		hash, err := HashPassword("cambiame123", small)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(VerifyPassword(hash, "cambiame123")).To(gomega.Succeed())
	})

	ginkgo.It("should flag malformed hashes as format errors", func() {
		gomega.Expect(VerifyPassword("not-a-hash", "x")).To(gomega.MatchError(ErrHashFormat))
		gomega.Expect(VerifyPassword("$bcrypt$v=19$m=4096,t=1,p=4$a$b", "x")).To(gomega.MatchError(ErrHashFormat))

		hash, _ := HashPassword("cambiame123", cfg)
		truncated := hash[:strings.LastIndex(hash, "$")]
		gomega.Expect(VerifyPassword(truncated, "cambiame123")).To(gomega.MatchError(ErrHashFormat))
	})
})
