package jwt_test

import (
	"time"

	jwtpkg "secondbrain/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwtpkg.JWTService
		info    jwtpkg.TokenInfo
	)

	BeforeEach(func() {
		service = jwtpkg.NewJWTService([]byte("a-signing-secret"))
		info = jwtpkg.TokenInfo{
			Username:   "ann@example.com",
			Subject:    "user-1",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		jwtpkg.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("embeds the subject, username and expiry claims", func() {
			issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			jwtpkg.TimeNow = func() time.Time { return issuedAt }

			token := service.Generate(info)
			Expect(token.Method).To(Equal(gojwt.SigningMethodHS512))

			claims, ok := token.Claims.(gojwt.MapClaims)
			Expect(ok).To(BeTrue())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["username"]).To(Equal("ann@example.com"))
			Expect(claims["iat"]).To(Equal(issuedAt.Unix()))
			Expect(claims["exp"]).To(Equal(issuedAt.Add(24 * time.Hour).Unix()))
		})
	})

	Describe("Sign and Validate", func() {
		It("round trips a freshly issued token", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["username"]).To(Equal("ann@example.com"))
		})

		It("rejects a token signed with a different secret", func() {
			other := jwtpkg.NewJWTService([]byte("some-other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(jwtpkg.ErrTokenNotValid))
		})

		It("rejects a malformed token", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(jwtpkg.ErrTokenNotValid))
		})

		It("rejects a token whose expiry has passed", func() {
			jwtpkg.TimeNow = func() time.Time { return time.Now().Add(-48 * time.Hour) }
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			jwtpkg.TimeNow = time.Now
			_, err = service.Validate(signed)
			Expect(err).To(HaveOccurred())
		})
	})
})
