package payload_test

import (
	"secondbrain/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SignupRequest", func() {
	var request payload.SignupRequest

	BeforeEach(func() {
		request = payload.SignupRequest{
			Name:     "Ann",
			Username: "ann@example.com",
			Password: "Sup3rSecret!?",
		}
	})

	It("accepts a well formed request", func() {
		Expect(request.Validate()).To(Succeed())
	})

	It("requires a name", func() {
		request.Name = ""
		Expect(request.Validate()).To(MatchError("cannot be blank"))
	})

	It("requires the username to be an email address", func() {
		request.Username = "not-an-email"
		Expect(request.Validate()).To(MatchError("Enter a valid email"))
	})

	DescribeTable("password rules",
		func(password, message string) {
			request.Password = password
			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal(message))
		},
		Entry("too short", "Ab1?", "Password must be at least 8 characters long"),
		Entry("too long", "Abcdefg1?Abcdefg1?Abc", "Password must be at most 20 characters long"),
		Entry("no uppercase", "abcdefg1?", "Password must contain at least one uppercase letter"),
		Entry("no lowercase", "ABCDEFG1?", "Password must contain at least one lowercase letter"),
		Entry("no digit", "Abcdefgh?", "Password must contain at least one number"),
		Entry("no special character", "Abcdefgh1", "Must contain at least one special character (@$!%*?&)"),
	)

	It("reports only the first violated rule", func() {
		// short and missing a digit, length is checked first
		request.Password = "Abc?"
		Expect(request.Validate()).To(MatchError("Password must be at least 8 characters long"))
	})

	It("maps onto the signup message", func() {
		msg := request.ToMessage()
		Expect(msg.Name).To(Equal("Ann"))
		Expect(msg.Username).To(Equal("ann@example.com"))
		Expect(msg.Password).To(Equal("Sup3rSecret!?"))
	})
})

var _ = Describe("SigninRequest", func() {
	It("accepts a request with both credentials", func() {
		request := payload.SigninRequest{Username: "ann@example.com", Password: "pass"}
		Expect(request.Validate()).To(Succeed())
	})

	It("rejects missing credentials", func() {
		request := payload.SigninRequest{Username: "ann@example.com"}
		Expect(request.Validate()).To(HaveOccurred())
	})
})
