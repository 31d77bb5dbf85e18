package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"secondbrain/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var validator payload.DecodeValidator

	decode := func(body string, object any) error {
		request := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
		return validator.DecodeJSONPayload(request, object)
	}

	It("decodes and validates a well formed payload", func() {
		var request payload.SignupRequest
		body := `{"name":"Ann","username":"ann@example.com","password":"Sup3rSecret!?"}`

		Expect(decode(body, &request)).To(Succeed())
		Expect(request.Username).To(Equal("ann@example.com"))
	})

	It("rejects payloads with unknown fields", func() {
		var request payload.SigninRequest
		body := `{"username":"ann@example.com","password":"pass","admin":true}`

		err := decode(body, &request)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("decoding json payload"))
	})

	It("returns rule errors unwrapped so their message is client facing", func() {
		var request payload.SignupRequest
		body := `{"name":"Ann","username":"ann@example.com","password":"short"}`

		err := decode(body, &request)
		Expect(err).To(MatchError("Password must be at least 8 characters long"))
	})

	It("skips validation for objects without rules", func() {
		var object struct {
			Share bool `json:"share"`
		}

		Expect(decode(`{"share":true}`, &object)).To(Succeed())
		Expect(object.Share).To(BeTrue())
	})
})
