package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"secondbrain/internal/http/handler/middleware"
	"secondbrain/internal/http/handler/middleware/fake"
	"secondbrain/pkg/log"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		auth          *middleware.AuthMiddleware
		fakeValidator *fake.TokenValidator

		recorder *httptest.ResponseRecorder
		request  *http.Request

		nextCalled bool
		nextUserID any
	)

	BeforeEach(func() {
		logger := log.NewZapLogger("test", zapcore.ErrorLevel)
		fakeValidator = new(fake.TokenValidator)
		auth = middleware.NewAuthMiddleware(logger, fakeValidator)

		recorder = httptest.NewRecorder()
		request = httptest.NewRequest(http.MethodGet, "/content", nil)

		nextCalled = false
		nextUserID = nil
	})

	next := func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		nextUserID = r.Context().Value(middleware.UserIDKey)
		w.WriteHeader(http.StatusOK)
	}

	JustBeforeEach(func() {
		auth.Authorize(next)(recorder, request)
	})

	When("the Authorization header is missing", func() {
		It("rejects the request without consulting the validator", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Body.String()).To(ContainSubstring("Token missing. Unauthorized"))
			Expect(fakeValidator.ValidateCallCount()).To(Equal(0))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token does not verify", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "not-a-token")
			fakeValidator.ValidateReturns(nil, errors.New("fake error"))
		})

		It("rejects the request", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Body.String()).To(ContainSubstring("Unauthorized"))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token verifies but carries no subject", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "some-token")
			fakeValidator.ValidateReturns(jwt.MapClaims{"username": "ann@x.com"}, nil)
		})

		It("rejects the request", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the subject claim is empty", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "some-token")
			fakeValidator.ValidateReturns(jwt.MapClaims{"sub": ""}, nil)
		})

		It("rejects the request", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token verifies", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "some-token")
			fakeValidator.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
		})

		It("passes the raw header value to the validator", func() {
			Expect(fakeValidator.ValidateCallCount()).To(Equal(1))
			Expect(fakeValidator.ValidateArgsForCall(0)).To(Equal("some-token"))
		})

		It("runs the handler with the user id in context", func() {
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(nextUserID).To(Equal("user-1"))
		})
	})
})
