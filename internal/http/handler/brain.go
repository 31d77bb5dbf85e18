package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"secondbrain/internal/core"
	"secondbrain/internal/http/handler/middleware"
	"secondbrain/internal/http/payload"
	"strings"

	"go.uber.org/zap"
)

var (
	Signup         = "POST /signup"
	Signin         = "POST /signin"
	CreateContent  = "POST /content"
	GetContent     = "GET /content"
	GetTags        = "GET /content/tags"
	DeleteContent  = "DELETE /content"
	ShareBrain     = "POST /brain/share"
	GetSharedBrain = "GET /brain/{shareLink}"
)

// StatusInvalidInput is what the wire contract uses for failed signup
// validation. It collides with 411 Length Required but is preserved
// as-is.
const StatusInvalidInput = 411

type BrainHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	brain            BrainService
}

func NewBrainHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, brainService BrainService) *BrainHandler {
	return &BrainHandler{
		logs:             logger,
		requestValidator: requestValidator,
		brain:            brainService,
	}
}

func (h *BrainHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	var signupReq payload.SignupRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &signupReq); err != nil {
		h.respond(w, Response{
			Message: "Error in inputs",
			Error:   err.Error(),
		}, StatusInvalidInput,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	err := h.brain.Signup(r.Context(), signupReq.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.respond(w, Response{
				Message: "Username already exists",
			}, http.StatusForbidden, requestId)
			return
		}

		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Signed up successfully",
	}, http.StatusOK, requestId)
}

func (h *BrainHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	var signinReq payload.SigninRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &signinReq); err != nil {
		h.respond(w, Response{
			Message: "Could not sign in",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signin,
			"request_id", requestId)
		return
	}

	token, err := h.brain.Signin(r.Context(), signinReq.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, Response{
				Message: "User doesn't exist",
			}, http.StatusForbidden, requestId)
			return
		}
		if errors.Is(err, core.ErrIncorrectPassword) {
			h.respond(w, Response{
				Message: "Password doesnt match with the username",
			}, http.StatusForbidden, requestId)
			return
		}

		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("signin failed",
			"error", err,
			"handler", Signin,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{
		"token": token,
	}, http.StatusOK, requestId)
}

func (h *BrainHandler) HandleCreateContent(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)
	userId := userIDFromContext(r)

	var contentReq payload.CreateContentRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &contentReq); err != nil {
		h.respond(w, Response{
			Message: "Could not create content",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateContent,
			"request_id", requestId)
		return
	}

	if err := h.brain.AddContent(r.Context(), userId, contentReq.ToMessage()); err != nil {
		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create content",
			"error", err,
			"handler", CreateContent,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Content created successfully",
	}, http.StatusOK, requestId)
}

func (h *BrainHandler) HandleGetContent(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)
	userId := userIDFromContext(r)

	view, err := h.brain.ListContent(r.Context(), userId)
	if err != nil {
		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list content",
			"error", err,
			"handler", GetContent,
			"request_id", requestId)
		return
	}

	h.respond(w, brainViewPayload(view), http.StatusOK, requestId)
}

func (h *BrainHandler) HandleGetTags(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	tags, err := h.brain.ListTags(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list tags",
			"error", err,
			"handler", GetTags,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.TagRecord{
		"tags": tags,
	}, http.StatusOK, requestId)
}

func (h *BrainHandler) HandleDeleteContent(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)
	userId := userIDFromContext(r)

	var deleteReq payload.DeleteContentRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &deleteReq); err != nil {
		h.respond(w, Response{
			Message: "Could not delete content",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DeleteContent,
			"request_id", requestId)
		return
	}

	if err := h.brain.RemoveContent(r.Context(), userId, deleteReq.ID); err != nil {
		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete content",
			"error", err,
			"handler", DeleteContent,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Content Deleted",
	}, http.StatusOK, requestId)
}

func (h *BrainHandler) HandleShareBrain(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)
	userId := userIDFromContext(r)

	var shareReq payload.ShareRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &shareReq); err != nil {
		h.respond(w, Response{
			Message: "Could not update sharing",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", ShareBrain,
			"request_id", requestId)
		return
	}

	if !shareReq.Share {
		if err := h.brain.DisableShare(r.Context(), userId); err != nil {
			h.respond(w, Response{
				Message: "Internal server error",
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to remove share link",
				"error", err,
				"handler", ShareBrain,
				"request_id", requestId)
			return
		}

		h.respond(w, Response{
			Message: "Share link removed",
		}, http.StatusOK, requestId)
		return
	}

	link, err := h.brain.EnableShare(r.Context(), userId)
	if err != nil {
		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create share link",
			"error", err,
			"handler", ShareBrain,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{
		"link": link,
	}, http.StatusOK, requestId)
}

func (h *BrainHandler) HandleGetSharedBrain(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	token := strings.TrimPrefix(r.URL.Path, "/brain/")
	if token == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "share link parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing shareLink parameter",
			"handler", GetSharedBrain,
			"request_id", requestId)
		return
	}

	view, err := h.brain.ResolveShare(r.Context(), token)
	if err != nil {
		if errors.Is(err, core.ErrShareLinkNotFound) {
			h.respond(w, Response{
				Message: "Share link not found",
			}, http.StatusNotFound, requestId)
			return
		}

		h.respond(w, Response{
			Message: "Internal server error",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to resolve share link",
			"error", err,
			"handler", GetSharedBrain,
			"request_id", requestId)
		return
	}

	h.respond(w, brainViewPayload(view), http.StatusOK, requestId)
}

// brainViewPayload serializes the assembled view: a content list, or
// the bare profile when the owner has nothing stored yet. Both the
// owner route and the shared route go through here so the shapes never
// drift apart.
func brainViewPayload(view core.BrainView) any {
	if view.Profile != nil {
		return map[string]any{
			"content": view.Profile,
		}
	}
	return map[string]any{
		"content": view.Content,
	}
}

func requestIDFromContext(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func userIDFromContext(r *http.Request) string {
	if userIdCtx := r.Context().Value(middleware.UserIDKey); userIdCtx != nil {
		return userIdCtx.(string)
	}
	return ""
}

func (h *BrainHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
