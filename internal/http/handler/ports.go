package handler

import (
	"context"
	"net/http"
	"secondbrain/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BrainService . BrainService
type BrainService interface {
	Signup(ctx context.Context, msg core.SignupMessage) error
	Signin(ctx context.Context, msg core.SigninMessage) (string, error)
	AddContent(ctx context.Context, userID string, msg core.ContentMessage) error
	ListContent(ctx context.Context, userID string) (core.BrainView, error)
	RemoveContent(ctx context.Context, userID, contentID string) error
	ListTags(ctx context.Context) ([]core.TagRecord, error)
	EnableShare(ctx context.Context, userID string) (string, error)
	DisableShare(ctx context.Context, userID string) error
	ResolveShare(ctx context.Context, token string) (core.BrainView, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
