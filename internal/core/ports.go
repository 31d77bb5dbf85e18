package core

import (
	"context"
	"secondbrain/internal/repository"
	tokenIssuer "secondbrain/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, name, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	FindOrCreateTags(ctx context.Context, titles []string) ([]repository.Tag, error)
	CreateContent(ctx context.Context, content repository.Content) (repository.Content, error)
	GetContentByOwner(ctx context.Context, userID string) ([]repository.Content, error)
	DeleteContent(ctx context.Context, contentID, userID string) error
	GetAllTags(ctx context.Context) ([]repository.Tag, error)
	GetShareLinkByOwner(ctx context.Context, userID string) (repository.ShareLink, error)
	GetShareLinkByToken(ctx context.Context, token string) (repository.ShareLink, error)
	CreateShareLink(ctx context.Context, userID, token string) (repository.ShareLink, error)
	DeleteShareLinksByOwner(ctx context.Context, userID string) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
