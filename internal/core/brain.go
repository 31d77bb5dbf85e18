package core

import (
	"context"
	"errors"
	"fmt"
	"secondbrain/internal/repository"
	tokenIssuer "secondbrain/pkg/jwt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameTaken error = errors.New("username already exists")
var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrShareLinkNotFound error = errors.New("share link not found")

const bcryptCost = 10

// shareTokenAlphabet is the 62-character alphanumeric set share tokens
// are drawn from; shareTokenLength of 10 gives a 62^10 space.
const shareTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const shareTokenLength = 10

// Brain is the application service behind every route: identity,
// content, tags and the public share capability.
type Brain struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
}

func NewBrain(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer) *Brain {
	return &Brain{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Signup registers a new user with a bcrypt-hashed password. The
// username must not be taken.
func (b *Brain) Signup(ctx context.Context, msg SignupMessage) error {
	_, err := b.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user from db: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := b.repo.CreateUser(ctx, msg.Name, msg.Username, string(hashed))
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user signed up", "userId", user.ID, "username", user.Username)
	return nil
}

// Signin checks the credentials against the database and mints a
// signed bearer token carrying the user id.
func (b *Brain) Signin(ctx context.Context, msg SigninMessage) (string, error) {
	user, err := b.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Username:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// AddContent stores a content item for the owner, resolving tag titles
// to tag records first. Repeated identical creates produce distinct
// records.
func (b *Brain) AddContent(ctx context.Context, userID string, msg ContentMessage) error {
	tags, err := b.repo.FindOrCreateTags(ctx, msg.Tags)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}

	content := repository.Content{
		Link:        msg.Link,
		Title:       msg.Title,
		Description: msg.Description,
		UserID:      userID,
		Tags:        tags,
	}

	created, err := b.repo.CreateContent(ctx, content)
	if err != nil {
		return fmt.Errorf("create content: %w", err)
	}

	b.logs.Infow("content created", "contentId", created.ID, "userId", userID, "tags", msg.Tags)
	return nil
}

// ListContent returns the owner's assembled collection view.
func (b *Brain) ListContent(ctx context.Context, userID string) (BrainView, error) {
	return b.assembleBrain(ctx, userID)
}

// RemoveContent deletes the record matching both content id and owner.
// A non-owned or unknown id affects nothing and still succeeds.
func (b *Brain) RemoveContent(ctx context.Context, userID, contentID string) error {
	if err := b.repo.DeleteContent(ctx, contentID, userID); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	b.logs.Infow("content deleted", "contentId", contentID, "userId", userID)
	return nil
}

func (b *Brain) ListTags(ctx context.Context) ([]TagRecord, error) {
	tags, err := b.repo.GetAllTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all tags: %w", err)
	}

	records := make([]TagRecord, len(tags))
	for i, tag := range tags {
		records[i] = TagRecord{
			ID:    tag.ID,
			Title: tag.Title,
		}
	}
	return records, nil
}

// EnableShare returns the owner's public share path, minting a token on
// first use and reusing the live one afterwards.
func (b *Brain) EnableShare(ctx context.Context, userID string) (string, error) {
	link, err := b.repo.GetShareLinkByOwner(ctx, userID)
	if err == nil {
		return sharePath(link.Token), nil
	}
	if !errors.Is(err, repository.ErrShareLinkNotFound) {
		return "", fmt.Errorf("get share link: %w", err)
	}

	token, err := gonanoid.Generate(shareTokenAlphabet, shareTokenLength)
	if err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}

	link, err = b.repo.CreateShareLink(ctx, userID, token)
	if err != nil {
		return "", fmt.Errorf("create share link: %w", err)
	}

	b.logs.Infow("share link created", "userId", userID)
	return sharePath(link.Token), nil
}

// DisableShare revokes the owner's share link; revoking when none is
// live is a no-op success.
func (b *Brain) DisableShare(ctx context.Context, userID string) error {
	if err := b.repo.DeleteShareLinksByOwner(ctx, userID); err != nil {
		return fmt.Errorf("delete share links: %w", err)
	}

	b.logs.Infow("share link removed", "userId", userID)
	return nil
}

// ResolveShare maps a public token to its owner's assembled view. This
// is the unauthenticated capability path; an unknown token yields
// ErrShareLinkNotFound.
func (b *Brain) ResolveShare(ctx context.Context, token string) (BrainView, error) {
	link, err := b.repo.GetShareLinkByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrShareLinkNotFound) {
			return BrainView{}, ErrShareLinkNotFound
		}
		return BrainView{}, fmt.Errorf("get share link by token: %w", err)
	}

	return b.assembleBrain(ctx, link.UserID)
}

// assembleBrain joins content, owner and tags into the response view.
// Both the owner-authenticated and the token paths use it, so the two
// responses stay identical for identical data. A user with no content
// gets their bare profile instead of an empty list.
func (b *Brain) assembleBrain(ctx context.Context, userID string) (BrainView, error) {
	user, err := b.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return BrainView{}, ErrUserNotFound
		}
		return BrainView{}, fmt.Errorf("get user by id: %w", err)
	}

	owner := OwnerRecord{
		Name:     user.Name,
		Username: user.Username,
	}

	contents, err := b.repo.GetContentByOwner(ctx, userID)
	if err != nil {
		return BrainView{}, fmt.Errorf("get content by owner: %w", err)
	}

	if len(contents) == 0 {
		return BrainView{Profile: &owner}, nil
	}

	records := make([]ContentRecord, len(contents))
	for i, content := range contents {
		titles := make([]string, len(content.Tags))
		for j, tag := range content.Tags {
			titles[j] = tag.Title
		}
		records[i] = ContentRecord{
			ID:          content.ID,
			Link:        content.Link,
			Title:       content.Title,
			Description: content.Description,
			Tags:        titles,
			Owner:       owner,
		}
	}

	return BrainView{Content: records}, nil
}

func sharePath(token string) string {
	return "/brain/" + token
}
