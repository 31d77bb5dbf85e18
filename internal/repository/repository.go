package repository

import (
	"context"
	"errors"
	"fmt"
	"secondbrain/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrShareLinkNotFound error = errors.New("share link not found")

type BrainRepository struct {
	db Storage
}

func NewBrainRepository(db Storage) *BrainRepository {
	return &BrainRepository{
		db: db,
	}
}

func (r *BrainRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Tag{}, &Content{}, &ShareLink{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BrainRepository) CreateUser(ctx context.Context, name, username, passwordHash string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := r.db.CreateRecord(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *BrainRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BrainRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", userID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// FindOrCreateTags resolves tag titles to Tag records, inserting the
// ones that do not exist yet. Titles are a natural dedup key.
func (r *BrainRepository) FindOrCreateTags(ctx context.Context, titles []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(titles))
	for _, title := range titles {
		tag := Tag{
			ID:    uuid.NewString(),
			Title: title,
		}
		if err := r.db.FirstOrCreateBy(ctx, "title", title, &tag); err != nil {
			return nil, fmt.Errorf("find or create tag %q: %w", title, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (r *BrainRepository) CreateContent(ctx context.Context, content Content) (Content, error) {
	content.ID = uuid.NewString()

	if err := r.db.CreateRecord(ctx, &content); err != nil {
		return Content{}, fmt.Errorf("create content: %w", err)
	}

	return content, nil
}

func (r *BrainRepository) GetContentByOwner(ctx context.Context, userID string) ([]Content, error) {
	contents := []Content{}
	err := r.db.GetAllBy(ctx, "user_id", userID, &contents, "Tags")
	if err != nil {
		return nil, fmt.Errorf("get content by owner: %w", err)
	}

	return contents, nil
}

// DeleteContent removes the record matching both the content id and the
// owning user. A non-matching pair affects zero rows and is a no-op.
func (r *BrainRepository) DeleteContent(ctx context.Context, contentID, userID string) error {
	err := r.db.DeleteWhere(ctx, &Content{}, map[string]any{
		"id":      contentID,
		"user_id": userID,
	})
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	return nil
}

func (r *BrainRepository) GetAllTags(ctx context.Context) ([]Tag, error) {
	tags := []Tag{}
	err := r.db.GetAllBy(ctx, "", nil, &tags)
	if err != nil {
		return nil, fmt.Errorf("get all tags: %w", err)
	}

	return tags, nil
}

func (r *BrainRepository) GetShareLinkByOwner(ctx context.Context, userID string) (ShareLink, error) {
	var link ShareLink

	err := r.db.GetOneBy(ctx, "user_id", userID, &link)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ShareLink{}, ErrShareLinkNotFound
		}
		return ShareLink{}, fmt.Errorf("get share link by owner: %w", err)
	}

	return link, nil
}

func (r *BrainRepository) GetShareLinkByToken(ctx context.Context, token string) (ShareLink, error) {
	var link ShareLink

	err := r.db.GetOneBy(ctx, "token", token, &link)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ShareLink{}, ErrShareLinkNotFound
		}
		return ShareLink{}, fmt.Errorf("get share link by token: %w", err)
	}

	return link, nil
}

func (r *BrainRepository) CreateShareLink(ctx context.Context, userID, token string) (ShareLink, error) {
	link := ShareLink{
		ID:     uuid.NewString(),
		Token:  token,
		UserID: userID,
	}

	if err := r.db.CreateRecord(ctx, &link); err != nil {
		return ShareLink{}, fmt.Errorf("create share link: %w", err)
	}

	return link, nil
}

// DeleteShareLinksByOwner revokes the owner's share link. Deleting when
// none exists is a no-op success.
func (r *BrainRepository) DeleteShareLinksByOwner(ctx context.Context, userID string) error {
	err := r.db.DeleteWhere(ctx, &ShareLink{}, map[string]any{
		"user_id": userID,
	})
	if err != nil {
		return fmt.Errorf("delete share links: %w", err)
	}

	return nil
}
