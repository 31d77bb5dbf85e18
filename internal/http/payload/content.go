package payload

import (
	"secondbrain/internal/core"

	"github.com/jellydator/validation"
)

type CreateContentRequest struct {
	Link        string   `json:"link"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (c CreateContentRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Link, validation.Required),
		validation.Field(&c.Title, validation.Required),
	)
}

func (c CreateContentRequest) ToMessage() core.ContentMessage {
	return core.ContentMessage{
		Link:        c.Link,
		Title:       c.Title,
		Description: c.Description,
		Tags:        c.Tags,
	}
}

type DeleteContentRequest struct {
	ID string `json:"id"`
}

func (d DeleteContentRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
	)
}

// ShareRequest toggles the public share link. Share true enables (or
// returns the live link), false revokes it.
type ShareRequest struct {
	Share bool `json:"share"`
}
