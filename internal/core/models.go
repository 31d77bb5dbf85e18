package core

type SignupMessage struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ContentMessage struct {
	Link        string   `json:"link"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

type OwnerRecord struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ContentRecord struct {
	ID          string      `json:"id"`
	Link        string      `json:"link"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags"`
	Owner       OwnerRecord `json:"owner"`
}

type TagRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// BrainView is the assembled read view of one user's collection.
// Profile is set instead of Content when the user has no content yet;
// the owner and shared paths both return this shape unchanged.
type BrainView struct {
	Content []ContentRecord
	Profile *OwnerRecord
}
