package repository

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Name         string `gorm:"type:varchar(255);not null"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Content struct {
	ID          string `gorm:"primaryKey;autoIncrement:false"`
	Link        string `gorm:"type:text;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	UserID      string `gorm:"not null;index"`
	Tags        []Tag  `gorm:"many2many:content_tags"`
}

type Tag struct {
	ID    string `gorm:"primaryKey;autoIncrement:false"`
	Title string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

// ShareLink maps an opaque public token to its owner. The unique index
// on UserID keeps two racing enable requests from minting two live
// tokens for the same owner.
type ShareLink struct {
	ID     string `gorm:"primaryKey;autoIncrement:false"`
	Token  string `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID string `gorm:"uniqueIndex;not null"`
}
