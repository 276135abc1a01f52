package db

import "time"

// User is the users table. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:50;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is the items table.
type Item struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null;index"`
	Description *string `gorm:"type:text"`
	Category    *string `gorm:"size:100;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Review is the reviews table. A user may review an item at most once.
type Review struct {
	ID        uint   `gorm:"primaryKey"`
	Rating    int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_reviews_user_item,priority:1"`
	ItemID    uint   `gorm:"not null;index;uniqueIndex:idx_reviews_user_item,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User     User      `gorm:"constraint:OnDelete:CASCADE"`
	Item     Item      `gorm:"constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE"`
}

// Comment is the comments table.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;index"`
	ReviewID  uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// RevokedToken records a logged-out token until its natural expiry.
// Only used when Redis is not configured.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// Models lists every table in dependency order for AutoMigrate.
func Models() []any {
	return []any{&User{}, &Item{}, &Review{}, &Comment{}, &RevokedToken{}}
}
