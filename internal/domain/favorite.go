package domain

// Favorite Model
type Favorite struct {
	ID     uint   `gorm:"primaryKey"` // Primary key
	UserID uint   `gorm:"index"`      // Foreign key to the owning User
	Title  string // Recipe title
	Link   string // Recipe link
	Image  string // Recipe image URL
}
