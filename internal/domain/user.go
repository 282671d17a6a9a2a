package domain

// User Model
type User struct {
	ID        uint         `gorm:"primaryKey"`                   // Primary key
	Username  string       `gorm:"unique;not null"`              // Unique username (case-sensitive exact match)
	Password  string       `gorm:"not null"`                     // Hashed password, never the plaintext
	Pantry    []PantryItem `gorm:"constraint:OnDelete:CASCADE;"` // Ingredients owned by this user
	Favorites []Favorite   `gorm:"constraint:OnDelete:CASCADE;"` // Saved recipes owned by this user
}
