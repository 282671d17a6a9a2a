package domain

// PantryItem Model
type PantryItem struct {
	ID         uint   `gorm:"primaryKey"` // Primary key
	UserID     uint   `gorm:"index"`      // Foreign key to the owning User
	Ingredient string // Ingredient text, stored trimmed
}
