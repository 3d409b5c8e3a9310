package models

// User represents a marketplace account
type User struct {
	ID             uint    `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	Name           string  `gorm:"column:name;not null" json:"name"`
	Email          string  `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash   string  `gorm:"column:password_hash;not null" json:"-"`
	Location       string  `gorm:"column:location" json:"location"`
	ProfilePicture *string `gorm:"column:profile_picture" json:"profile_picture,omitempty"`

	// Relationships
	Listings []Listing `gorm:"foreignKey:SellerID" json:"listings,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// PicturePath returns the stored profile picture path or an empty string
func (u *User) PicturePath() string {
	if u.ProfilePicture == nil {
		return ""
	}
	return *u.ProfilePicture
}
