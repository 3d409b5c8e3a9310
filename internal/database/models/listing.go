package models

// Listing represents a single classified advertisement
type Listing struct {
	ID          uint    `gorm:"column:listing_id;primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description string  `gorm:"column:description" json:"description"`
	Price       float64 `gorm:"column:price;not null" json:"price"`
	Category    string  `gorm:"column:category" json:"category"`
	SellerID    uint    `gorm:"column:seller_id;not null;index" json:"seller_id"`
	Location    string  `gorm:"column:location" json:"location"`
	ImagePath   string  `gorm:"column:image_path" json:"image_path,omitempty"`

	// Relationships
	Seller User `gorm:"foreignKey:SellerID;references:ID" json:"seller,omitempty"`
}

// TableName overrides the table name
func (Listing) TableName() string {
	return "listings"
}
