package models

// Gender is the closed set of storefront sections.
type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
	GenderKids  Gender = "kids"
)

func (g Gender) Valid() bool {
	return g == GenderMen || g == GenderWomen || g == GenderKids
}

// Category groups products within a storefront section. The (name, gender)
// pair is unique.
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null;uniqueIndex:idx_categories_name_gender" json:"name"`
	Gender Gender `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_name_gender" json:"gender"`
}
