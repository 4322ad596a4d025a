package entity

// Category and Location are static reference data managed outside this API.

type Category struct {
	CategoryID   int64  `db:"category_id"`
	CategoryName string `db:"category_name"`
}

type Location struct {
	LocationID   int64  `db:"location_id"`
	LocationName string `db:"location_name"`
}
