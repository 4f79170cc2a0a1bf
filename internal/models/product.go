package models

// Product represents an item available in the store catalog.
// The ID is an opaque string key (a 24-hex ObjectID when backed by MongoDB)
// and is always serialized as a string.
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ShortDescription string  `json:"short_description"`
	FullDescription  string  `json:"full_description"`
	Category         string  `json:"category"`
	Units            int     `json:"units"`
	Image            string  `json:"img"`
}
