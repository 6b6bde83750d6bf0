package entity

// Categorías de producto (enumeración fija).
const (
	CategoryFashion     = "fashion"
	CategoryElectronics = "electronics"
	CategoryFood        = "food"
	CategoryBeauty      = "beauty"
	CategoryHealth      = "health"
	CategoryHome        = "home"
	CategoryBooks       = "books"
	CategorySports      = "sports"
	CategoryAutomobile  = "automobile"
	CategoryOthers      = "others"
)

var categories = map[string]string{
	CategoryFashion:     "Fashion",
	CategoryElectronics: "Electronics",
	CategoryFood:        "Food",
	CategoryBeauty:      "Beauty",
	CategoryHealth:      "Health",
	CategoryHome:        "Home",
	CategoryBooks:       "Books",
	CategorySports:      "Sports",
	CategoryAutomobile:  "Automobile",
	CategoryOthers:      "Others",
}

// ValidCategory indica si el valor pertenece a la enumeración.
func ValidCategory(c string) bool {
	_, ok := categories[c]
	return ok
}

// CategoryLabel etiqueta legible de la categoría ("" si no existe).
func CategoryLabel(c string) string {
	return categories[c]
}
