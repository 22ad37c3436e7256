package catalog

// Product is one catalog entry as published in the sheet export.
// Price stays a display string; it is never interpreted as currency.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Category string   `json:"category"`
	Note     string   `json:"note"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Gallery  []string `json:"gallery"`
}

// Store is the full in-memory catalog. A load replaces it wholesale; it is
// never mutated in place.
type Store struct {
	Categories []string  `json:"categories"`
	Tags       []string  `json:"tags"`
	Products   []Product `json:"products"`
}

// Fallback returns the static catalog served whenever the remote sheet is
// unconfigured, unreachable or yields no usable products.
func Fallback() Store {
	return Store{
		Categories: []string{"Свещи", "Китки"},
		Tags:       []string{"14 Февруари", "Рожден ден", "Кръщене"},
		Products: []Product{
			{
				ID:       1,
				Name:     "Свещ - Ванилия и бял чай",
				Price:    "24 лв.",
				Category: "Свещи",
				Note:     "Създадена за уютни вечери",
				Image:    "images/candle-vanilla.svg",
				Tags:     []string{"14 Февруари"},
				Gallery:  []string{},
			},
		},
	}
}
