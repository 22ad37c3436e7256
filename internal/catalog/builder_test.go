package catalog

import (
	"reflect"
	"testing"
)

func TestBuildProductsDropsOnlyInvalidRows(t *testing.T) {
	rows := []Row{
		{"name": "A", "category": "X"},
		{"name": "", "category": "Y"},
		{"name": "B", "category": ""},
	}

	products := BuildProducts(rows, DefaultAliases())

	if len(products) != 1 {
		t.Fatalf("products = %d, want 1", len(products))
	}
	if products[0].Name != "A" || products[0].Category != "X" {
		t.Fatalf("survivor = %+v", products[0])
	}
}

func TestBuildProductsLocalizedAliases(t *testing.T) {
	rows := []Row{{
		"име":       "Свещ",
		"категория": "Свещи",
		"цена":      "24 лв.",
		"описание":  "уютна",
		"снимка":    "candle.svg",
		"тагове":    "Рожден ден | Кръщене",
		"галерия":   "g1.svg|g2.svg",
	}}

	products := BuildProducts(rows, DefaultAliases())

	if len(products) != 1 {
		t.Fatalf("products = %d, want 1", len(products))
	}
	p := products[0]
	if p.Name != "Свещ" || p.Category != "Свещи" || p.Price != "24 лв." {
		t.Fatalf("product = %+v", p)
	}
	if !reflect.DeepEqual(p.Tags, []string{"Рожден ден", "Кръщене"}) {
		t.Fatalf("tags = %v", p.Tags)
	}
	if !reflect.DeepEqual(p.Gallery, []string{"g1.svg", "g2.svg"}) {
		t.Fatalf("gallery = %v", p.Gallery)
	}
}

func TestBuildProductsIDFallback(t *testing.T) {
	rows := []Row{
		{"id": "9", "name": "A", "category": "X"},
		{"id": "", "name": "B", "category": "X"},
		{"id": "0", "name": "C", "category": "X"},
		{"id": "junk", "name": "D", "category": "X"},
	}

	products := BuildProducts(rows, DefaultAliases())

	want := []int{9, 2, 3, 4}
	for i, p := range products {
		if p.ID != want[i] {
			t.Errorf("products[%d].ID = %d, want %d", i, p.ID, want[i])
		}
	}
}

func TestBuildProductsPipeSplitting(t *testing.T) {
	rows := []Row{{"name": "A", "category": "X", "tags": " a | |b |"}}

	products := BuildProducts(rows, DefaultAliases())

	if !reflect.DeepEqual(products[0].Tags, []string{"a", "b"}) {
		t.Fatalf("tags = %v", products[0].Tags)
	}
	if len(products[0].Gallery) != 0 {
		t.Fatalf("gallery = %v, want empty", products[0].Gallery)
	}
}

func TestBuildStoreFirstSeenOrder(t *testing.T) {
	products := []Product{
		{Name: "A", Category: "Candles", Tags: []string{"Birthday", "Valentine"}},
		{Name: "B", Category: "Bouquets", Tags: []string{"Birthday"}},
		{Name: "C", Category: "Candles", Tags: []string{"Baptism"}},
	}

	store := BuildStore(products)

	if !reflect.DeepEqual(store.Categories, []string{"Candles", "Bouquets"}) {
		t.Fatalf("categories = %v", store.Categories)
	}
	if !reflect.DeepEqual(store.Tags, []string{"Birthday", "Valentine", "Baptism"}) {
		t.Fatalf("tags = %v", store.Tags)
	}
	if len(store.Products) != 3 {
		t.Fatalf("products = %d, want 3", len(store.Products))
	}
}

func TestBuildStoreMembershipInvariant(t *testing.T) {
	rows := ParseDelimited("name,category,tags\nA,Candles,Birthday|Valentine\nB,Bouquets,Baptism\n")
	store := BuildStore(BuildProducts(rows, DefaultAliases()))

	categories := make(map[string]bool)
	for _, c := range store.Categories {
		categories[c] = true
	}
	tags := make(map[string]bool)
	for _, tg := range store.Tags {
		tags[tg] = true
	}

	for _, p := range store.Products {
		if !categories[p.Category] {
			t.Errorf("category %q of %q missing from store categories", p.Category, p.Name)
		}
		for _, tg := range p.Tags {
			if !tags[tg] {
				t.Errorf("tag %q of %q missing from store tags", tg, p.Name)
			}
		}
	}
}
