package catalog

import (
	"strconv"
	"strings"
)

// Aliases maps each canonical product field to the ordered column names that
// may carry it. The first non-empty match wins, so a deployment can accept
// exports labelled in any supported locale.
type Aliases map[string][]string

// DefaultAliases covers the English and Bulgarian column names used by the
// published sheet.
func DefaultAliases() Aliases {
	return Aliases{
		"name":     {"name", "име", "продукт"},
		"price":    {"price", "цена"},
		"category": {"category", "категория"},
		"note":     {"note", "описание", "description"},
		"image":    {"image", "снимка", "photo"},
		"tags":     {"tags", "тагове", "таг"},
		"gallery":  {"gallery", "галерия"},
	}
}

// BuildProducts maps parsed rows to products. A row whose resolved name or
// category is empty is dropped; no other field is required.
func BuildProducts(rows []Row, aliases Aliases) []Product {
	if aliases == nil {
		aliases = DefaultAliases()
	}

	products := make([]Product, 0, len(rows))
	for i, row := range rows {
		p := Product{
			ID:       resolveID(row["id"], i),
			Name:     pickField(row, aliases["name"]),
			Price:    pickField(row, aliases["price"]),
			Category: pickField(row, aliases["category"]),
			Note:     pickField(row, aliases["note"]),
			Image:    pickField(row, aliases["image"]),
			Tags:     splitList(pickField(row, aliases["tags"])),
			Gallery:  splitList(pickField(row, aliases["gallery"])),
		}
		if p.Name == "" || p.Category == "" {
			continue
		}
		products = append(products, p)
	}
	return products
}

// BuildStore derives the distinct category and tag lists over the retained
// products, in first-occurrence order.
func BuildStore(products []Product) Store {
	store := Store{
		Categories: []string{},
		Tags:       []string{},
		Products:   products,
	}

	seenCategory := make(map[string]bool)
	seenTag := make(map[string]bool)
	for _, p := range products {
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			store.Categories = append(store.Categories, p.Category)
		}
		for _, t := range p.Tags {
			if !seenTag[t] {
				seenTag[t] = true
				store.Tags = append(store.Tags, t)
			}
		}
	}
	return store
}

// pickField returns the first candidate column holding a non-empty value
// after trimming.
func pickField(row Row, keys []string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
	}
	return ""
}

// splitList breaks a pipe-separated cell into trimmed, non-empty pieces.
func splitList(raw string) []string {
	out := []string{}
	for _, piece := range strings.Split(raw, "|") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// resolveID parses the id cell; a missing, malformed or zero id falls back
// to the 1-based row position.
func resolveID(raw string, rowIndex int) int {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return rowIndex + 1
	}
	return id
}
