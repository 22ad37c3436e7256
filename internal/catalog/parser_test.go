package catalog

import "testing"

func TestParseDelimitedHeaderRow(t *testing.T) {
	rows := ParseDelimited("name,category,price\nCandle,Candles,24\n")

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["name"] != "Candle" || rows[0]["category"] != "Candles" || rows[0]["price"] != "24" {
		t.Fatalf("row = %v", rows[0])
	}
}

func TestParseDelimitedNoHeaderRow(t *testing.T) {
	// No cell matches a canonical name, so the first line is data and the
	// canonical layout applies positionally.
	rows := ParseDelimited("7,Candle,24 лв.,Candles,note,img.svg,a|b,g1|g2\n8,Posy,12,Bouquets,,,,\n")

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["id"] != "7" || rows[0]["name"] != "Candle" || rows[0]["tags"] != "a|b" {
		t.Fatalf("first row = %v", rows[0])
	}
	if rows[1]["name"] != "Posy" || rows[1]["gallery"] != "" {
		t.Fatalf("second row = %v", rows[1])
	}
}

func TestParseDelimitedSemicolon(t *testing.T) {
	rows := ParseDelimited("name;category\nCandle;Candles\n")

	if len(rows) != 1 || rows[0]["name"] != "Candle" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestParseDelimitedPrefersCommaOnTie(t *testing.T) {
	// One of each: semicolon must be strictly more frequent to win.
	rows := ParseDelimited("name,category;extra\nCandle,Candles;x\n")

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["name"] != "Candle" {
		t.Fatalf("row = %v", rows[0])
	}
}

func TestParseDelimitedQuotedField(t *testing.T) {
	rows := ParseDelimited("name,note\n\"Candle, large\",cozy\n")

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["name"] != "Candle, large" {
		t.Fatalf("name = %q", rows[0]["name"])
	}
	if rows[0]["note"] != "cozy" {
		t.Fatalf("note = %q", rows[0]["note"])
	}
}

func TestParseDelimitedBOMAndBlankLines(t *testing.T) {
	rows := ParseDelimited("\ufeffname,category\r\n\r\nCandle,Candles\r\n\r\n")

	if len(rows) != 1 || rows[0]["name"] != "Candle" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestParseDelimitedShortRow(t *testing.T) {
	rows := ParseDelimited("name,category,price\nCandle\n")

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["category"] != "" || rows[0]["price"] != "" {
		t.Fatalf("missing headers should map to empty, got %v", rows[0])
	}
}

func TestParseDelimitedEmpty(t *testing.T) {
	if rows := ParseDelimited(""); rows != nil {
		t.Fatalf("rows = %v, want nil", rows)
	}
	if rows := ParseDelimited("  \n \r\n"); rows != nil {
		t.Fatalf("rows = %v, want nil", rows)
	}
}
