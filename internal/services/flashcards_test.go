package services

import (
	"testing"
)

func TestParseFlashcardsSkipsMalformedSegments(t *testing.T) {
	t.Parallel()

	input := `Title: Demam
Body: Demam adalah respons tubuh terhadap infeksi.
Category: symptoms

Title: Cuci Tangan
Body: Mencuci tangan mengurangi penularan penyakit.
Category: prevention

Title: Kartu Rusak
Body tanpa label kategori yang benar

Title: Istirahat
Body: Tidur cukup membantu pemulihan.
Category: lifestyle`

	cards := ParseFlashcards(input)
	if len(cards) != 3 {
		t.Fatalf("unexpected card count: got=%d want=3", len(cards))
	}
	wantTitles := []string{"Demam", "Cuci Tangan", "Istirahat"}
	for i, want := range wantTitles {
		if cards[i].Title != want {
			t.Fatalf("card[%d] title mismatch: got=%q want=%q", i, cards[i].Title, want)
		}
	}
	if cards[0].Category != "symptoms" || cards[1].Category != "prevention" || cards[2].Category != "lifestyle" {
		t.Fatalf("unexpected categories: %+v", cards)
	}
}

func TestParseFlashcardsRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	input := `Title: Kartu
Body: Isi kartu.
Category: horoscope`

	if cards := ParseFlashcards(input); len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestParseFlashcardsEmptyInput(t *testing.T) {
	t.Parallel()

	if cards := ParseFlashcards(""); len(cards) != 0 {
		t.Fatalf("expected no cards from empty input, got %d", len(cards))
	}
}

func TestParseFlashcardsToleratesDividersAndCase(t *testing.T) {
	t.Parallel()

	input := "title: Hidrasi\nbody: Minum air yang cukup.\ncategory: General\n---\nTitle: Obat\nBody: Ikuti dosis yang dianjurkan.\nCategory: treatment"

	cards := ParseFlashcards(input)
	if len(cards) != 2 {
		t.Fatalf("unexpected card count: got=%d want=2", len(cards))
	}
	if cards[0].Category != "general" {
		t.Fatalf("category should be lowercased, got %q", cards[0].Category)
	}
}
