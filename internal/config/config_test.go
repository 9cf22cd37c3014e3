package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NER_BASE_URL", "")
	t.Setenv("NER_MODEL", "")
	t.Setenv("OCR_LANGUAGE", "")
	t.Setenv("PDF_RASTER_DPI", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := Load()
	if cfg.NERBaseURL != "http://localhost:8090" {
		t.Fatalf("expected default NER base URL, got %q", cfg.NERBaseURL)
	}
	if cfg.NERModel != "dslim/bert-base-NER" {
		t.Fatalf("expected default NER model, got %q", cfg.NERModel)
	}
	if cfg.OCRLanguage != "eng" {
		t.Fatalf("expected default OCR language eng, got %q", cfg.OCRLanguage)
	}
	if cfg.PDFRasterDPI != 300 {
		t.Fatalf("expected default raster DPI 300, got %d", cfg.PDFRasterDPI)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected default 10MiB upload cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.NATSURL != "" {
		t.Fatalf("expected event publishing disabled by default, got %q", cfg.NATSURL)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("NER_BASE_URL", "http://ner.internal:9000")
	t.Setenv("OCR_WORKERS", "4")
	t.Setenv("PDF_RASTER_DPI", "150")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("API_RATE_LIMIT_RPS", "25")

	cfg := Load()
	if cfg.NERBaseURL != "http://ner.internal:9000" {
		t.Fatalf("expected NER base URL override, got %q", cfg.NERBaseURL)
	}
	if cfg.OCRWorkers != 4 {
		t.Fatalf("expected 4 OCR workers, got %d", cfg.OCRWorkers)
	}
	if cfg.PDFRasterDPI != 150 {
		t.Fatalf("expected raster DPI 150, got %d", cfg.PDFRasterDPI)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("expected 1MiB upload cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.APIRateLimitRPS != 25 {
		t.Fatalf("expected rate limit 25 rps, got %d", cfg.APIRateLimitRPS)
	}
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("OCR_WORKERS", "many")
	t.Setenv("MAX_UPLOAD_BYTES", "huge")

	cfg := Load()
	if cfg.OCRWorkers != 2 {
		t.Fatalf("expected fallback OCR workers 2, got %d", cfg.OCRWorkers)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected fallback upload cap, got %d", cfg.MaxUploadBytes)
	}
}
