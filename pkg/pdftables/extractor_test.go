package pdftables

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_ExtractorValidation(t *testing.T) {
	tests := []struct {
		name      string
		extractor Extractor
		extract   ExtractMode
		wantErr   bool
		wantMsg   []string
	}{
		{"standard_no_extract", ExtractorStandard, "", false, nil},
		{"default_no_extract", "", "", false, nil},
		{"ai1_no_extract", ExtractorAI1, "", false, nil},
		{"ai1_tables", ExtractorAI1, ExtractTables, false, nil},
		{"ai1_tables_paragraphs", ExtractorAI1, ExtractTablesParagraphs, false, nil},
		{"ai2_tables", ExtractorAI2, ExtractTables, false, nil},
		{
			name:      "standard_with_extract",
			extractor: ExtractorStandard,
			extract:   ExtractTables,
			wantErr:   true,
			wantMsg:   []string{`"standard"`, "does not support extract parameter"},
		},
		{
			name:      "ai1_bogus_extract",
			extractor: ExtractorAI1,
			extract:   "bogus",
			wantErr:   true,
			wantMsg:   []string{"tables, tables-paragraphs"},
		},
		{
			name:      "unknown_extractor",
			extractor: "ai-3",
			extract:   "",
			wantErr:   true,
			wantMsg:   []string{`"ai-3"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New("test-key", WithExtractor(tt.extractor, tt.extract))

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("New() error = %v, want nil", err)
				}
				if client == nil {
					t.Fatal("New() returned nil client")
				}
				return
			}

			if err == nil {
				t.Fatal("New() error = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("New() error = %v, want ErrInvalidConfiguration", err)
			}
			for _, want := range tt.wantMsg {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("New() error %q does not contain %q", err.Error(), want)
				}
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.apiURL != DefaultAPIURL {
		t.Errorf("apiURL = %q, want %q", client.apiURL, DefaultAPIURL)
	}
	if client.connectTimeout != DefaultConnectTimeout {
		t.Errorf("connectTimeout = %v, want %v", client.connectTimeout, DefaultConnectTimeout)
	}
	if client.readTimeout != DefaultReadTimeout {
		t.Errorf("readTimeout = %v, want %v", client.readTimeout, DefaultReadTimeout)
	}
	if client.httpClient == nil {
		t.Error("httpClient not initialized")
	}
}
