package pdftables

import "fmt"

// Extractor selects which backend extraction algorithm the service uses.
type Extractor string

const (
	// ExtractorStandard is the service's default extraction algorithm.
	ExtractorStandard Extractor = "standard"
	// ExtractorAI1 is the first-generation AI extractor.
	ExtractorAI1 Extractor = "ai-1"
	// ExtractorAI2 is the second-generation AI extractor.
	ExtractorAI2 Extractor = "ai-2"
)

// ExtractMode refines an AI extractor's output granularity. It has no
// meaning for the standard extractor.
type ExtractMode string

const (
	// ExtractTables extracts tables only.
	ExtractTables ExtractMode = "tables"
	// ExtractTablesParagraphs extracts tables and surrounding paragraphs.
	ExtractTablesParagraphs ExtractMode = "tables-paragraphs"
)

// validateExtraction checks an extractor/extract-mode combination. The
// standard extractor accepts no extract mode; the AI extractors accept
// either no mode or one of the two recognized values.
func validateExtraction(extractor Extractor, extract ExtractMode) error {
	switch extractor {
	case "", ExtractorStandard:
		if extract != "" {
			return fmt.Errorf("%w: extractor %q does not support extract parameter",
				ErrInvalidConfiguration, ExtractorStandard)
		}
	case ExtractorAI1, ExtractorAI2:
		if extract != "" && extract != ExtractTables && extract != ExtractTablesParagraphs {
			return fmt.Errorf("%w: extractor %q accepts extract values %s, %s",
				ErrInvalidConfiguration, extractor, ExtractTables, ExtractTablesParagraphs)
		}
	default:
		return fmt.Errorf("%w: unknown extractor %q", ErrInvalidConfiguration, extractor)
	}
	return nil
}
