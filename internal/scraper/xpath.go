package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"fjacquet/autokit/internal/models"

	"gopkg.in/xmlpath.v2"
)

// extractXPath applies an XPath expression to the raw page markup and
// returns one extract per matching node.
func extractXPath(raw []byte, xpath string) ([]models.Extract, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", xpath, err)
	}

	root, err := xmlpath.ParseHTML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse document for xpath: %w", err)
	}

	var extracts []models.Extract
	iter := path.Iter(root)
	for iter.Next() {
		extracts = append(extracts, models.Extract{
			Rule:  xpath,
			Value: strings.TrimSpace(iter.Node().String()),
		})
	}
	return extracts, nil
}
