package models

import "time"

// Link is a hyperlink extracted from a fetched page.
type Link struct {
	Text string `json:"text" csv:"text"`
	URL  string `json:"url" csv:"url"`
}

// Image is an image reference extracted from a fetched page.
type Image struct {
	Alt string `json:"alt" csv:"alt"`
	URL string `json:"url" csv:"url"`
}

// Heading is a section heading (h1-h3) extracted from a fetched page.
type Heading struct {
	Level int    `json:"level" csv:"level"`
	Text  string `json:"text" csv:"text"`
}

// Extract is the result of applying one user-supplied extraction rule.
type Extract struct {
	Rule  string `json:"rule" csv:"rule"`
	Value string `json:"value" csv:"value"`
}

// PageReport aggregates everything extracted from a single fetch.
// Its lifetime ends once it is written to the output sink.
type PageReport struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	FetchedAt   time.Time `json:"fetched_at"`
	TotalLinks  int       `json:"total_links"`
	TotalImages int       `json:"total_images"`
	Links       []Link    `json:"links"`
	Images      []Image   `json:"images"`
	Headings    []Heading `json:"headings,omitempty"`
	Extracts    []Extract `json:"extracts,omitempty"`
}

// ScrapeRecord is the flat row shape used by the CSV sink, where links,
// images and extracts share one table.
type ScrapeRecord struct {
	Kind  string `csv:"kind"`
	Text  string `csv:"text"`
	Value string `csv:"value"`
}

// Flatten converts a report into flat records for delimited output.
func (r *PageReport) Flatten() []ScrapeRecord {
	records := make([]ScrapeRecord, 0, len(r.Links)+len(r.Images)+len(r.Extracts))
	for _, l := range r.Links {
		records = append(records, ScrapeRecord{Kind: "link", Text: l.Text, Value: l.URL})
	}
	for _, img := range r.Images {
		records = append(records, ScrapeRecord{Kind: "image", Text: img.Alt, Value: img.URL})
	}
	for _, e := range r.Extracts {
		records = append(records, ScrapeRecord{Kind: "extract", Text: e.Rule, Value: e.Value})
	}
	return records
}
