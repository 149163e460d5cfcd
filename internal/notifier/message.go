package notifier

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"fjacquet/autokit/internal/models"
)

var htmlBodyTemplate = template.Must(template.New("notification").Parse(`<html>
<head></head>
<body>
	<h2 style="color: #2c3e50;">{{.Title}}</h2>
	<p><strong>Time:</strong> {{.Timestamp}}</p>
	<p>{{.Message}}</p>
{{- if .Details}}
	<h3>Details:</h3>
	<ul>
{{- range .Details}}
		<li><strong>{{.Key}}:</strong> {{.Value}}</li>
{{- end}}
	</ul>
{{- end}}
</body>
</html>
`))

type detailPair struct {
	Key   string
	Value string
}

// RenderMessage produces the final subject and body for a notification.
// HTML notifications get the templated layout with a timestamp and a
// details list; plain ones get a simple text rendering of the same data.
func RenderMessage(n models.Notification, now time.Time) (subject, body string, err error) {
	subject = fmt.Sprintf("Notification: %s", n.Subject)
	timestamp := now.Format("2006-01-02 15:04:05")
	details := sortedDetails(n.Details)

	if !n.HTML {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\nTime: %s\n\n%s\n", n.Subject, timestamp, n.Message)
		if len(details) > 0 {
			b.WriteString("\nDetails:\n")
			for _, d := range details {
				fmt.Fprintf(&b, "- %s: %s\n", d.Key, d.Value)
			}
		}
		return subject, b.String(), nil
	}

	var b strings.Builder
	err = htmlBodyTemplate.Execute(&b, struct {
		Title     string
		Timestamp string
		Message   string
		Details   []detailPair
	}{
		Title:     n.Subject,
		Timestamp: timestamp,
		Message:   n.Message,
		Details:   details,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render notification body: %w", err)
	}
	return subject, b.String(), nil
}

// sortedDetails returns details in stable key order.
func sortedDetails(details map[string]string) []detailPair {
	if len(details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]detailPair, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, detailPair{Key: key, Value: details[key]})
	}
	return pairs
}
