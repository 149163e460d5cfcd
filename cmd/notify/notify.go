// Package notify handles the email notification command
package notify

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/autokit/cmd/root"
	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
	"fjacquet/autokit/internal/notifier"

	"github.com/spf13/cobra"
)

var (
	condition  string
	recipients []string
	subject    string
	message    string
	details    []string
	html       bool
)

// Cmd represents the notify command
var Cmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a templated email notification when a condition holds",
	Long: `Notify evaluates a condition expression (always, never,
file-exists:PATH, file-missing:PATH, env:NAME) and, when it holds,
sends a timestamped email to the given recipients over SMTP. A false
condition sends nothing and exits cleanly.`,
	Run: notifyFunc,
}

func init() {
	Cmd.Flags().StringVar(&condition, "condition", "always", "Condition expression gating the send")
	Cmd.Flags().StringArrayVar(&recipients, "to", nil, "Recipient address (repeatable)")
	Cmd.Flags().StringVar(&subject, "subject", "", "Notification subject")
	Cmd.Flags().StringVar(&message, "message", "", "Notification message body")
	Cmd.Flags().StringArrayVar(&details, "detail", nil, "Extra key=value detail line (repeatable)")
	Cmd.Flags().BoolVar(&html, "html", false, "Send an HTML body instead of plain text")
}

func notifyFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)

	if subject == "" {
		log.Fatalf("Error: --subject is required")
	}
	if message == "" {
		log.Fatalf("Error: --message is required")
	}

	detailMap, err := parseDetails(details)
	if err != nil {
		log.Fatalf("Error parsing details: %v", err)
	}

	// A false condition exits cleanly even on a machine with no SMTP
	// configuration, so evaluate before building the sender.
	met, err := notifier.EvaluateCondition(condition)
	if err != nil {
		log.Fatalf("Error evaluating condition: %v", err)
	}
	if !met {
		root.Log.Info("Condition not met, nothing to send")
		return
	}

	sender, err := notifier.NewSMTPSender(root.Cfg, log)
	if err != nil {
		log.Fatalf("Error configuring SMTP: %v", err)
	}

	n := notifier.New(sender, log)
	sent, err := n.Notify(context.Background(), condition, models.Notification{
		Subject:    subject,
		Message:    message,
		Details:    detailMap,
		HTML:       html,
		Recipients: recipients,
	})
	if err != nil {
		log.Fatalf("Error sending notification: %v", err)
	}

	if sent {
		root.Log.Infof("Notification sent to %s", strings.Join(recipients, ", "))
	} else {
		root.Log.Info("Condition not met, nothing to send")
	}
}

// parseDetails turns repeated key=value flags into a map.
func parseDetails(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	detailMap := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid detail %q, expected key=value", pair)
		}
		detailMap[key] = value
	}
	return detailMap, nil
}
