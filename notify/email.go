package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/raushankrgupta/product-reconciler/report"
)

// SendRunSummary emails the outcome of a suite run via SendGrid.
// Intended for failed runs: the body enumerates every scenario with
// its status and failing assertions.
func SendRunSummary(apiKey, toEmail string, summary *report.RunSummary) error {
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set in environment variables")
	}

	subject := fmt.Sprintf("Reconciliation run for %q: PASSED", summary.Query)
	if summary.Failed() {
		subject = fmt.Sprintf("Reconciliation run for %q: FAILED", summary.Query)
	}

	var body strings.Builder
	for _, o := range summary.Outcomes {
		fmt.Fprintf(&body, "%s: %s (%s)\n", o.Scenario, o.Status, o.Duration.Round(time.Millisecond))
		if o.Reason != "" {
			fmt.Fprintf(&body, "  reason: %s\n", o.Reason)
		}
		for _, a := range o.Assertions {
			if !a.Passed {
				fmt.Fprintf(&body, "  FAILED %s: %s\n", a.Name, a.Detail)
			}
		}
		for _, v := range o.Violations {
			fmt.Fprintf(&body, "  VIOLATION [%d] %s: %s\n", v.Index, v.Rule, v.Detail)
		}
	}

	from := mail.NewEmail("Product Reconciler", "no-reply@product-reconciler.local")
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body.String(), "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}
	return nil
}
