package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/am-nutrition/storefront/internal/inventory"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// AlertService emails the shop administrator when post-order stock
// reconciliation leaves lines that need manual resolution.
type AlertService struct {
	client     *sendgrid.Client
	fromEmail  string
	fromName   string
	adminEmail string
}

func NewAlertService(apiKey, fromEmail, fromName, adminEmail string) *AlertService {
	return &AlertService{
		client:     sendgrid.NewSendClient(apiKey),
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

// GetSendGridClient exposes the underlying client so tests can redirect it.
func (a *AlertService) GetSendGridClient() *sendgrid.Client {
	return a.client
}

func (a *AlertService) NotifyReconciliationFailures(ctx context.Context, orderNumber string, failures []inventory.LineResult) error {

	from := mail.NewEmail(a.fromName, a.fromEmail)
	to := mail.NewEmail("", a.adminEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = fmt.Sprintf("Stock reconciliation needed for order %s", orderNumber)
	message.AddPersonalizations(personalization)

	var body strings.Builder

	fmt.Fprintf(&body, "Order %s was placed but %d line(s) could not be decremented:\n\n", orderNumber, len(failures))

	for _, failure := range failures {
		fmt.Fprintf(&body, "- %s (%s): %s\n", failure.Name, failure.ProductID, failure.Reason)
	}

	body.WriteString("\nPlease reconcile the stock manually.\n")

	message.AddContent(mail.NewContent("text/plain", body.String()))

	response, err := a.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
