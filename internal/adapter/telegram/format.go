package telegram

import (
	"html"
	"strings"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
)

var titles = map[model.NotificationKind]string{
	model.NotificationOrderCreated:       "New order",
	model.NotificationBankInvoiceRequest: "Bank invoice requested",
	model.NotificationPrepaymentReceived: "Prepayment received",
	model.NotificationOrderFullyPaid:     "Order fully paid",
	model.NotificationInvoiceCreated:     "Additional invoice issued",
	model.NotificationInvoicePaid:        "Additional invoice paid",
	model.NotificationContactRequest:     "Contact request",
}

// Format renders a notification as an HTML Bot API message.
func Format(n model.Notification) string {
	var b strings.Builder

	title, ok := titles[n.Kind]
	if !ok {
		title = string(n.Kind)
	}
	b.WriteString("<b>" + html.EscapeString(title) + "</b>\n")

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("\n<b>" + label + ":</b> " + html.EscapeString(value))
	}

	line("Order", n.OrderID)
	line("Invoice", n.InvoiceNumber)
	line("Client", n.ClientName)
	line("Email", n.Email)
	line("Phone", n.Phone)
	line("Project", string(n.ProjectType))
	if !n.Amount.IsZero() {
		line("Amount", robokassa.FormatAmount(n.Amount)+" RUB")
	}
	if !n.Company.Empty() {
		line("Company", n.Company.Name)
		line("INN", n.Company.INN)
		line("KPP", n.Company.KPP)
		line("Address", n.Company.Address)
	}
	line("Message", n.Message)
	line("Pay remaining", n.PayRemainingURL)

	return b.String()
}
