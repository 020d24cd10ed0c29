package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/cermartin/sr/internal/domain/catalog"
	"github.com/cermartin/sr/internal/domain/order"
	"github.com/cermartin/sr/internal/pkg/async"
	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/usecase/shared"
)

// orderNotifier sends the buyer and seller emails for a placed order. Both
// sends are dispatched off the request path: by the time they run the order
// row is committed, so a failed send is logged and nothing more.
type orderNotifier struct {
	email      shared.EmailGateway
	dispatcher async.Dispatcher
	cfg        config.EmailConfig
}

func NewOrderNotifier(email shared.EmailGateway, dispatcher async.Dispatcher, cfg config.Config) *orderNotifier {
	return &orderNotifier{email: email, dispatcher: dispatcher, cfg: cfg.Email}
}

func (n *orderNotifier) NotifyOrderPlaced(o *order.Order) {
	common := n.commonParams(o)

	n.dispatcher.Dispatch("owner-order-email", func(ctx context.Context) error {
		return n.email.Send(ctx, n.cfg.OwnerTemplateID, common)
	})

	customer := make(map[string]string, len(common)+3)
	for k, v := range common {
		customer[k] = v
	}
	customer["to_name"] = o.FirstName + " " + o.LastName
	customer["to_email"] = o.Email
	customer["from_name"] = n.cfg.FromName

	n.dispatcher.Dispatch("customer-order-email", func(ctx context.Context) error {
		return n.email.Send(ctx, n.cfg.CustomerTemplateID, customer)
	})
}

func (n *orderNotifier) commonParams(o *order.Order) map[string]string {
	shipping := "Free"
	if o.ShippingPence > 0 {
		shipping = catalog.FormatPence(o.ShippingPence)
	}

	phone := o.Phone
	if phone == "" {
		phone = "Not provided"
	}

	return map[string]string{
		"order_id":       o.Reference,
		"customer_name":  o.FirstName + " " + o.LastName,
		"customer_email": o.Email,
		"phone":          phone,
		"address":        strings.Join([]string{o.Address, o.City, o.Postcode, o.Country}, ", "),
		"items_list":     formatItems(o.Lines),
		"subtotal":       catalog.FormatPence(o.SubtotalPence),
		"shipping":       shipping,
		"total":          catalog.FormatPence(o.TotalPence),
	}
}

func formatItems(lines []order.Line) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		name := l.ProductName
		if l.VariantName != "" {
			name = fmt.Sprintf("%s — %s", l.ProductName, l.VariantName)
		}
		rows[i] = fmt.Sprintf("%s × %d — %s", name, l.Quantity, catalog.FormatPence(l.LinePence()))
	}
	return strings.Join(rows, "\n")
}
