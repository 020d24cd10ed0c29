package response

import (
	"github.com/cermartin/sr/internal/usecase/commands"
	"github.com/cermartin/sr/internal/usecase/shared"
)

type CheckoutSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func FromCreateSessionResult(r *commands.CreateSessionResult) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{URL: r.URL, SessionID: r.SessionID}
}

type SessionLineResponse struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	AmountTotal int64  `json:"amount_total"`
}

type SessionDetailsResponse struct {
	ID            string                `json:"id"`
	CustomerEmail string                `json:"customer_email"`
	Metadata      map[string]string     `json:"metadata"`
	AmountTotal   int64                 `json:"amount_total"`
	LineItems     []SessionLineResponse `json:"line_items"`
}

func FromSessionDetails(d *shared.SessionDetails) *SessionDetailsResponse {
	lines := make([]SessionLineResponse, len(d.Lines))
	for i, li := range d.Lines {
		lines[i] = SessionLineResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			AmountTotal: li.AmountTotalPence,
		}
	}
	return &SessionDetailsResponse{
		ID:            d.ID,
		CustomerEmail: d.CustomerEmail,
		Metadata:      d.Metadata,
		AmountTotal:   d.AmountTotalPence,
		LineItems:     lines,
	}
}

type ConfirmResponse struct {
	OrderRef string `json:"orderRef"`
	Email    string `json:"email"`
	Replayed bool   `json:"replayed,omitempty"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{OrderRef: r.OrderRef, Email: r.Email, Replayed: r.Replayed}
}

type OrderPlacedResponse struct {
	OrderRef string `json:"orderRef"`
	Email    string `json:"email"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) *OrderPlacedResponse {
	return &OrderPlacedResponse{OrderRef: r.OrderRef, Email: r.Email}
}
