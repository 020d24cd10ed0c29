// Package email sends transactional mail through the EmailJS REST API.
// One send per recipient role; the caller decides which template and
// parameter set each role gets.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://api.emailjs.com"

type EmailJSGateway struct {
	client    *resty.Client
	serviceID string
	publicKey string
}

func NewEmailJSGateway(cfg config.Config) *EmailJSGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	return &EmailJSGateway{
		client:    client,
		serviceID: cfg.Email.ServiceID,
		publicKey: cfg.Email.PublicKey,
	}
}

func (g *EmailJSGateway) Send(ctx context.Context, templateID string, params map[string]string) error {
	body := map[string]any{
		"service_id":      g.serviceID,
		"template_id":     templateID,
		"user_id":         g.publicKey,
		"template_params": params,
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/v1.0/email/send")
	if err != nil {
		return errs.Wrap(err, "emailjs: send request failed")
	}
	if resp.IsError() {
		return errs.New(fmt.Sprintf("emailjs: send rejected with status %d", resp.StatusCode()))
	}
	return nil
}
