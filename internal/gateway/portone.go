package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gardenus/matchledger/internal/config"
	"github.com/gardenus/matchledger/pkg/clients"
)

//go:generate mockgen -source=portone.go -destination=mock_gateway.go -package=gateway

// StatusPaid is the settlement status a payment must reach before
// flower is credited.
const StatusPaid = "PAID"

// Payment is the gateway's view of one payment.
type Payment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount struct {
		Total    int64  `json:"total"`
		Currency string `json:"currency"`
	} `json:"amount"`
}

// Client looks payments up on the payment gateway.
type Client interface {
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
}

type PortOne struct {
	baseURL string
	secret  string
	client  clients.HTTPClientI
}

func NewPortOne(cfg *config.Config, client clients.HTTPClientI) *PortOne {
	return &PortOne{
		baseURL: cfg.GatewayAddress,
		secret:  cfg.GatewaySecret,
		client:  client,
	}
}

func (p *PortOne) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	headers := http.Header{}
	headers.Set("Authorization", "PortOne "+p.secret)
	headers.Set("Content-Type", "application/json")

	url := p.baseURL + "/payments/" + url.PathEscape(paymentID)
	statusCode, body, _, err := p.client.Get(url, headers)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway error %d: %s", statusCode, string(body))
	}

	var payment Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		return nil, fmt.Errorf("can't decode gateway response: %w", err)
	}
	return &payment, nil
}
