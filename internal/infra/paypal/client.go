// Package paypal adapts the PayPal Orders v2 REST API to the payment gateway
// port. Raw create/capture responses are passed through untouched so clients
// see exactly what the processor returned.
package paypal

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/pkg/config"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
)

const tokenExpiryMargin = 60 * time.Second

type Client struct {
	http     *resty.Client
	clientID string
	secret   string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.PayPalConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:     httpClient,
		clientID: cfg.ClientID,
		secret:   cfg.ClientSecret,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// token returns a cached OAuth2 access token, refreshing it shortly before
// the processor would reject it.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	var body tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.secret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&body).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", errs.Wrap(err, "request access token")
	}
	if resp.IsError() {
		return "", errs.Newf("token endpoint returned %s", resp.Status())
	}

	c.accessToken = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.accessToken, nil
}

type orderResponse struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type purchaseUnit struct {
	Amount amount `json:"amount"`
	Items  []item `json:"items"`
}

type amount struct {
	CurrencyCode string     `json:"currency_code"`
	Value        string     `json:"value"`
	Breakdown    *breakdown `json:"breakdown,omitempty"`
}

type breakdown struct {
	ItemTotal amount `json:"item_total"`
}

type item struct {
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	Quantity   string `json:"quantity"`
	UnitAmount amount `json:"unit_amount"`
}

func (c *Client) CreateOrder(ctx context.Context, processed *basket.Processed, total order.Money) (*commands.GatewayOrder, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"intent":         "CAPTURE",
		"purchase_units": []purchaseUnit{buildPurchaseUnit(processed, total)},
	}

	var (
		body   orderResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(payload).
		SetResult(&body).
		SetError(&apiErr).
		Post("/v2/checkout/orders")
	if err != nil {
		return nil, errs.Wrap(err, "create order request")
	}
	if resp.IsError() {
		return nil, errs.Newf("create order returned %s: %s %s", resp.Status(), apiErr.Name, apiErr.Message)
	}

	return &commands.GatewayOrder{
		ID:     body.ID,
		Status: body.Status,
		Raw:    json.RawMessage(resp.Body()),
	}, nil
}

func (c *Client) GetOrder(ctx context.Context, transactionID string) (*commands.GatewayOrderDetail, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var (
		body   orderResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&body).
		SetError(&apiErr).
		Get("/v2/checkout/orders/" + transactionID)
	if err != nil {
		return nil, errs.Wrap(err, "get order request")
	}
	if resp.IsError() {
		return nil, errs.Newf("get order returned %s: %s %s", resp.Status(), apiErr.Name, apiErr.Message)
	}

	detail := &commands.GatewayOrderDetail{
		ID:            body.ID,
		Status:        body.Status,
		PurchaseUnits: make([]commands.PurchaseUnit, len(body.PurchaseUnits)),
	}
	for i, pu := range body.PurchaseUnits {
		detail.PurchaseUnits[i] = toPortPurchaseUnit(pu)
	}
	return detail, nil
}

func (c *Client) CaptureOrder(ctx context.Context, transactionID string) (*commands.GatewayCapture, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var (
		body   orderResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(struct{}{}).
		SetResult(&body).
		SetError(&apiErr).
		Post("/v2/checkout/orders/" + transactionID + "/capture")
	if err != nil {
		return nil, errs.Wrap(err, "capture order request")
	}
	if resp.IsError() {
		return nil, errs.Newf("capture order returned %s: %s %s", resp.Status(), apiErr.Name, apiErr.Message)
	}

	return &commands.GatewayCapture{
		ID:     body.ID,
		Status: body.Status,
		Raw:    json.RawMessage(resp.Body()),
	}, nil
}

func buildPurchaseUnit(processed *basket.Processed, total order.Money) purchaseUnit {
	items := make([]item, len(processed.Items))
	for i, it := range processed.Items {
		lineMoney, _ := order.NewMoney(it.UnitPriceCents, total.Currency())
		items[i] = item{
			Name:     it.Name,
			SKU:      it.ProductID.String(),
			Quantity: int32String(it.Quantity),
			UnitAmount: amount{
				CurrencyCode: total.Currency(),
				Value:        lineMoney.Amount(),
			},
		}
	}

	return purchaseUnit{
		Amount: amount{
			CurrencyCode: total.Currency(),
			Value:        total.Amount(),
			Breakdown: &breakdown{
				ItemTotal: amount{CurrencyCode: total.Currency(), Value: total.Amount()},
			},
		},
		Items: items,
	}
}

func toPortPurchaseUnit(pu purchaseUnit) commands.PurchaseUnit {
	out := commands.PurchaseUnit{
		Amount: commands.PurchaseAmount{
			Value:        pu.Amount.Value,
			CurrencyCode: pu.Amount.CurrencyCode,
		},
		Items: make([]commands.PurchaseUnitItem, len(pu.Items)),
	}
	for i, it := range pu.Items {
		out.Items[i] = commands.PurchaseUnitItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Quantity: it.Quantity,
			UnitAmount: commands.PurchaseAmount{
				Value:        it.UnitAmount.Value,
				CurrencyCode: it.UnitAmount.CurrencyCode,
			},
		}
	}
	return out
}

func int32String(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
