package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"
)

var ErrCarrierGatewayNotConfigured = errors.New("carrier gateway not configured")

// RestCarrierClient talks to a carrier aggregation API over plain REST. The
// service persists what it answers; no carrier protocol details live here.
//
// Env vars:
//   - CARRIER_API_BASE_URL (e.g. https://carriers.internal/v1)
//   - CARRIER_API_KEY
type RestCarrierClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ interfaces.IShippingCarrierClient = (*RestCarrierClient)(nil)

func NewRestCarrierClient(baseURL, apiKey string) (*RestCarrierClient, error) {
	if baseURL == "" {
		return nil, ErrCarrierGatewayNotConfigured
	}
	return &RestCarrierClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type createShipmentRequest struct {
	Reference       string `json:"reference"`
	Carrier         string `json:"carrier"`
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
}

type createShipmentResponse struct {
	TrackingNumber string  `json:"tracking_number"`
	Cost           float64 `json:"cost"`
	ETA            string  `json:"eta"`
}

func (c *RestCarrierClient) CreateShipment(ctx context.Context, details entities.ShipmentDetails) (entities.ShipmentConfirmation, error) {
	body, err := json.Marshal(createShipmentRequest{
		Reference:       details.RequestNumber,
		Carrier:         details.Provider,
		PickupAddress:   details.PickupAddress,
		DeliveryAddress: details.DeliveryAddress,
	})
	if err != nil {
		return entities.ShipmentConfirmation{}, err
	}

	var resp createShipmentResponse
	if err := c.do(ctx, http.MethodPost, "/shipments", body, &resp); err != nil {
		return entities.ShipmentConfirmation{}, err
	}

	confirmation := entities.ShipmentConfirmation{
		TrackingNumber: resp.TrackingNumber,
		Cost:           resp.Cost,
	}
	if resp.ETA != "" {
		if eta, err := time.Parse(time.RFC3339, resp.ETA); err == nil {
			confirmation.ETA = eta
		}
	}
	log.Printf("[shipping][carrier] shipment created reference=%s tracking=%s cost=%.2f", details.RequestNumber, resp.TrackingNumber, resp.Cost)
	return confirmation, nil
}

func (c *RestCarrierClient) CancelShipment(ctx context.Context, trackingNumber string) error {
	return c.do(ctx, http.MethodDelete, "/shipments/"+trackingNumber, nil, nil)
}

type trackShipmentResponse struct {
	Status string `json:"status"`
}

func (c *RestCarrierClient) TrackShipment(ctx context.Context, trackingNumber string) (entities.ShippingStatus, error) {
	var resp trackShipmentResponse
	if err := c.do(ctx, http.MethodGet, "/shipments/"+trackingNumber, nil, &resp); err != nil {
		return "", err
	}
	status := entities.ShippingStatus(resp.Status)
	if !status.Valid() {
		return "", fmt.Errorf("carrier returned unknown status %q", resp.Status)
	}
	return status, nil
}

func (c *RestCarrierClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("carrier api %s %s returned %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
