// Package qr builds the scannable device payload: a JSON document carrying
// the device's identity plus a generated timestamp and detail-page URL.
package qr

import (
	"encoding/json"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"smart-life-guard/internal/model"
)

// Clock supplies the payload timestamp; injectable so payload generation is
// deterministic under test.
type Clock func() time.Time

// Payload is the canonical QR content. Field order is fixed by the struct.
type Payload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
}

type Encoder struct {
	origin string
	now    Clock
}

// NewEncoder builds an encoder for the given public origin
// (e.g. "https://admin.example.com"). A nil clock uses wall time.
func NewEncoder(origin string, now Clock) *Encoder {
	if now == nil {
		now = time.Now
	}
	return &Encoder{origin: origin, now: now}
}

// Encode returns the canonical JSON payload string for a device.
func (e *Encoder) Encode(device model.Device) (string, error) {
	payload := Payload{
		ID:        device.ID,
		Name:      device.Name,
		Type:      device.Type,
		Location:  device.Location,
		Timestamp: e.now().UTC().Format(time.RFC3339),
		URL:       fmt.Sprintf("%s/device/%s", e.origin, device.ID),
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode qr payload: %w", err)
	}
	return string(encoded), nil
}

// EncodePNG renders the payload as a QR image.
func (e *Encoder) EncodePNG(device model.Device, size int) ([]byte, error) {
	if size <= 0 {
		size = 200
	}

	content, err := e.Encode(device)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("render qr image: %w", err)
	}
	return png, nil
}
