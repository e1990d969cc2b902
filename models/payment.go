package models

// PaymentCapture is returned after a successful charge creation. The
// client completes the flow with ClientSecret; Reference is the provider's
// durable identifier stored on the booking.
type PaymentCapture struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret"`
}
