package entities

// PaymentNotification is a gateway callback keyed by checkout id. The
// signature key must be verified before any field of it is trusted.
type PaymentNotification struct {
	CheckoutID        string
	StatusCode        string
	GrossAmount       string
	TransactionStatus string
	SignatureKey      string
	// Raw is the full notification body, persisted for auditing.
	Raw []byte
}
