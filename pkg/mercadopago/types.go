package mercadopago

// Payer is the buyer block on a gateway payment. All fields are optional on
// the wire; callers apply their own defaults.
type Payer struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Payment is the gateway's canonical payment object, reduced to the fields
// this system reads.
type Payment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status,omitempty"`
	StatusDetail      string  `json:"status_detail,omitempty"`
	ExternalReference string  `json:"external_reference,omitempty"`
	TransactionAmount float64 `json:"transaction_amount,omitempty"`
	CurrencyID        string  `json:"currency_id,omitempty"`
	PaymentMethodID   string  `json:"payment_method_id,omitempty"`
	Description       string  `json:"description,omitempty"`
	Payer             *Payer  `json:"payer,omitempty"`
	DateCreated       string  `json:"date_created,omitempty"`
	DateApproved      string  `json:"date_approved,omitempty"`
}

// PaymentRequest is the body for direct payment creation.
type PaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount" validate:"required,gt=0"`
	Token             string  `json:"token,omitempty"`
	Description       string  `json:"description,omitempty"`
	Installments      int     `json:"installments,omitempty"`
	PaymentMethodID   string  `json:"payment_method_id,omitempty"`
	ExternalReference string  `json:"external_reference,omitempty"`
	NotificationURL   string  `json:"notification_url,omitempty"`
	Payer             *Payer  `json:"payer,omitempty"`
}

type PreferenceItem struct {
	Title      string  `json:"title" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" validate:"required,gt=0"`
	CurrencyID string  `json:"currency_id,omitempty"`
}

type BackURLs struct {
	Success string `json:"success,omitempty"`
	Pending string `json:"pending,omitempty"`
	Failure string `json:"failure,omitempty"`
}

// PreferenceRequest opens a redirect-checkout session.
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items" validate:"required,min=1,dive"`
	BackURLs          *BackURLs        `json:"back_urls,omitempty"`
	NotificationURL   string           `json:"notification_url,omitempty"`
	ExternalReference string           `json:"external_reference,omitempty"`
	AutoReturn        string           `json:"auto_return,omitempty"`
}

// Preference is the gateway's checkout session; InitPoint is the redirect URL
// the buyer opens.
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}
