package domain

// Settings keys per gateway category.
const (
	SettingEnabled        = "enabled"
	SettingSecretKey      = "secret_key"
	SettingPublishableKey = "publishable_key"
	SettingWebhookSecret  = "webhook_secret"
	SettingStoreID        = "store_id"
	SettingStorePassword  = "store_password"
	SettingSandbox        = "sandbox"
)

// Checkout settings hold the administrator's choice of offered methods as a
// comma-separated list of gateway tags.
const (
	SettingsCategoryCheckout = "checkout"
	SettingEnabledMethods    = "enabled_methods"
)

// AllowedSettingKeys lists the keys an operator may write per gateway.
var AllowedSettingKeys = map[GatewayTag][]string{
	GatewayCard:     {SettingEnabled, SettingSecretKey, SettingPublishableKey, SettingWebhookSecret},
	GatewayRegional: {SettingEnabled, SettingStoreID, SettingStorePassword, SettingSandbox},
}

// SecretSettingKeys are stored encrypted at rest.
var SecretSettingKeys = map[string]bool{
	SettingSecretKey:     true,
	SettingWebhookSecret: true,
	SettingStorePassword: true,
}

// RequiredSettingKeys lists the keys without which a gateway is not configured.
var RequiredSettingKeys = map[GatewayTag][]string{
	GatewayCard:     {SettingSecretKey, SettingWebhookSecret},
	GatewayRegional: {SettingStoreID, SettingStorePassword},
}

// Setting is one stored key/value row in a gateway category.
type Setting struct {
	Category  string `json:"category"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Encrypted bool   `json:"encrypted"`
}

// CardSettings are the resolved card gateway credentials.
type CardSettings struct {
	SecretKey      string `json:"secret_key"`
	PublishableKey string `json:"publishable_key,omitempty"`
	WebhookSecret  string `json:"webhook_secret"`
	Enabled        bool   `json:"enabled"`
}

// RegionalSettings are the resolved regional gateway credentials.
type RegionalSettings struct {
	StoreID       string `json:"store_id"`
	StorePassword string `json:"store_password"`
	Sandbox       bool   `json:"sandbox"`
	Enabled       bool   `json:"enabled"`
}

// GatewaySettings is a complete settings object for one gateway.
// Exactly one of Card or Regional is set.
type GatewaySettings struct {
	Gateway  GatewayTag        `json:"gateway"`
	Card     *CardSettings     `json:"card,omitempty"`
	Regional *RegionalSettings `json:"regional,omitempty"`
}

// Enabled reports the gateway's enabled flag.
func (s *GatewaySettings) Enabled() bool {
	switch {
	case s.Card != nil:
		return s.Card.Enabled
	case s.Regional != nil:
		return s.Regional.Enabled
	}
	return false
}

// PaymentMethodOption is a checkout-visible payment method.
type PaymentMethodOption struct {
	Gateway GatewayTag `json:"gateway"`
	Label   string     `json:"label"`
}
