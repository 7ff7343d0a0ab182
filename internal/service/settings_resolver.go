package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

var methodLabels = map[domain.GatewayTag]string{
	domain.GatewayCard:     "Credit / Debit Card",
	domain.GatewayRegional: "Local Cards & Mobile Banking",
	domain.GatewayCOD:      "Cash on Delivery",
}

// SettingsResolverImpl implements ports.SettingsResolver as a cache-aside
// reader over the settings table. Staleness is bounded by ttl, and the write
// path invalidates synchronously.
type SettingsResolverImpl struct {
	repo       ports.SettingsRepository
	cache      ports.SettingsCache
	encSvc     ports.EncryptionService
	transactor ports.DBTransactor
	metrics    ports.Metrics
	ttl        time.Duration
	log        zerolog.Logger
}

// NewSettingsResolver creates a new SettingsResolverImpl.
func NewSettingsResolver(
	repo ports.SettingsRepository,
	cache ports.SettingsCache,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	metrics ports.Metrics,
	ttl time.Duration,
	log zerolog.Logger,
) *SettingsResolverImpl {
	return &SettingsResolverImpl{
		repo:       repo,
		cache:      cache,
		encSvc:     encSvc,
		transactor: transactor,
		metrics:    metrics,
		ttl:        ttl,
		log:        log,
	}
}

// GetGatewaySettings returns complete settings for gateway or GW_001 when any
// mandatory key is missing. Partial settings are never returned.
func (r *SettingsResolverImpl) GetGatewaySettings(ctx context.Context, gateway domain.GatewayTag) (*domain.GatewaySettings, error) {
	if _, ok := domain.RequiredSettingKeys[gateway]; !ok {
		return nil, apperror.ErrUnsupportedGateway(string(gateway))
	}

	cached, found, err := r.cache.Get(ctx, gateway)
	if err != nil {
		r.log.Warn().Err(err).Str("gateway", string(gateway)).Msg("settings cache read failed, falling through to DB")
	}
	if found && cached != nil {
		r.metrics.SettingsCache(true)
		return cached, nil
	}
	r.metrics.SettingsCache(false)

	rows, err := r.repo.ListByCategory(ctx, string(gateway))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load %s settings: %w", gateway, err))
	}
	values, err := r.decryptAll(rows)
	if err != nil {
		return nil, err
	}

	settings := buildGatewaySettings(gateway, values)
	if settings == nil {
		return nil, apperror.ErrGatewayNotConfigured(string(gateway))
	}

	if err := r.cache.Set(ctx, gateway, settings, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("gateway", string(gateway)).Msg("failed to cache gateway settings")
	}
	return settings, nil
}

// CardSettings resolves the card gateway credentials.
func (r *SettingsResolverImpl) CardSettings(ctx context.Context) (*domain.CardSettings, error) {
	s, err := r.GetGatewaySettings(ctx, domain.GatewayCard)
	if err != nil {
		return nil, err
	}
	return s.Card, nil
}

// RegionalSettings resolves the regional gateway credentials.
func (r *SettingsResolverImpl) RegionalSettings(ctx context.Context) (*domain.RegionalSettings, error) {
	s, err := r.GetGatewaySettings(ctx, domain.GatewayRegional)
	if err != nil {
		return nil, err
	}
	return s.Regional, nil
}

// InvalidateCache drops the cached settings of gateway.
func (r *SettingsResolverImpl) InvalidateCache(ctx context.Context, gateway domain.GatewayTag) error {
	if err := r.cache.Delete(ctx, gateway); err != nil {
		return apperror.InternalError(fmt.Errorf("invalidate %s settings: %w", gateway, err))
	}
	return nil
}

// GetActivePaymentMethods lists the methods checkout may offer: those the
// administrator enabled whose gateway is configured and enabled, followed by
// cash on delivery, which is always available.
func (r *SettingsResolverImpl) GetActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethodOption, error) {
	rows, err := r.repo.ListByCategory(ctx, domain.SettingsCategoryCheckout)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load checkout settings: %w", err))
	}

	candidates := []domain.GatewayTag{domain.GatewayCard, domain.GatewayRegional}
	for _, row := range rows {
		if row.Key == domain.SettingEnabledMethods {
			candidates = parseMethodList(row.Value)
		}
	}

	var methods []domain.PaymentMethodOption
	for _, gw := range candidates {
		if gw == domain.GatewayCOD {
			continue
		}
		settings, err := r.GetGatewaySettings(ctx, gw)
		if err != nil {
			r.log.Debug().Err(err).Str("gateway", string(gw)).Msg("payment method hidden")
			continue
		}
		if !settings.Enabled() {
			continue
		}
		methods = append(methods, domain.PaymentMethodOption{Gateway: gw, Label: methodLabels[gw]})
	}
	methods = append(methods, domain.PaymentMethodOption{Gateway: domain.GatewayCOD, Label: methodLabels[domain.GatewayCOD]})
	return methods, nil
}

// UpdateGatewaySettings writes operator-supplied values, encrypting secrets,
// and invalidates the cached copy before returning.
func (r *SettingsResolverImpl) UpdateGatewaySettings(ctx context.Context, gateway domain.GatewayTag, values map[string]string) error {
	allowed, ok := domain.AllowedSettingKeys[gateway]
	if !ok {
		return apperror.ErrUnsupportedGateway(string(gateway))
	}
	if len(values) == 0 {
		return apperror.Validation("no settings supplied")
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([]domain.Setting, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(values[key])
		if !slices.Contains(allowed, key) {
			return apperror.Validation(fmt.Sprintf("unknown %s setting %q", gateway, key))
		}
		if key == domain.SettingEnabled || key == domain.SettingSandbox {
			if _, err := strconv.ParseBool(value); err != nil {
				return apperror.Validation(fmt.Sprintf("%s must be true or false", key))
			}
		}
		row := domain.Setting{Category: string(gateway), Key: key, Value: value}
		if domain.SecretSettingKeys[key] && value != "" {
			enc, err := r.encSvc.Encrypt(value)
			if err != nil {
				return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt %s: %w", key, err))
			}
			row.Value = enc
			row.Encrypted = true
		}
		rows = append(rows, row)
	}

	dbTx, err := r.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	for _, row := range rows {
		if err := r.repo.Upsert(ctx, dbTx, row); err != nil {
			return apperror.InternalError(err)
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := r.InvalidateCache(ctx, gateway); err != nil {
		r.log.Error().Err(err).Str("gateway", string(gateway)).Msg("settings saved but cache invalidation failed")
		return err
	}

	r.log.Info().Str("gateway", string(gateway)).Strs("keys", keys).Msg("gateway settings updated")
	return nil
}

func (r *SettingsResolverImpl) decryptAll(rows []domain.Setting) (map[string]string, error) {
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		v := row.Value
		if row.Encrypted && v != "" {
			plain, err := r.encSvc.Decrypt(v)
			if err != nil {
				return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt %s.%s: %w", row.Category, row.Key, err))
			}
			v = plain
		}
		values[row.Key] = strings.TrimSpace(v)
	}
	return values, nil
}

// buildGatewaySettings returns nil unless every mandatory key is non-empty.
func buildGatewaySettings(gateway domain.GatewayTag, values map[string]string) *domain.GatewaySettings {
	for _, key := range domain.RequiredSettingKeys[gateway] {
		if values[key] == "" {
			return nil
		}
	}
	enabled := parseBool(values[domain.SettingEnabled])

	switch gateway {
	case domain.GatewayCard:
		return &domain.GatewaySettings{Gateway: gateway, Card: &domain.CardSettings{
			SecretKey:      values[domain.SettingSecretKey],
			PublishableKey: values[domain.SettingPublishableKey],
			WebhookSecret:  values[domain.SettingWebhookSecret],
			Enabled:        enabled,
		}}
	case domain.GatewayRegional:
		return &domain.GatewaySettings{Gateway: gateway, Regional: &domain.RegionalSettings{
			StoreID:       values[domain.SettingStoreID],
			StorePassword: values[domain.SettingStorePassword],
			Sandbox:       parseBool(values[domain.SettingSandbox]),
			Enabled:       enabled,
		}}
	}
	return nil
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func parseMethodList(s string) []domain.GatewayTag {
	var out []domain.GatewayTag
	for _, part := range strings.Split(s, ",") {
		if gw, ok := domain.ParseGateway(strings.ToLower(strings.TrimSpace(part))); ok && !slices.Contains(out, gw) {
			out = append(out, gw)
		}
	}
	return out
}
