package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports/mocks"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settingsTestDeps struct {
	svc        *SettingsResolverImpl
	repo       *mocks.MockSettingsRepository
	cache      *mocks.MockSettingsCache
	encSvc     *mocks.MockEncryptionService
	transactor *mocks.MockDBTransactor
	metrics    *mocks.MockMetrics
	ctrl       *gomock.Controller
}

const testSettingsTTL = 30 * time.Second

func setupSettingsResolver(t *testing.T) *settingsTestDeps {
	ctrl := gomock.NewController(t)
	d := &settingsTestDeps{
		repo:       mocks.NewMockSettingsRepository(ctrl),
		cache:      mocks.NewMockSettingsCache(ctrl),
		encSvc:     mocks.NewMockEncryptionService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		metrics:    mocks.NewMockMetrics(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewSettingsResolver(d.repo, d.cache, d.encSvc, d.transactor, d.metrics, testSettingsTTL, newTestLogger())
	return d
}

func cardRows() []domain.Setting {
	return []domain.Setting{
		{Category: "card", Key: domain.SettingEnabled, Value: "true"},
		{Category: "card", Key: domain.SettingSecretKey, Value: "enc:sk", Encrypted: true},
		{Category: "card", Key: domain.SettingWebhookSecret, Value: "enc:wh", Encrypted: true},
		{Category: "card", Key: domain.SettingPublishableKey, Value: "pk_test"},
	}
}

// ==================== GetGatewaySettings Tests ====================

func TestSettingsResolver_GetGatewaySettings_CacheHit(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := &domain.GatewaySettings{Gateway: domain.GatewayCard, Card: &domain.CardSettings{SecretKey: "sk"}}
	d.cache.EXPECT().Get(ctx, domain.GatewayCard).Return(cached, true, nil)
	d.metrics.EXPECT().SettingsCache(true)

	s, err := d.svc.GetGatewaySettings(ctx, domain.GatewayCard)
	require.NoError(t, err)
	assert.Same(t, cached, s)
}

func TestSettingsResolver_GetGatewaySettings_CacheMissLoadsAndDecrypts(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, domain.GatewayCard).Return(nil, false, nil)
	d.metrics.EXPECT().SettingsCache(false)
	d.repo.EXPECT().ListByCategory(ctx, "card").Return(cardRows(), nil)
	d.encSvc.EXPECT().Decrypt("enc:sk").Return("sk_live", nil)
	d.encSvc.EXPECT().Decrypt("enc:wh").Return("whsec", nil)
	d.cache.EXPECT().Set(ctx, domain.GatewayCard, gomock.Any(), testSettingsTTL).Return(nil)

	s, err := d.svc.CardSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk_live", s.SecretKey)
	assert.Equal(t, "whsec", s.WebhookSecret)
	assert.Equal(t, "pk_test", s.PublishableKey)
	assert.True(t, s.Enabled)
}

func TestSettingsResolver_GetGatewaySettings_CacheErrorFallsThrough(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, domain.GatewayRegional).Return(nil, false, errors.New("redis down"))
	d.metrics.EXPECT().SettingsCache(false)
	d.repo.EXPECT().ListByCategory(ctx, "regional").Return([]domain.Setting{
		{Key: domain.SettingStoreID, Value: "store1"},
		{Key: domain.SettingStorePassword, Value: "pass"},
		{Key: domain.SettingSandbox, Value: "true"},
	}, nil)
	d.cache.EXPECT().Set(ctx, domain.GatewayRegional, gomock.Any(), testSettingsTTL).Return(errors.New("redis down"))

	s, err := d.svc.RegionalSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "store1", s.StoreID)
	assert.True(t, s.Sandbox)
	assert.False(t, s.Enabled, "enabled defaults to false when unset")
}

func TestSettingsResolver_GetGatewaySettings_MissingKeyNotConfigured(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, domain.GatewayCard).Return(nil, false, nil)
	d.metrics.EXPECT().SettingsCache(false)
	d.repo.EXPECT().ListByCategory(ctx, "card").Return([]domain.Setting{
		{Key: domain.SettingEnabled, Value: "true"},
		{Key: domain.SettingSecretKey, Value: "sk"},
		{Key: domain.SettingWebhookSecret, Value: "   "},
	}, nil)
	// nothing is cached

	_, err := d.svc.GetGatewaySettings(ctx, domain.GatewayCard)
	assertAppError(t, err, "GW_001")
}

func TestSettingsResolver_GetGatewaySettings_DecryptFailure(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, domain.GatewayCard).Return(nil, false, nil)
	d.metrics.EXPECT().SettingsCache(false)
	d.repo.EXPECT().ListByCategory(ctx, "card").Return(cardRows(), nil)
	d.encSvc.EXPECT().Decrypt("enc:sk").Return("", errors.New("bad tag"))

	_, err := d.svc.GetGatewaySettings(ctx, domain.GatewayCard)
	assertAppError(t, err, "SYS_003")
}

func TestSettingsResolver_GetGatewaySettings_CODHasNoSettings(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	_, err := d.svc.GetGatewaySettings(context.Background(), domain.GatewayCOD)
	assertAppError(t, err, "GW_004")
}

// ==================== GetActivePaymentMethods Tests ====================

func TestSettingsResolver_GetActivePaymentMethods(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().ListByCategory(ctx, domain.SettingsCategoryCheckout).Return([]domain.Setting{
		{Key: domain.SettingEnabledMethods, Value: "regional, card ,cod,bogus"},
	}, nil)
	d.cache.EXPECT().Get(ctx, domain.GatewayRegional).Return(&domain.GatewaySettings{
		Gateway: domain.GatewayRegional, Regional: &domain.RegionalSettings{Enabled: true},
	}, true, nil)
	d.cache.EXPECT().Get(ctx, domain.GatewayCard).Return(&domain.GatewaySettings{
		Gateway: domain.GatewayCard, Card: &domain.CardSettings{Enabled: false},
	}, true, nil)
	d.metrics.EXPECT().SettingsCache(true).Times(2)

	methods, err := d.svc.GetActivePaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, domain.GatewayRegional, methods[0].Gateway)
	assert.Equal(t, domain.GatewayCOD, methods[1].Gateway)
	assert.Equal(t, "Cash on Delivery", methods[1].Label)
}

func TestSettingsResolver_GetActivePaymentMethods_UnconfiguredHidden(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().ListByCategory(ctx, domain.SettingsCategoryCheckout).Return(nil, nil)
	d.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false, nil).Times(2)
	d.metrics.EXPECT().SettingsCache(false).Times(2)
	d.repo.EXPECT().ListByCategory(ctx, "card").Return(nil, nil)
	d.repo.EXPECT().ListByCategory(ctx, "regional").Return(nil, nil)

	methods, err := d.svc.GetActivePaymentMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.PaymentMethodOption{{Gateway: domain.GatewayCOD, Label: "Cash on Delivery"}}, methods)
}

// ==================== UpdateGatewaySettings Tests ====================

func TestSettingsResolver_UpdateGatewaySettings(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	var written []domain.Setting

	d.encSvc.EXPECT().Encrypt("sk_new").Return("enc:sk_new", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.repo.EXPECT().Upsert(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, s domain.Setting) error {
			written = append(written, s)
			return nil
		}).Times(2)
	d.cache.EXPECT().Delete(ctx, domain.GatewayCard).Return(nil)

	err := d.svc.UpdateGatewaySettings(ctx, domain.GatewayCard, map[string]string{
		domain.SettingSecretKey: " sk_new ",
		domain.SettingEnabled:   "true",
	})
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, domain.Setting{Category: "card", Key: domain.SettingEnabled, Value: "true"}, written[0])
	assert.Equal(t, domain.Setting{Category: "card", Key: domain.SettingSecretKey, Value: "enc:sk_new", Encrypted: true}, written[1])
}

func TestSettingsResolver_UpdateGatewaySettings_Validation(t *testing.T) {
	tests := []struct {
		name    string
		gateway domain.GatewayTag
		values  map[string]string
		code    string
	}{
		{"unknown gateway", "paypal", map[string]string{"x": "y"}, "GW_004"},
		{"cod has no settings", domain.GatewayCOD, map[string]string{"x": "y"}, "GW_004"},
		{"empty", domain.GatewayCard, map[string]string{}, "PAY_002"},
		{"unknown key", domain.GatewayCard, map[string]string{"store_id": "x"}, "PAY_002"},
		{"bad bool", domain.GatewayRegional, map[string]string{"sandbox": "maybe"}, "PAY_002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupSettingsResolver(t)
			defer d.ctrl.Finish()

			err := d.svc.UpdateGatewaySettings(context.Background(), tt.gateway, tt.values)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestSettingsResolver_UpdateGatewaySettings_InvalidationFailure(t *testing.T) {
	d := setupSettingsResolver(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.repo.EXPECT().Upsert(ctx, tx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Delete(ctx, domain.GatewayRegional).Return(errors.New("redis down"))

	err := d.svc.UpdateGatewaySettings(ctx, domain.GatewayRegional, map[string]string{domain.SettingStoreID: "s2"})
	assertAppError(t, err, "SYS_001")
}

func TestParseMethodList(t *testing.T) {
	assert.Equal(t,
		[]domain.GatewayTag{domain.GatewayCard, domain.GatewayCOD},
		parseMethodList("CARD, cod, card, , paypal"))
	assert.Nil(t, parseMethodList(""))
}
