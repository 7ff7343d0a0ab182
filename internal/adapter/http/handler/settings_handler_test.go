package handler

import (
	"net/http"
	"testing"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports/mocks"
	"payment-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSettingsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsResolver(ctrl)
	h := NewSettingsHandler(settings)

	values := map[string]string{"secret_key": "sk_live_x", "webhook_secret": "whsec_x", "enabled": "true"}
	settings.EXPECT().UpdateGatewaySettings(gomock.Any(), domain.GatewayCard, values).Return(nil)

	c, w := newJSONContext(http.MethodPut, "/api/v1/admin/settings/card", "", map[string]interface{}{"settings": values})
	c.Params = gin.Params{{Key: "gateway", Value: "card"}}
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "card", data["gateway"])
	assert.Equal(t, float64(3), data["updated"])
	assert.NotContains(t, w.Body.String(), "sk_live_x")
}

func TestSettingsUpdate_UnknownGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewSettingsHandler(mocks.NewMockSettingsResolver(ctrl))

	c, w := newJSONContext(http.MethodPut, "/", "", map[string]interface{}{"settings": map[string]string{"a": "b"}})
	c.Params = gin.Params{{Key: "gateway", Value: "paypal"}}
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "GW_004", decodeBody(t, w)["error_code"])
}

func TestSettingsUpdate_EmptySettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewSettingsHandler(mocks.NewMockSettingsResolver(ctrl))

	c, w := newJSONContext(http.MethodPut, "/", "", map[string]interface{}{"settings": map[string]string{}})
	c.Params = gin.Params{{Key: "gateway", Value: "regional"}}
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsUpdate_ServiceValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsResolver(ctrl)
	h := NewSettingsHandler(settings)

	settings.EXPECT().UpdateGatewaySettings(gomock.Any(), domain.GatewayRegional, gomock.Any()).
		Return(apperror.Validation(`unknown regional setting "foo"`))

	c, w := newJSONContext(http.MethodPut, "/", "", map[string]interface{}{"settings": map[string]string{"foo": "bar"}})
	c.Params = gin.Params{{Key: "gateway", Value: "regional"}}
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_002", decodeBody(t, w)["error_code"])
}
