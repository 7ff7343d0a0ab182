package handler

import (
	"net/http"
	"testing"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports/mocks"
	"payment-settlement/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupCODHandler(t *testing.T) (*CODHandler, *mocks.MockCODService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCODService(ctrl)
	return NewCODHandler(svc), svc
}

func TestCODGet(t *testing.T) {
	h, svc := setupCODHandler(t)

	svc.EXPECT().Get(gomock.Any(), "ord-1").Return(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}, nil)

	c, w := newJSONContext(http.MethodGet, "/", "ord-1", nil)
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", decodeData(t, w)["status"])
}

func TestCODRecordAttempt_Failed(t *testing.T) {
	h, svc := setupCODHandler(t)

	reason := "customer absent"
	svc.EXPECT().RecordDeliveryAttempt(gomock.Any(), "ord-1", false, reason).Return(&domain.CODTracking{
		OrderID:          "ord-1",
		Status:           domain.CODFailed,
		DeliveryAttempts: 1,
		FailureReason:    &reason,
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/", "ord-1", map[string]interface{}{"success": false, "reason": reason})
	h.RecordAttempt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "failed", data["status"])
	assert.Equal(t, float64(1), data["delivery_attempts"])
}

func TestCODRecordAttempt_RequiresOutcome(t *testing.T) {
	h, _ := setupCODHandler(t)

	c, w := newJSONContext(http.MethodPost, "/", "ord-1", map[string]interface{}{"reason": "?"})
	h.RecordAttempt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCODCollect(t *testing.T) {
	h, svc := setupCODHandler(t)

	ref := "COD-01HF000000000000000000000"
	svc.EXPECT().MarkCollected(gomock.Any(), "ord-1", "rider-3", int64(5000)).Return(&domain.CODTracking{
		OrderID:       "ord-1",
		Status:        domain.CODCollected,
		CollectionRef: &ref,
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/", "ord-1", map[string]interface{}{"collected_by": "rider-3", "amount": 5000})
	h.Collect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ref, decodeData(t, w)["collection_ref"])
}

func TestCODCollect_InvalidTransition(t *testing.T) {
	h, svc := setupCODHandler(t)

	svc.EXPECT().MarkCollected(gomock.Any(), "ord-1", "rider-3", int64(5000)).
		Return(nil, apperror.ErrInvalidState("collect cash", "returned"))

	c, w := newJSONContext(http.MethodPost, "/", "ord-1", map[string]interface{}{"collected_by": "rider-3", "amount": 5000})
	h.Collect(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ORD_002", decodeBody(t, w)["error_code"])
}

func TestCODCollect_RequiresAmount(t *testing.T) {
	h, _ := setupCODHandler(t)

	c, w := newJSONContext(http.MethodPost, "/", "ord-1", map[string]interface{}{"collected_by": "rider-3"})
	h.Collect(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCODReturn(t *testing.T) {
	h, svc := setupCODHandler(t)

	svc.EXPECT().MarkReturned(gomock.Any(), "ord-1").Return(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODReturned}, nil)

	c, w := newJSONContext(http.MethodPost, "/", "ord-1", nil)
	h.Return(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "returned", decodeData(t, w)["status"])
}
