package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"surface_rejuvenators/internal/adapter/http/handlers/mocks"
	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPublicQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewPublicQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:job_id", h.GetQuote)

		uc.EXPECT().PublicQuote(gomock.Any(), "SR-9999").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/SR-9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success hides the job sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewPublicQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:job_id", h.GetQuote)

		uc.EXPECT().PublicQuote(gomock.Any(), "SR-1001").Return(entities.Job{
			ID:       "SR-1001",
			Customer: entities.Customer{Name: "John Smith", Address: "12 Elm St"},
			Status:   entities.JobStatusAwaitingApproval,
			JobSheet: entities.JobSheet{Notes: "gate code 4411"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/SR-1001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, leaked := resp["job_sheet"]; leaked {
			t.Error("job sheet leaked onto the public quote page")
		}
	})
}

func TestPublicQuoteHandler_PreviewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIApprovalUseCase(ctrl)
	h := NewPublicQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/public/quotes/:job_id/preview", h.PreviewQuote)

	uc.EXPECT().Preview(gomock.Any(), "SR-1001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, selections entities.CustomerSelections) (usecase.QuoteBreakdown, error) {
			if selections["item-1"].TierID != "tier-std" {
				t.Errorf("got selections %+v", selections)
			}
			return usecase.QuoteBreakdown{ItemPrices: map[string]float64{"item-1": 504}, FinalPrice: 504, Complete: true}, nil
		})

	body := `{"selections":{"item-1":{"tier_id":"tier-std"}}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/SR-1001/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["final_price"] != 504.0 {
		t.Errorf("got final_price %v", resp["final_price"])
	}
	if resp["complete"] != true {
		t.Errorf("got complete %v", resp["complete"])
	}
}

func TestPublicQuoteHandler_ApproveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete selections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewPublicQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/public/quotes/:job_id/approve", h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "SR-1001", gomock.Any(), "John Smith").Return(entities.Job{}, usecase.ErrSelectionsIncomplete)

		body := `{"selections":{"item-1":{"tier_id":""}},"signature":"John Smith"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/SR-1001/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewPublicQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/public/quotes/:job_id/approve", h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "SR-1001", gomock.Any(), "").Return(entities.Job{}, usecase.ErrSignatureRequired)

		body := `{"selections":{"item-1":{"tier_id":"tier-std"}}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/SR-1001/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewPublicQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/public/quotes/:job_id/approve", h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "SR-1001", gomock.Any(), "John Smith").Return(entities.Job{
			ID:                "SR-1001",
			Status:            entities.JobStatusScheduled,
			CustomerSignature: "John Smith",
		}, nil)

		body := `{"selections":{"item-1":{"tier_id":"tier-std","add_on_ids":["addon-plantguard"]}},"signature":"John Smith"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/SR-1001/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["approved"] != true {
			t.Errorf("got approved %v", resp["approved"])
		}
	})
}
