package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/debtwise/payoff/internal/adapter/http/dto"
	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/usecase"
)

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func sampleDebt() *domain.Debt {
	return &domain.Debt{
		ID:                "debt-1",
		UserID:            anonymousUserID,
		Name:              "Visa",
		Balance:           decimal.NewFromInt(1000),
		AnnualRatePercent: decimal.NewFromInt(24),
		MinimumPayment:    decimal.NewFromInt(35),
		Active:            true,
	}
}

func TestDebtHandler_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		CreateDebt(gomock.Any(), usecase.CreateDebtInput{
			UserID:            anonymousUserID,
			Name:              "Visa",
			Balance:           decimal.NewFromInt(1000),
			AnnualRatePercent: decimal.NewFromInt(24),
			MinimumPayment:    decimal.NewFromInt(35),
		}).
		Return(sampleDebt(), nil)

	body, _ := json.Marshal(dto.CreateDebtRequest{
		Name:              "Visa",
		Balance:           decimal.NewFromInt(1000),
		AnnualRatePercent: decimal.NewFromInt(24),
		MinimumPayment:    decimal.NewFromInt(35),
	})

	req := httptest.NewRequest(http.MethodPost, "/debts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.DebtResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "debt-1" {
		t.Fatalf("expected debt ID debt-1, got %s", resp.ID)
	}
}

func TestDebtHandler_Create_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/debts", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	NewDebtHandler(NewMockDebtService(ctrl)).Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDebtHandler_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		CreateDebt(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrNegativeBalance)

	body, _ := json.Marshal(dto.CreateDebtRequest{
		Name:    "Visa",
		Balance: decimal.NewFromInt(-5),
	})

	req := httptest.NewRequest(http.MethodPost, "/debts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDebtHandler_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		GetDebt(gomock.Any(), anonymousUserID, "debt-1").
		Return(sampleDebt(), nil)

	req := httptest.NewRequest(http.MethodGet, "/debts/debt-1", nil)
	req = setChiURLParam(req, "id", "debt-1")
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDebtHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		GetDebt(gomock.Any(), anonymousUserID, "missing").
		Return(nil, domain.ErrDebtNotFound)

	req := httptest.NewRequest(http.MethodGet, "/debts/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDebtHandler_List_DefaultPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		ListDebts(gomock.Any(), usecase.ListDebtsInput{
			UserID: anonymousUserID,
			Limit:  20,
			Offset: 0,
		}).
		Return([]*domain.Debt{sampleDebt()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/debts", nil)
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ListDebtsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Debts) != 1 || resp.Total != 1 {
		t.Fatalf("expected one debt, got %+v", resp)
	}
}

func TestDebtHandler_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updated := sampleDebt()
	updated.MinimumPayment = decimal.NewFromInt(50)

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		UpdateDebt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input usecase.UpdateDebtInput) (*domain.Debt, error) {
			if input.ID != "debt-1" || input.UserID != anonymousUserID {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.MinimumPayment == nil || !input.MinimumPayment.Equal(decimal.NewFromInt(50)) {
				t.Fatalf("expected minimum payment 50, got %v", input.MinimumPayment)
			}
			if input.Name != nil {
				t.Fatalf("expected name to be omitted, got %v", *input.Name)
			}
			return updated, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/debts/debt-1", strings.NewReader(`{"minimum_payment":"50"}`))
	req = setChiURLParam(req, "id", "debt-1")
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDebtHandler_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDebtService(ctrl)
	svc.EXPECT().
		DeleteDebt(gomock.Any(), anonymousUserID, "debt-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/debts/debt-1", nil)
	req = setChiURLParam(req, "id", "debt-1")
	rec := httptest.NewRecorder()

	NewDebtHandler(svc).Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
