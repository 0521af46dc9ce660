package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/adapter/http/dto"
	"github.com/debtwise/payoff/tests/testutil"
)

func TestCompareStrategiesFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	testDB.CreateTestDebt(ctx, "anonymous", "Card A",
		decimal.NewFromInt(3000), decimal.NewFromInt(25), decimal.NewFromInt(90))
	testDB.CreateTestDebt(ctx, "anonymous", "Car loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(5), decimal.NewFromInt(50))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/compare", bytes.NewReader([]byte(`{"extra_payment":"150"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var comparison dto.ComparisonResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &comparison); err != nil {
		t.Fatalf("failed to decode comparison: %v", err)
	}

	// With a high-rate large debt in the mix, avalanche wins.
	if comparison.Recommended != "avalanche" {
		t.Errorf("expected avalanche recommendation, got %s", comparison.Recommended)
	}
	if comparison.Savings.IsNegative() {
		t.Errorf("savings must never be negative, got %s", comparison.Savings)
	}
	if !comparison.Avalanche.PaidOff || !comparison.Snowball.PaidOff {
		t.Errorf("both strategies should pay off: %+v", comparison)
	}
}

func TestTimelineFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	testDB.CreateTestDebt(ctx, "anonymous", "Card",
		decimal.NewFromInt(1000), decimal.NewFromInt(12), decimal.NewFromInt(90))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/timeline", bytes.NewReader([]byte(`{"extra_payment":"0","strategy":"minimum","months":6}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var timeline dto.TimelineResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &timeline); err != nil {
		t.Fatalf("failed to decode timeline: %v", err)
	}

	if len(timeline.Points) != 6 {
		t.Fatalf("expected 6 projection points, got %d", len(timeline.Points))
	}
	if timeline.Completed {
		t.Error("a 1000 balance does not clear in 6 months at a 90 minimum")
	}

	// Balances decline month over month.
	for i := 1; i < len(timeline.Points); i++ {
		if timeline.Points[i].TotalBalance.GreaterThan(timeline.Points[i-1].TotalBalance) {
			t.Errorf("balance increased from month %d to %d", i, i+1)
		}
	}
}
