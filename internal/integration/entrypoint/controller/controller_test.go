package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/taxometer/backend/internal/application/store"
	"github.com/taxometer/backend/internal/application/usecase/dashboard"
	"github.com/taxometer/backend/internal/application/usecase/shift"
	"github.com/taxometer/backend/internal/domain/entity"
	"github.com/taxometer/backend/internal/integration/entrypoint/dto"
)

var moscow = time.FixedZone("MSK", 3*60*60)

type memoryGateway struct {
	shifts []entity.Shift
}

func (g *memoryGateway) Load(ctx context.Context, key string) ([]entity.Shift, error) {
	return g.shifts, nil
}

func (g *memoryGateway) Save(ctx context.Context, key string, shifts []entity.Shift) error {
	g.shifts = shifts
	return nil
}

func setupEngine(t *testing.T, load bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewShiftStore(&memoryGateway{}, store.Config{Key: "taxiShifts"})
	if load {
		s.Load(context.Background())
	}

	clock := func() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, moscow) }

	shifts := NewShiftController(
		shift.NewListShiftsUseCase(s),
		shift.NewCreateShiftUseCase(s),
		shift.NewGetShiftUseCase(s),
		shift.NewUpdateShiftUseCase(s),
		shift.NewDeleteShiftUseCase(s),
		shift.NewPreviewShiftUseCase(),
		moscow,
	)
	dash := NewDashboardController(
		dashboard.NewGetPeriodSummaryUseCase(s, clock),
		dashboard.NewGetChartSeriesUseCase(s, clock, dashboard.DefaultSeriesLengths()),
		dashboard.NewGetPeriodDetailUseCase(s, clock),
		dashboard.NewGetDataRangeUseCase(s),
		moscow,
	)
	health := NewHealthController("local", func() bool { return true }, s.IsLoaded)

	engine := gin.New()
	engine.GET("/health", health.Check)
	engine.GET("/shifts", shifts.List)
	engine.POST("/shifts", shifts.Create)
	engine.POST("/shifts/preview", shifts.Preview)
	engine.GET("/shifts/:id", shifts.Get)
	engine.PUT("/shifts/:id", shifts.Update)
	engine.DELETE("/shifts/:id", shifts.Delete)
	engine.GET("/dashboard/summary", dash.GetSummary)
	engine.GET("/dashboard/chart", dash.GetChart)
	engine.GET("/dashboard/detail", dash.GetDetail)
	engine.GET("/dashboard/range", dash.GetDataRange)
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	var response dto.ErrorResponse
	decode(t, w, &response)
	if response.Code != code {
		t.Errorf("expected code %s, got %s", code, response.Code)
	}
}

const workedExample = `{
	"date": "2026-10-14T06:00:00.000Z",
	"odometerStart": 1000, "odometerEnd": 1250,
	"rangeStart": 400, "rangeEnd": 180,
	"cardEarnings": 1000, "cashEarnings": 200, "bonuses": 50, "tips": 80,
	"fuelCost": 150, "yandexCommission": 120, "parkCommission": 30,
	"rentCost": 300, "deductRent": true, "selfEmployedTax": 40,
	"fines": [{"name": "parking", "amount": 100}]
}`

func createShift(t *testing.T, engine *gin.Engine, body string) dto.ShiftResponse {
	t.Helper()
	w := do(engine, http.MethodPost, "/shifts", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var response dto.ShiftResponse
	decode(t, w, &response)
	return response
}

func TestShiftController_CreateAndGet(t *testing.T) {
	engine := setupEngine(t, true)

	created := createShift(t, engine, workedExample)
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}
	if !created.Breakdown.Net.Equal(decimal.NewFromInt(590)) {
		t.Errorf("expected net 590, got %s", created.Breakdown.Net)
	}
	if !created.Breakdown.Expenses.Equal(decimal.NewFromInt(740)) {
		t.Errorf("expected expenses 740, got %s", created.Breakdown.Expenses)
	}
	if len(created.Fines) != 1 || created.Fines[0].ID == "" {
		t.Errorf("expected one fine with generated ID, got %+v", created.Fines)
	}
	if !created.Date.Equal(time.Date(2026, time.October, 14, 9, 0, 0, 0, moscow)) {
		t.Errorf("unexpected date %v", created.Date)
	}

	w := do(engine, http.MethodGet, "/shifts/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var fetched dto.ShiftResponse
	decode(t, w, &fetched)
	if fetched.ID != created.ID || fetched.CardEarnings != 1000 {
		t.Errorf("unexpected shift %+v", fetched)
	}
}

func TestShiftController_CreateDefaultsMissingAmounts(t *testing.T) {
	engine := setupEngine(t, true)

	created := createShift(t, engine, `{"date": "2026-10-14", "cardEarnings": 700}`)
	if !created.Breakdown.Net.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected net 700, got %s", created.Breakdown.Net)
	}
	if created.Fines == nil || len(created.Fines) != 0 {
		t.Errorf("expected empty fines, got %+v", created.Fines)
	}
	if !created.Date.Equal(time.Date(2026, time.October, 14, 0, 0, 0, 0, moscow)) {
		t.Errorf("expected midnight in configured zone, got %v", created.Date)
	}
}

func TestShiftController_CreateErrors(t *testing.T) {
	engine := setupEngine(t, true)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed body", `{"date": `, http.StatusBadRequest, "SHF-010003"},
		{"wrong type", `{"date": "2026-10-14", "cardEarnings": "lots"}`, http.StatusBadRequest, "SHF-010003"},
		{"missing date", `{"cardEarnings": 100}`, http.StatusBadRequest, "SHF-010002"},
		{"unparseable date", `{"date": "вчера"}`, http.StatusBadRequest, "SHF-010002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(engine, http.MethodPost, "/shifts", tt.body)
			expectError(t, w, tt.status, tt.code)
		})
	}
}

func TestShiftController_UpdateAndDelete(t *testing.T) {
	engine := setupEngine(t, true)
	created := createShift(t, engine, workedExample)

	w := do(engine, http.MethodPut, "/shifts/"+created.ID, `{"date": "2026-10-15", "cardEarnings": 90}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated dto.ShiftResponse
	decode(t, w, &updated)
	if updated.ID != created.ID {
		t.Errorf("expected ID to be kept, got %s", updated.ID)
	}
	if !updated.Breakdown.Net.Equal(decimal.NewFromInt(90)) {
		t.Errorf("expected net 90 after full replacement, got %s", updated.Breakdown.Net)
	}

	w = do(engine, http.MethodDelete, "/shifts/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	expectError(t, do(engine, http.MethodGet, "/shifts/"+created.ID, ""), http.StatusNotFound, "SHF-010001")
	expectError(t, do(engine, http.MethodDelete, "/shifts/"+created.ID, ""), http.StatusNotFound, "SHF-010001")
	expectError(t, do(engine, http.MethodPut, "/shifts/"+created.ID, `{"date": "2026-10-15"}`), http.StatusNotFound, "SHF-010001")
}

func TestShiftController_List(t *testing.T) {
	engine := setupEngine(t, true)
	createShift(t, engine, `{"date": "2026-10-12", "cardEarnings": 100}`)
	createShift(t, engine, `{"date": "2026-10-16", "cardEarnings": 300}`)
	createShift(t, engine, `{"date": "2026-10-14", "cardEarnings": 200}`)

	w := do(engine, http.MethodGet, "/shifts?limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var response dto.ShiftListResponse
	decode(t, w, &response)

	if response.Total != 3 || len(response.Shifts) != 2 {
		t.Fatalf("expected 2 of 3 shifts, got %d of %d", len(response.Shifts), response.Total)
	}
	if response.Shifts[0].CardEarnings != 300 || response.Shifts[1].CardEarnings != 200 {
		t.Errorf("expected newest first, got %v then %v", response.Shifts[0].CardEarnings, response.Shifts[1].CardEarnings)
	}

	w = do(engine, http.MethodGet, "/shifts?limit=many", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad limit, got %d", w.Code)
	}
}

func TestShiftController_Preview(t *testing.T) {
	engine := setupEngine(t, true)

	w := do(engine, http.MethodPost, "/shifts/preview", `{"cardEarnings": 1000, "tips": 50, "fuelCost": 200}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var breakdown dto.BreakdownResponse
	decode(t, w, &breakdown)
	if !breakdown.Net.Equal(decimal.NewFromInt(850)) {
		t.Errorf("expected net 850, got %s", breakdown.Net)
	}

	var list dto.ShiftListResponse
	decode(t, do(engine, http.MethodGet, "/shifts", ""), &list)
	if list.Total != 0 {
		t.Errorf("expected preview to save nothing, got %d shifts", list.Total)
	}
}

func TestControllers_NotLoaded(t *testing.T) {
	engine := setupEngine(t, false)

	expectError(t, do(engine, http.MethodGet, "/shifts", ""), http.StatusServiceUnavailable, "STG-010001")
	expectError(t, do(engine, http.MethodPost, "/shifts", workedExample), http.StatusServiceUnavailable, "STG-010001")
	expectError(t, do(engine, http.MethodGet, "/dashboard/summary?period=day", ""), http.StatusServiceUnavailable, "STG-010001")
}

func TestDashboardController_Summary(t *testing.T) {
	engine := setupEngine(t, true)
	createShift(t, engine, workedExample)
	createShift(t, engine, `{"date": "2026-10-18T10:00:00+03:00", "cardEarnings": 500}`)

	tests := []struct {
		name   string
		query  string
		net    int64
		shifts int
	}{
		{"today", "period=day", 500, 1},
		{"week", "period=week", 1090, 2},
		{"given day", "period=day&date=2026-10-14", 590, 1},
		{"month", "period=MONTH", 1090, 2},
		{"previous week", "period=week&date=2026-10-11", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(engine, http.MethodGet, "/dashboard/summary?"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			var response dto.PeriodSummaryResponse
			decode(t, w, &response)
			if !response.Net.Equal(decimal.NewFromInt(tt.net)) {
				t.Errorf("expected net %d, got %s", tt.net, response.Net)
			}
			if response.ShiftCount != tt.shifts {
				t.Errorf("expected %d shifts, got %d", tt.shifts, response.ShiftCount)
			}
		})
	}
}

func TestDashboardController_Errors(t *testing.T) {
	engine := setupEngine(t, true)

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing period", "/dashboard/summary", "DSH-010005"},
		{"invalid period", "/dashboard/summary?period=year", "DSH-010004"},
		{"invalid date", "/dashboard/summary?period=day&date=18.10.2026", "DSH-010006"},
		{"detail invalid date", "/dashboard/detail?period=week&date=tomorrow", "DSH-010006"},
		{"chart missing period", "/dashboard/chart", "DSH-010005"},
		{"chart length too large", "/dashboard/chart?period=day&length=400", "DSH-010007"},
		{"chart length negative", "/dashboard/chart?period=day&length=-1", "DSH-010007"},
		{"chart length not a number", "/dashboard/chart?period=day&length=week", "DSH-010007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, do(engine, http.MethodGet, tt.path, ""), http.StatusBadRequest, tt.code)
		})
	}
}

func TestDashboardController_Chart(t *testing.T) {
	engine := setupEngine(t, true)
	createShift(t, engine, workedExample)

	w := do(engine, http.MethodGet, "/dashboard/chart?period=week", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var response dto.ChartSeriesResponse
	decode(t, w, &response)

	if len(response.Buckets) != 4 {
		t.Fatalf("expected 4 weekly buckets, got %d", len(response.Buckets))
	}
	last := response.Buckets[3]
	if last.Label != "12-18" || !last.IsCurrent || !last.Net.Equal(decimal.NewFromInt(590)) {
		t.Errorf("unexpected current bucket %+v", last)
	}
	if !response.Headline.Net.Equal(decimal.NewFromInt(590)) {
		t.Errorf("expected headline 590, got %s", response.Headline.Net)
	}
	if !response.MaxNet.Equal(decimal.NewFromInt(590)) {
		t.Errorf("expected max net 590, got %s", response.MaxNet)
	}
}

func TestDashboardController_Detail(t *testing.T) {
	engine := setupEngine(t, true)
	createShift(t, engine, workedExample)
	createShift(t, engine, `{"date": "2026-10-16", "cardEarnings": 100}`)

	w := do(engine, http.MethodGet, "/dashboard/detail?period=week&date=2026-10-13", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var response dto.PeriodDetailResponse
	decode(t, w, &response)

	if response.Title != "Сводка за неделю" {
		t.Errorf("unexpected title %q", response.Title)
	}
	if response.Header != "12 окт - 18 окт" {
		t.Errorf("unexpected header %q", response.Header)
	}
	if len(response.Shifts) != 2 || response.Shifts[0].CardEarnings != 100 {
		t.Errorf("expected two shifts newest first, got %+v", response.Shifts)
	}
}

func TestDashboardController_DataRange(t *testing.T) {
	engine := setupEngine(t, true)

	w := do(engine, http.MethodGet, "/dashboard/range", "")
	var empty dto.DataRangeResponse
	decode(t, w, &empty)
	if empty.HasData || empty.OldestDate != nil || empty.TotalShifts != 0 {
		t.Errorf("expected no data, got %+v", empty)
	}

	createShift(t, engine, workedExample)
	createShift(t, engine, `{"date": "2026-10-16", "cardEarnings": 100}`)

	w = do(engine, http.MethodGet, "/dashboard/range", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var response dto.DataRangeResponse
	decode(t, w, &response)

	if !response.HasData || response.TotalShifts != 2 {
		t.Fatalf("unexpected range %+v", response)
	}
	if !response.OldestDate.Equal(time.Date(2026, time.October, 14, 6, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected oldest date %v", response.OldestDate)
	}
	if !response.NewestDate.Equal(time.Date(2026, time.October, 16, 0, 0, 0, 0, moscow)) {
		t.Errorf("unexpected newest date %v", response.NewestDate)
	}
}

func TestHealthController_Check(t *testing.T) {
	engine := setupEngine(t, true)

	w := do(engine, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var response HealthResponse
	decode(t, w, &response)
	if response.Backend != "local" || response.Storage != "connected" || !response.Loaded {
		t.Errorf("unexpected health %+v", response)
	}
}
