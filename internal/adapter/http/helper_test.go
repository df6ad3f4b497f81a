package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"siged/internal/domain/document"
	"siged/internal/domain/domainerr"
	"siged/internal/domain/uow"
	"siged/internal/testutil/fixture"
	"siged/internal/usecase/application"
	"siged/internal/usecase/court"
	"siged/internal/usecase/detective"
	"siged/internal/usecase/level"
	"siged/internal/usecase/records"
	"siged/internal/usecase/report"
	"siged/internal/usecase/slip"
	"siged/internal/usecase/vip"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type recordingObserver struct {
	mu    sync.Mutex
	calls map[string]int
}

func (r *recordingObserver) Observe(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if de := domainerr.KindOf(err); de != nil {
			outcome = de.Error()
		}
	}
	r.calls[op+":"+outcome]++
}

func (r *recordingObserver) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[key]
}

// newTestAPI wires every handler on top of u with the clock fixed to
// 10/07/2024.
func newTestAPI(u uow.UnitOfWork) (*echo.Echo, *recordingObserver) {
	now := fixture.Clock(2024, time.July, 10)
	obs := &recordingObserver{}
	e := echo.New()
	e.HideBanner = true
	Register(e, Handlers{
		Root:         NewHandler(records.NewUsecase(u)),
		Applications: NewApplicationHandler(application.NewUsecase(u, now), obs),
		Detectives:   NewDetectiveHandler(detective.NewUsecase(u, now), obs),
		Levels:       NewLevelHandler(level.NewUsecase(u), obs),
		Reports:      NewReportHandler(report.NewUsecase(u), obs),
		Slips:        NewSlipHandler(slip.NewUsecase(u, now), obs),
		Courts:       NewCourtHandler(court.NewUsecase(u), obs),
		Vip:          NewVipHandler(vip.NewUsecase(u, now), obs),
	}, nil)
	return e, obs
}

func seededUoW() uow.UnitOfWork {
	doc := document.New()
	doc.Levels = fixture.Levels()
	u, _ := fixture.UoW(doc)
	return u
}

func mustJSON(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		r = mustJSON(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad error json: %v; raw=%s", err, rec.Body.String())
	}
	return out
}

func applicationBody(date string) map[string]any {
	return map[string]any{
		"national_id": "12345678Z",
		"first_name":  "Ana",
		"last_name":   "García",
		"address":     "Calle Mayor 1",
		"city":        "Madrid",
		"postal_code": "28013",
		"telephone":   "600123456",
		"date":        date,
		"equipment":   "Canon EOS R5 with 70-200mm lens",
		"cv":          "Ten years of surveillance experience",
	}
}
