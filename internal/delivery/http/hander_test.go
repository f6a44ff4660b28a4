package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "vendorflow/internal/delivery/http"
	"vendorflow/internal/jobs"
	"vendorflow/internal/models"
	"vendorflow/internal/service"
)

type svcStub struct {
	getDesigners      func(req models.GetDesignersRequest) (models.DesignersPage, error)
	getDesigner       func(id int) (models.DesignerRecord, error)
	loadDesigner      func(req models.LoadDesignerRequest) (models.LoadDesignerResult, error)
	saveVendor        func(req models.SaveVendorRequest) (models.DesignerRecord, error)
	createVendorOrder func(req models.CreateVendorOrderRequest) (models.DesignerRecord, error)
	saveVendorOrder   func(ctx context.Context, req models.SaveVendorOrderRequest) (models.DesignerRecord, error)
	sendVendorOrder   func(ctx context.Context, req models.SendVendorOrderRequest) (models.SendVendorOrderResult, error)

	handle func(ctx context.Context, payload []byte) error
}

var _ service.Functions = (*svcStub)(nil)

func (s *svcStub) GetDesigners(_ context.Context, req models.GetDesignersRequest) (models.DesignersPage, error) {
	if s.getDesigners != nil {
		return s.getDesigners(req)
	}
	return models.DesignersPage{}, nil
}

func (s *svcStub) GetDesigner(_ context.Context, id int) (models.DesignerRecord, error) {
	if s.getDesigner != nil {
		return s.getDesigner(id)
	}
	return models.DesignerRecord{}, service.ErrNotFound
}

func (s *svcStub) LoadDesigner(_ context.Context, req models.LoadDesignerRequest) (models.LoadDesignerResult, error) {
	if s.loadDesigner != nil {
		return s.loadDesigner(req)
	}
	return models.LoadDesignerResult{}, nil
}

func (s *svcStub) SaveVendor(_ context.Context, req models.SaveVendorRequest) (models.DesignerRecord, error) {
	if s.saveVendor != nil {
		return s.saveVendor(req)
	}
	return models.DesignerRecord{}, nil
}

func (s *svcStub) CreateVendorOrder(_ context.Context, req models.CreateVendorOrderRequest) (models.DesignerRecord, error) {
	if s.createVendorOrder != nil {
		return s.createVendorOrder(req)
	}
	return models.DesignerRecord{}, nil
}

func (s *svcStub) SaveVendorOrder(ctx context.Context, req models.SaveVendorOrderRequest) (models.DesignerRecord, error) {
	if s.saveVendorOrder != nil {
		return s.saveVendorOrder(ctx, req)
	}
	return models.DesignerRecord{}, nil
}

func (s *svcStub) SendVendorOrder(ctx context.Context, req models.SendVendorOrderRequest) (models.SendVendorOrderResult, error) {
	if s.sendVendorOrder != nil {
		return s.sendVendorOrder(ctx, req)
	}
	return models.SendVendorOrderResult{}, nil
}

func (s *svcStub) HandleDesignerMessage(ctx context.Context, payload []byte) error {
	if s.handle != nil {
		return s.handle(ctx, payload)
	}
	return nil
}

func newRouter(t *testing.T, s service.Functions, softTimeout time.Duration) (http.Handler, *jobs.Runner) {
	t.Helper()
	st := jobs.NewMemoryStore(time.Hour)
	t.Cleanup(st.Close)
	runner := jobs.NewRunner(st)
	return httpdelivery.NewHandler(s, runner, softTimeout).InitRoutes(), runner
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}

func TestHandler_NoRoute(t *testing.T) {
	r, _ := newRouter(t, &svcStub{}, time.Second)

	w := do(r, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_GetDesigners_EmptyBodyUsesDefaults(t *testing.T) {
	var got models.GetDesignersRequest
	s := &svcStub{getDesigners: func(req models.GetDesignersRequest) (models.DesignersPage, error) {
		got = req
		return models.DesignersPage{Designers: []models.DesignerRecord{}, TotalPages: 0}, nil
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodPost, "/api/functions/getDesigners", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"result":{"designers":[],"totalPages":0}}`, w.Body.String())
	require.Equal(t, models.GetDesignersRequest{}, got)

	w = do(r, http.MethodPost, "/api/functions/getDesigners", `{"page":2,"sort":"name-desc","subpage":"sent","search":"47"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.GetDesignersRequest{Page: 2, Sort: "name-desc", Subpage: "sent", Search: "47"}, got)
}

func Test_GetDesigners_BadJSON_400(t *testing.T) {
	r, _ := newRouter(t, &svcStub{}, time.Second)

	w := do(r, http.MethodPost, "/api/functions/getDesigners", `{"page":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "decode")
}

func Test_LoadDesigner_OK(t *testing.T) {
	s := &svcStub{loadDesigner: func(req models.LoadDesignerRequest) (models.LoadDesignerResult, error) {
		require.Equal(t, 12, req.Designer.ID)
		require.Equal(t, "a.png", req.Designer.ImageFile)
		return models.LoadDesignerResult{Added: true}, nil
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodPost, "/api/functions/loadDesigner", `{"designer":{"id":12,"name":"Ada","image_file":"a.png"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"result":{"added":true}}`, w.Body.String())
}

func Test_SaveVendor_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: email: invalid address", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("designer 9: %w", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("save vendor: %w: connection reset", service.ErrPersistence), http.StatusInternalServerError},
		{fmt.Errorf("save order variant v1: %w: record changed concurrently", service.ErrConflict), http.StatusConflict},
	}
	for _, tc := range cases {
		s := &svcStub{saveVendor: func(models.SaveVendorRequest) (models.DesignerRecord, error) { return models.DesignerRecord{}, tc.err }}
		r, _ := newRouter(t, s, time.Second)

		w := do(r, http.MethodPost, "/api/functions/saveVendor", `{"data":{"designerId":9}}`)
		require.Equal(t, tc.code, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, tc.err.Error(), resp.Message)
	}
}

func Test_SaveVendor_PassesOptionalFields(t *testing.T) {
	var got models.SaveVendorRequest
	s := &svcStub{saveVendor: func(req models.SaveVendorRequest) (models.DesignerRecord, error) {
		got = req
		return models.DesignerRecord{Designer: models.Designer{DesignerID: req.DesignerID}}, nil
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodPost, "/api/functions/saveVendor", `{"data":{"designerId":3,"vendorId":"v1","email":"","waitTime":"12"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"designerId":3`)

	require.Equal(t, "v1", got.VendorID)
	require.NotNil(t, got.Email)
	require.Empty(t, *got.Email)
	require.Nil(t, got.Name)
	require.True(t, got.WaitTime.Set)
	require.Equal(t, 12, *got.WaitTime.Value)
}

func Test_SaveVendorOrder_FinishesInTime_200(t *testing.T) {
	s := &svcStub{saveVendorOrder: func(_ context.Context, req models.SaveVendorOrderRequest) (models.DesignerRecord, error) {
		require.Equal(t, "o1", req.OrderID)
		require.Len(t, req.VariantsData, 1)
		require.Equal(t, 4, *req.VariantsData[0].Received)
		return models.DesignerRecord{Designer: models.Designer{DesignerID: req.DesignerID, Name: "Ada"}}, nil
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodPost, "/api/functions/saveVendorOrder",
		`{"data":{"designerId":1,"orderId":"o1","variantsData":[{"objectId":"v1","received":4}],"message":"hi"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result models.DesignerRecord `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Ada", resp.Result.Name)
}

func Test_SendVendorOrder_SlowJob_202ThenPoll(t *testing.T) {
	release := make(chan struct{})
	s := &svcStub{sendVendorOrder: func(ctx context.Context, req models.SendVendorOrderRequest) (models.SendVendorOrderResult, error) {
		<-release
		if ctx.Err() != nil {
			return models.SendVendorOrderResult{}, ctx.Err()
		}
		return models.SendVendorOrderResult{SuccessMessage: "Vendor order ADA1 sent to ada@example.com", Errors: []string{}}, nil
	}}
	r, runner := newRouter(t, s, 20*time.Millisecond)

	w := do(r, http.MethodPost, "/api/functions/sendVendorOrder", `{"data":{"designerId":1,"orderId":"o1","message":"m"}}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	var pending struct {
		JobID   string `json:"jobId"`
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.NotEmpty(t, pending.JobID)
	require.Equal(t, "pending", pending.Status)
	require.Equal(t, "still processing", pending.Message)

	w = do(r, http.MethodGet, "/api/jobs/"+pending.JobID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"pending"`)

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, runner.Wait(ctx))

	w = do(r, http.MethodGet, "/api/jobs/"+pending.JobID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var job jobs.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	require.Equal(t, jobs.StatusDone, job.Status)
	require.Equal(t, "sendVendorOrder", job.Name)
	require.Contains(t, string(job.Result), "sent to ada@example.com")
}

func Test_SendVendorOrder_DeliveryFailure_500(t *testing.T) {
	s := &svcStub{sendVendorOrder: func(context.Context, models.SendVendorOrderRequest) (models.SendVendorOrderResult, error) {
		return models.SendVendorOrderResult{}, fmt.Errorf("send vendor order ADA1: %w: %w", service.ErrDelivery, errors.New("smtp 554"))
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodPost, "/api/functions/sendVendorOrder", `{"data":{"designerId":1,"orderId":"o1"}}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "smtp 554")
}

func Test_SendVendorOrder_Validation_400(t *testing.T) {
	s := &svcStub{sendVendorOrder: func(context.Context, models.SendVendorOrderRequest) (models.SendVendorOrderResult, error) {
		return models.SendVendorOrderResult{}, fmt.Errorf("%w: OrderID: required", service.ErrValidation)
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodPost, "/api/functions/sendVendorOrder", `{"data":{"designerId":1}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_GetDesigner(t *testing.T) {
	s := &svcStub{getDesigner: func(id int) (models.DesignerRecord, error) {
		if id != 5 {
			return models.DesignerRecord{}, fmt.Errorf("designer %d: %w", id, service.ErrNotFound)
		}
		return models.DesignerRecord{Designer: models.Designer{DesignerID: 5, Name: "Five"}, Vendors: []models.VendorRecord{}}, nil
	}}
	r, _ := newRouter(t, s, time.Second)

	w := do(r, http.MethodGet, "/api/designers/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Five"`)

	require.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/designers/6", "").Code)
	require.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/designers/abc", "").Code)
}

func Test_GetJob_NotFound_404(t *testing.T) {
	r, _ := newRouter(t, &svcStub{}, time.Second)

	w := do(r, http.MethodGet, "/api/jobs/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "job not found")
}

func Test_Metrics_Exposed(t *testing.T) {
	r, _ := newRouter(t, &svcStub{}, time.Second)

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}
