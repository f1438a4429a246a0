package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"gestao_integrada/internal/adapter/http/handlers/mocks"
	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWorkOrderRouter(uc usecase.IWorkOrderUseCase) *gin.Engine {
	h := NewWorkOrderHandler(uc)
	r := gin.New()
	r.POST("/v1/work-orders", h.CreateWorkOrder)
	r.GET("/v1/work-orders", h.ListWorkOrders)
	r.PATCH("/v1/work-orders/report", h.UpdateReports)
	return r
}

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"quote_visual_id":"45361-1-10032024","art_region":"SP","art_number":"12345"}`
	wantInput := usecase.CreateWorkOrderInput{QuoteVisualID: "45361-1-10032024", ARTRegion: "SP", ARTNumber: "12345"}

	t.Run("missing quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := doJSON(newWorkOrderRouter(mocks.NewMockIWorkOrderUseCase(ctrl)), http.MethodPost, "/v1/work-orders", `{"art_pending":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errCases := []struct {
		name string
		err  error
		code int
	}{
		{"not eligible", usecase.ErrQuoteNotEligible, http.StatusConflict},
		{"quote missing", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"bad art", usecase.ErrInvalidART, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIWorkOrderUseCase(ctrl)
			uc.EXPECT().CreateWorkOrder(gomock.Any(), wantInput).Return(entities.WorkOrder{}, tc.err)

			w := doJSON(newWorkOrderRouter(uc), http.MethodPost, "/v1/work-orders", body)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("partial conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().CreateWorkOrder(gomock.Any(), wantInput).Return(
			entities.WorkOrder{ID: "1710165900", SourceQuoteID: "45361-1-10032024"},
			&usecase.ConversionSyncError{WorkOrderID: "1710165900", QuoteVisualID: "45361-1-10032024", Err: errors.New("quota")},
		)

		w := doJSON(newWorkOrderRouter(uc), http.MethodPost, "/v1/work-orders", body)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var res struct {
			Code      string `json:"code"`
			WorkOrder struct {
				ID string `json:"id"`
			} `json:"work_order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if res.Code != "QUOTE_STATUS_SYNC_FAILED" || res.WorkOrder.ID != "1710165900" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().CreateWorkOrder(gomock.Any(), wantInput).Return(entities.WorkOrder{ID: "1710165900", ARTCode: "SP-12345"}, nil)

		w := doJSON(newWorkOrderRouter(uc), http.MethodPost, "/v1/work-orders", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_ListWorkOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ListWorkOrders(gomock.Any(), entities.DefaultReportQueue).Return([]entities.WorkOrder{{ID: "1"}}, nil)

		w := doJSON(newWorkOrderRouter(uc), http.MethodGet, "/v1/work-orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("blank filter falls back to default queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ListWorkOrders(gomock.Any(), entities.DefaultReportQueue).Return(nil, nil)

		w := doJSON(newWorkOrderRouter(uc), http.MethodGet, "/v1/work-orders?report_status=", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ListWorkOrders(gomock.Any(), []entities.ReportStatus{entities.ReportStatusCorrected, entities.ReportStatusFinalized}).Return(nil, nil)

		w := doJSON(newWorkOrderRouter(uc), http.MethodGet, "/v1/work-orders?report_status=CORRECTED&report_status=FINALIZED", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ListWorkOrders(gomock.Any(), gomock.Nil()).Return(nil, nil)

		w := doJSON(newWorkOrderRouter(uc), http.MethodGet, "/v1/work-orders?all=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ListWorkOrders(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidReportStatus)

		w := doJSON(newWorkOrderRouter(uc), http.MethodGet, "/v1/work-orders?report_status=DONE", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_UpdateReports(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := doJSON(newWorkOrderRouter(mocks.NewMockIWorkOrderUseCase(ctrl)), http.MethodPatch, "/v1/work-orders/report", `{"edits":[{"report_status":"CORRECTED"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().BulkUpdateReportFields(gomock.Any(), []entities.ReportEdit{
			{ID: "1", ReportStatus: entities.ReportStatusCorrected, PDFLink: "https://x/r.pdf", AssignedTechnician: "Ana"},
			{ID: "999", ReportStatus: entities.ReportStatusFinalized},
		}).Return(1, nil)

		w := doJSON(newWorkOrderRouter(uc), http.MethodPatch, "/v1/work-orders/report",
			`{"edits":[{"id":"1","report_status":"CORRECTED","pdf_link":"https://x/r.pdf","assigned_technician":"Ana"},{"id":"999","report_status":"FINALIZED"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"applied":1}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
