//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripflow/internal/domain/trip"
	"tripflow/internal/domain/workflow"
	"tripflow/internal/handler/api"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/usecase"
	"tripflow/internal/usecase/readmodel"
	usecasemock "tripflow/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TripHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockFlow *usecasemock.MockTripFlowUseCase
	handler  *api.TripHandler
}

func (s *TripHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFlow = usecasemock.NewMockTripFlowUseCase(s.mockCtrl)
	s.handler = api.NewTripHandler(s.mockFlow)

	s.router.POST("/trips/:id/resolve", s.handler.ResolveTripOffers)
	s.router.GET("/trips/:id/workflow", s.handler.GetWorkflowState)
	s.router.POST("/trips/:id/selection", s.handler.SelectOffer)
	s.router.POST("/trips/:id/reset", s.handler.ResetWorkflow)
}

func (s *TripHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTripHandlerSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}

func (s *TripHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func sampleSession() *readmodel.TripSessionRM {
	rm := &readmodel.TripSessionRM{
		TripID:         "atrip-65262230",
		Step:           workflow.StepQuotesUpdating,
		QuotesReceived: 2,
		QuotesExpected: 3,
		CreatedAt:      time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC),
	}
	rm.ApplyCompat()
	return rm
}

// ================================================================================
// ResolveTripOffers
// ================================================================================

func (s *TripHandlerTestSuite) TestResolveTripOffers() {
	s.Run("success", func() {
		result := &usecase.ResolveTripResult{
			Offers: []trip.FlightOffer{{
				QuoteID:         "aquote-1",
				RFQID:           "arfq-1",
				OperatorName:    "Alpha Jets",
				Price:           10000,
				Currency:        "USD",
				ResponseLatency: 30 * time.Minute,
				Status:          trip.StatusQuoted,
			}},
			TotalQuotes: 3,
			Session:     sampleSession(),
		}
		s.mockFlow.EXPECT().
			ResolveTripOffers(gomock.Any(), "atrip-65262230").
			Return(result, nil)

		w := s.perform(http.MethodPost, "/trips/atrip-65262230/resolve", nil)
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		offers := resp["offers"].([]any)
		s.Len(offers, 1)
		first := offers[0].(map[string]any)
		s.Equal("Alpha Jets", first["operatorName"])
		s.InDelta(30, first["responseTimeMinutes"], 0.001)
		s.Equal(float64(3), resp["totalQuotes"])

		session := resp["session"].(map[string]any)
		s.Equal("quotes_updating", session["currentStep"])
		s.Equal("in_progress", session["status"])
		s.Equal("quotes_updating", session["sessionStatus"])
	})

	s.Run("trip not found", func() {
		s.mockFlow.EXPECT().
			ResolveTripOffers(gomock.Any(), "atrip-missing").
			Return(nil, errs.Mark(errs.New("gone"), errs.ErrTripNotFound))

		w := s.perform(http.MethodPost, "/trips/atrip-missing/resolve", nil)
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("upstream auth maps to 502", func() {
		s.mockFlow.EXPECT().
			ResolveTripOffers(gomock.Any(), "atrip-1").
			Return(nil, errs.Mark(errs.New("401"), errs.ErrUpstreamAuth))

		w := s.perform(http.MethodPost, "/trips/atrip-1/resolve", nil)
		s.Equal(http.StatusBadGateway, w.Code)
	})

	s.Run("upstream unavailable maps to 503", func() {
		s.mockFlow.EXPECT().
			ResolveTripOffers(gomock.Any(), "atrip-1").
			Return(nil, errs.Mark(errs.New("503"), errs.ErrUpstreamUnavailable))

		w := s.perform(http.MethodPost, "/trips/atrip-1/resolve", nil)
		s.Equal(http.StatusServiceUnavailable, w.Code)
	})
}

// ================================================================================
// GetWorkflowState
// ================================================================================

func (s *TripHandlerTestSuite) TestGetWorkflowState() {
	s.Run("success", func() {
		s.mockFlow.EXPECT().
			GetWorkflowState(gomock.Any(), "atrip-65262230").
			Return(sampleSession(), nil)

		w := s.perform(http.MethodGet, "/trips/atrip-65262230/workflow", nil)
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("atrip-65262230", resp["tripId"])
		s.Equal(float64(2), resp["quotesReceived"])
	})

	s.Run("session not found", func() {
		s.mockFlow.EXPECT().
			GetWorkflowState(gomock.Any(), "atrip-missing").
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrSessionNotFound))

		w := s.perform(http.MethodGet, "/trips/atrip-missing/workflow", nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

// ================================================================================
// SelectOffer
// ================================================================================

func (s *TripHandlerTestSuite) TestSelectOffer() {
	s.Run("success", func() {
		s.mockFlow.EXPECT().
			SelectOffer(gomock.Any(), "atrip-1", usecase.OfferSelector{QuoteID: "aquote-390825418"}).
			Return(sampleSession(), nil)

		w := s.perform(http.MethodPost, "/trips/atrip-1/selection", map[string]any{"quote_id": "aquote-390825418"})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("quote id trimmed before use", func() {
		s.mockFlow.EXPECT().
			SelectOffer(gomock.Any(), "atrip-1", usecase.OfferSelector{QuoteID: "aquote-390825418"}).
			Return(sampleSession(), nil)

		w := s.perform(http.MethodPost, "/trips/atrip-1/selection", map[string]any{"quote_id": "  aquote-390825418  "})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rfq and lift index select an inline-priced offer", func() {
		s.mockFlow.EXPECT().
			SelectOffer(gomock.Any(), "atrip-1", usecase.OfferSelector{RFQID: "arfq-1", LiftIndex: 1}).
			Return(sampleSession(), nil)

		w := s.perform(http.MethodPost, "/trips/atrip-1/selection", map[string]any{"rfq_id": "arfq-1", "lift_index": 1})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("empty selector rejected", func() {
		w := s.perform(http.MethodPost, "/trips/atrip-1/selection", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("rfq without lift index rejected", func() {
		w := s.perform(http.MethodPost, "/trips/atrip-1/selection", map[string]any{"rfq_id": "arfq-1"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("offer not found", func() {
		s.mockFlow.EXPECT().
			SelectOffer(gomock.Any(), "atrip-1", usecase.OfferSelector{QuoteID: "aquote-999"}).
			Return(nil, errs.Mark(errs.New("gone"), errs.ErrOfferNotFound))

		w := s.perform(http.MethodPost, "/trips/atrip-1/selection", map[string]any{"quote_id": "aquote-999"})
		s.Equal(http.StatusNotFound, w.Code)
	})
}

// ================================================================================
// ResetWorkflow
// ================================================================================

func (s *TripHandlerTestSuite) TestResetWorkflow() {
	s.Run("success", func() {
		s.mockFlow.EXPECT().
			ResetWorkflow(gomock.Any(), "atrip-1", "trip_created").
			Return(sampleSession(), nil)

		w := s.perform(http.MethodPost, "/trips/atrip-1/reset", map[string]any{"step": "trip_created"})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid step", func() {
		s.mockFlow.EXPECT().
			ResetWorkflow(gomock.Any(), "atrip-1", "bogus").
			Return(nil, errs.Mark(errs.New("bad"), errs.ErrInvalidStep))

		w := s.perform(http.MethodPost, "/trips/atrip-1/reset", map[string]any{"step": "bogus"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing step rejected", func() {
		w := s.perform(http.MethodPost, "/trips/atrip-1/reset", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
