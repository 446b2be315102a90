//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"arttoy-storefront/internal/handler/api"
	resdto "arttoy-storefront/internal/handler/dto/response"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"
	"arttoy-storefront/tests/common/builder"
	"arttoy-storefront/tests/common/httptest"
	"arttoy-storefront/tests/common/testutil"
	commandsmock "arttoy-storefront/tests/mock/commands"
	queriesmock "arttoy-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior for authenticated routes
	withToken := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if authHeader := c.GetHeader("Authorization"); authHeader != "" {
				c.Set("access_token", "member-token")
			}
			h(c)
		}
	}
	s.router.GET("/orders", withToken(s.handler.List))
	s.router.POST("/orders", withToken(s.handler.Place))
	s.router.POST("/orders/preview", withToken(s.handler.Preview))
	s.router.PUT("/orders/:id", withToken(s.handler.Amend))
	s.router.DELETE("/orders/:id", withToken(s.handler.Cancel))
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("success: returns the caller's ledger view", func() {
		views := []*queries.OrderView{builder.NewOrderBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), "member-token").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "member-token")

		var response []*resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(views[0].ToyID, response[0].ToyID)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestPreview() {
	b := builder.NewOrderBuilder().WithQuantity(2)
	reqBody := map[string]any{
		"itemId":   b.ToyID.String(),
		"quantity": 2,
		"delta":    1,
	}

	s.Run("success: returns the clamped quantity and eligibility", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), commands.PreviewParams{
			ToyID:    b.ToyID,
			Quantity: 2,
			Delta:    1,
		}).Return(&commands.AdmissionResult{
			Quantity:       3,
			AvailableQuota: 3,
			CanSubmit:      true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/preview", reqBody, "member-token")

		var response resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Quantity)
		s.True(response.CanSubmit)
	})

	s.Run("error: 400 Bad Request for an out-of-range delta", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("delta", 2))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/preview", body, "member-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown toy", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrToyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/preview", reqBody, "member-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		// no Preview expectation: the request must not reach the usecase
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/preview", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestPlace() {
	b := builder.NewOrderBuilder().WithQuantity(2)
	reqBody := b.BuildPlaceDTO()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Place(gomock.Any(), "member-token", b.BuildPlaceParams()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "member-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ToyID, response.ToyID)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request when quantity exceeds the ceiling", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 6))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "member-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity when the quota rejects the quantity", func() {
		s.mockCommands.EXPECT().Place(gomock.Any(), "member-token", b.BuildPlaceParams()).
			Return(nil, commands.ErrQuotaExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "member-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "quota")
	})

	s.Run("error: 422 Unprocessable Entity for a sold-out toy", func() {
		s.mockCommands.EXPECT().Place(gomock.Any(), "member-token", b.BuildPlaceParams()).
			Return(nil, commands.ErrNotOrderable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "member-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestAmend() {
	b := builder.NewOrderBuilder().WithQuantity(3)
	url := "/orders/" + b.ID.String()
	reqBody := map[string]any{"quantity": 3}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Amend(gomock.Any(), "member-token", b.ID, 3).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "member-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/orders/not-a-uuid", reqBody, "member-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown order", func() {
		s.mockCommands.EXPECT().Amend(gomock.Any(), "member-token", b.ID, 3).
			Return(nil, commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "member-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	b := builder.NewOrderBuilder()
	url := "/orders/" + b.ID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "member-token", b.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "member-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
