//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"arttoy-storefront/internal/domain/catalog"
	"arttoy-storefront/internal/handler/api"
	resdto "arttoy-storefront/internal/handler/dto/response"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"
	"arttoy-storefront/tests/common/builder"
	"arttoy-storefront/tests/common/httptest"
	commandsmock "arttoy-storefront/tests/mock/commands"
	queriesmock "arttoy-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/catalog", s.handler.List)

	// Mock middleware behavior for admin mutations
	withToken := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if authHeader := c.GetHeader("Authorization"); authHeader != "" {
				c.Set("access_token", "admin-token")
			}
			h(c)
		}
	}
	s.router.POST("/catalog", withToken(s.handler.Create))
	s.router.PUT("/catalog/:id", withToken(s.handler.Update))
	s.router.DELETE("/catalog/:id", withToken(s.handler.Delete))
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestList() {
	views := []*queries.ToyView{builder.NewToyBuilder().BuildView()}

	s.Run("success: empty q lists the whole catalog", func() {
		criteria, err := catalog.NewSearchCriteria("name", "", nil)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().Search(gomock.Any(), criteria).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog", nil, "")

		var response []*resdto.ToyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("success: q with field routes a filtered search", func() {
		criteria, err := catalog.NewSearchCriteria("sku", "BB-400", nil)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().Search(gomock.Any(), criteria).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog?field=sku&q=BB-400", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: minQuota composes with q", func() {
		minQuota := 2
		criteria, err := catalog.NewSearchCriteria("name", "bear", &minQuota)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().Search(gomock.Any(), criteria).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog?q=bear&minQuota=2", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for non-numeric minQuota", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog?q=bear&minQuota=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "minQuota")
	})

	s.Run("error: 400 Bad Request for unknown field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog?field=owner&q=x", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 502 Bad Gateway when the backend is down", func() {
		criteria, err := catalog.NewSearchCriteria("name", "", nil)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().Search(gomock.Any(), criteria).
			Return(nil, fmt.Errorf("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog", nil, "")
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestCreate() {
	b := builder.NewToyBuilder()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "admin-token", b.BuildParams()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/catalog", b.BuildDTO(), "admin-token")

		var response resdto.ToyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.SKU, response.SKU)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/catalog", b.BuildDTO(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity for invalid toy data", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "admin-token", gomock.Any()).
			Return(nil, commands.ErrInvalidToy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/catalog", b.BuildDTO(), "admin-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestUpdate() {
	b := builder.NewToyBuilder()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "admin-token", b.ID, b.BuildParams()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/catalog/"+b.ID.String(), b.BuildDTO(), "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/catalog/not-a-uuid", b.BuildDTO(), "admin-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown toy", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "admin-token", b.ID, b.BuildParams()).
			Return(nil, commands.ErrToyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/catalog/"+b.ID.String(), b.BuildDTO(), "admin-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestDelete() {
	toyID := uuid.New()
	url := "/catalog/" + toyID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "admin-token", toyID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict while orders reference the toy", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "admin-token", toyID).
			Return(commands.ErrToyReferenced).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "existing orders")
	})

	s.Run("error: 409 Conflict when the backend reports the same condition", func() {
		err := errs.Mark(errs.New("CONFLICT: toy has orders"), commands.ErrToyReferenced)
		s.mockCommands.EXPECT().Delete(gomock.Any(), "admin-token", toyID).
			Return(err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "existing orders")
	})

	s.Run("error: 404 Not Found for an unknown toy", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "admin-token", toyID).
			Return(commands.ErrToyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/catalog/not-a-uuid", nil, "admin-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
