package api

import (
	"net/http"
	"strconv"

	"arttoy-storefront/internal/domain/catalog"
	reqdto "arttoy-storefront/internal/handler/dto/request"
	resdto "arttoy-storefront/internal/handler/dto/response"
	"arttoy-storefront/internal/handler/middleware"
	"arttoy-storefront/internal/infra"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List or search the catalog
// @Description Empty q lists everything; field selects name or sku matching. minQuota only applies together with q.
// @Tags catalog
// @Produce json
// @Param field query string false "Search field: name or sku" default(name)
// @Param q query string false "Search text"
// @Param minQuota query int false "Minimum available quota (ignored without q)"
// @Success 200 {array} resdto.ToyResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	field := c.DefaultQuery("field", string(catalog.SearchByName))
	text := c.Query("q")

	var minQuota *int
	if raw := c.Query("minQuota"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid minQuota value",
			})
			return
		}
		minQuota = &n
	}

	criteria, err := catalog.NewSearchCriteria(field, text, minQuota)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search criteria",
		})
		return
	}

	toys, err := h.catalogQueries.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": retrievalMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromToyViews(toys))
}

// @Summary Create a toy
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveToyRequest true "Toy data"
// @Success 201 {object} resdto.ToyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /catalog [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.SaveToyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.catalogCommands.Create(c.Request.Context(), token, req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromToyView(created))
}

// @Summary Update a toy
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Toy ID"
// @Param request body reqdto.SaveToyRequest true "Toy data"
// @Success 200 {object} resdto.ToyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid toy ID format",
		})
		return
	}

	var req reqdto.SaveToyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.catalogCommands.Update(c.Request.Context(), token, id, req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromToyView(updated))
}

// @Summary Delete a toy
// @Description Refuses while any order still references the toy; the backend re-checks at delete time.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Toy ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /catalog/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid toy ID format",
		})
		return
	}

	if err := h.catalogCommands.Delete(c.Request.Context(), token, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrToyReferenced):
		// Same answer whether the local guard or the backend said no.
		c.JSON(http.StatusConflict, gin.H{
			"error": "Toy has existing orders and cannot be deleted",
		})
	case errs.Is(err, commands.ErrToyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Toy not found",
		})
	case errs.Is(err, commands.ErrInvalidToy):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid toy data",
		})
	case infra.IsKind(err, infra.KindUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
	case infra.IsKind(err, infra.KindForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": retrievalMessage(err),
		})
	}
}

// retrievalMessage prefers the backend-provided message over a generic one.
func retrievalMessage(err error) string {
	if msg := infra.MessageOf(err); msg != "" {
		return msg
	}
	return "Catalog service is unavailable"
}
