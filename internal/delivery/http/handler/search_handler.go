package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/search"
)

type SearchHandler struct {
	searchUseCase *search.SearchUseCase
}

func NewSearchHandler(searchUseCase *search.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

// Search handles POST /profiles/search
// @Summary Search profiles
// @Description Filtered, paginated profile search; authenticated callers get
// compatibility scores attached.
// @Tags search
// @Accept json
// @Produce json
// @Param request body search.SearchRequest true "Search filters"
// @Router /profiles/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req search.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}

	resp, err := h.searchUseCase.Search(c.Request.Context(), &req, actorFrom(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}
