package controllers

import (
	"net/http"

	"businessghat/internal/delivery/http/helpers"
	"businessghat/internal/domain"
)

// SiteMetadataSuccessResponse is the success envelope for GET /site.
type SiteMetadataSuccessResponse struct {
	Data  domain.SiteMetadata `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ContentSuccessResponse is the success envelope for GET /content.
type ContentSuccessResponse struct {
	Data  domain.Content    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SiteController struct {
	Store domain.ContentStore
}

func NewSiteController(store domain.ContentStore) *SiteController {
	return &SiteController{Store: store}
}

// GetMetadata godoc
// @Summary Get site metadata
// @Description Returns title, description, icons and social preview data. Social image URLs are absolute, resolved against metadataBase. With ?page= the title for that page is added as page_title.
// @Tags site
// @Produce json
// @Param page query string false "Page name used to derive page_title"
// @Success 200 {object} controllers.SiteMetadataSuccessResponse
// @Router /site [get]
func (c *SiteController) GetMetadata(w http.ResponseWriter, r *http.Request) {
	m := c.Store.Metadata().WithAbsoluteImages()
	page := r.URL.Query().Get("page")
	if page == "" {
		helpers.WriteJSONSuccess(w, http.StatusOK, m)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, struct {
		domain.SiteMetadata
		PageTitle string `json:"page_title"`
	}{m, m.PageTitle(page)})
}

// GetContent godoc
// @Summary Get all content lists
// @Description Returns perks, features, pricing cards, bento cards and reviews in display order.
// @Tags site
// @Produce json
// @Success 200 {object} controllers.ContentSuccessResponse
// @Router /content [get]
func (c *SiteController) GetContent(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.Content())
}

// GetContentSection godoc
// @Summary Get one content list
// @Description Returns a single content list in display order.
// @Tags site
// @Produce json
// @Param section path string true "perks, features, pricing-cards, bento-cards or reviews"
// @Success 200 {object} helpers.APIResponse "data contains the list"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /content/{section} [get]
func (c *SiteController) GetContentSection(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	content := c.Store.Content()

	var data any
	switch section {
	case "perks":
		data = content.Perks
	case "features":
		data = content.Features
	case "pricing-cards":
		data = content.PricingCards
	case "bento-cards":
		data = content.BentoCards
	case "reviews":
		data = content.Reviews
	default:
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "unknown content section: "+section)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, data)
}
