package domain

import (
	"net/url"
	"strings"
)

// SiteTitle holds the default page title and the template used to derive page titles.
type SiteTitle struct {
	Default  string `json:"default" yaml:"default"`
	Template string `json:"template" yaml:"template"`
}

// SiteIcon is a favicon entry.
type SiteIcon struct {
	URL  string `json:"url" yaml:"url"`
	Href string `json:"href" yaml:"href"`
}

// SiteIcons groups the icon sets of the site.
type SiteIcons struct {
	Icon []SiteIcon `json:"icon" yaml:"icon"`
}

// SocialImage is an image used by social previews.
type SocialImage struct {
	URL string `json:"url" yaml:"url"`
}

// OpenGraph describes the Open Graph preview.
type OpenGraph struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Images      []SocialImage `json:"images" yaml:"images"`
}

// TwitterCard describes the Twitter card preview.
type TwitterCard struct {
	Card        string        `json:"card" yaml:"card"`
	Creator     string        `json:"creator" yaml:"creator"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Images      []SocialImage `json:"images" yaml:"images"`
}

// SiteMetadata is the site-wide metadata record. It is built once and never mutated.
type SiteMetadata struct {
	Title        SiteTitle   `json:"title" yaml:"title"`
	Description  string      `json:"description" yaml:"description"`
	Icons        SiteIcons   `json:"icons" yaml:"icons"`
	OpenGraph    OpenGraph   `json:"openGraph" yaml:"open_graph"`
	Twitter      TwitterCard `json:"twitter" yaml:"twitter"`
	MetadataBase string      `json:"metadataBase" yaml:"metadata_base"`
}

// PageTitle returns the title for a page: the default title when page is empty,
// otherwise the template with %s replaced by page.
func (m SiteMetadata) PageTitle(page string) string {
	if page == "" || m.Title.Template == "" {
		return m.Title.Default
	}
	return strings.Replace(m.Title.Template, "%s", page, 1)
}

// ResolveURL resolves ref against MetadataBase. Absolute refs and refs that
// cannot be parsed are returned unchanged.
func (m SiteMetadata) ResolveURL(ref string) string {
	base, err := url.Parse(m.MetadataBase)
	if err != nil || base.Scheme == "" {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	return base.ResolveReference(u).String()
}

// WithAbsoluteImages returns a copy of m whose Open Graph and Twitter image
// URLs are resolved against MetadataBase. m itself is left untouched.
func (m SiteMetadata) WithAbsoluteImages() SiteMetadata {
	m.OpenGraph.Images = m.resolveImages(m.OpenGraph.Images)
	m.Twitter.Images = m.resolveImages(m.Twitter.Images)
	return m
}

func (m SiteMetadata) resolveImages(images []SocialImage) []SocialImage {
	if images == nil {
		return nil
	}
	out := make([]SocialImage, len(images))
	for i, img := range images {
		out[i] = SocialImage{URL: m.ResolveURL(img.URL)}
	}
	return out
}

// Perk is a benefit card.
type Perk struct {
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Info  string `json:"info" yaml:"info"`
}

// Feature is a product feature card.
type Feature struct {
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Info  string `json:"info" yaml:"info"`
}

// PricingCard is one pricing tier.
type PricingCard struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"`
	Duration    string   `json:"duration" yaml:"duration"`
	Highlight   string   `json:"highlight" yaml:"highlight"`
	ButtonText  string   `json:"buttonText" yaml:"button_text"`
	Features    []string `json:"features" yaml:"features"`
	PriceID     string   `json:"priceId" yaml:"price_id"`
}

// BentoCard is a tile of the bento grid.
type BentoCard struct {
	Title  string `json:"title" yaml:"title"`
	Info   string `json:"info" yaml:"info"`
	ImgSrc string `json:"imgSrc" yaml:"img_src"`
	Alt    string `json:"alt" yaml:"alt"`
}

// Review is a customer testimonial.
type Review struct {
	Name     string `json:"name" yaml:"name"`
	Username string `json:"username" yaml:"username"`
	Body     string `json:"body" yaml:"body"`
}

// Content holds every content list. Slice order is render order.
type Content struct {
	Perks        []Perk        `json:"perks" yaml:"perks"`
	Features     []Feature     `json:"features" yaml:"features"`
	PricingCards []PricingCard `json:"pricingCards" yaml:"pricing_cards"`
	BentoCards   []BentoCard   `json:"bentoCards" yaml:"bento_cards"`
	Reviews      []Review      `json:"reviews" yaml:"reviews"`
}

// ContentStore serves the read-only site metadata and content lists.
type ContentStore interface {
	Metadata() SiteMetadata
	Content() Content
}
