package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteMetadata_PageTitle(t *testing.T) {
	m := SiteMetadata{Title: SiteTitle{Default: "Ghat", Template: "%s | Ghat"}}

	tests := []struct {
		name string
		page string
		want string
	}{
		{"empty page uses default", "", "Ghat"},
		{"page uses template", "Pricing", "Pricing | Ghat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.PageTitle(tt.page))
		})
	}

	noTemplate := SiteMetadata{Title: SiteTitle{Default: "Ghat"}}
	assert.Equal(t, "Ghat", noTemplate.PageTitle("Pricing"))
}

func TestSiteMetadata_ResolveURL(t *testing.T) {
	m := SiteMetadata{MetadataBase: "https://example.com/"}

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"relative asset", "/assets/og-image.png", "https://example.com/assets/og-image.png"},
		{"relative without slash", "icons/favicon.ico", "https://example.com/icons/favicon.ico"},
		{"absolute unchanged", "https://cdn.example.org/a.png", "https://cdn.example.org/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ResolveURL(tt.ref))
		})
	}

	noBase := SiteMetadata{}
	assert.Equal(t, "/assets/og-image.png", noBase.ResolveURL("/assets/og-image.png"))
}

func TestSiteMetadata_WithAbsoluteImages(t *testing.T) {
	m := SiteMetadata{
		MetadataBase: "https://example.com/",
		OpenGraph:    OpenGraph{Images: []SocialImage{{URL: "/assets/og-image.png"}}},
		Twitter: TwitterCard{Images: []SocialImage{
			{URL: "/assets/og-image.png"},
			{URL: "https://cdn.example.org/t.png"},
		}},
	}

	got := m.WithAbsoluteImages()

	assert.Equal(t, []SocialImage{{URL: "https://example.com/assets/og-image.png"}}, got.OpenGraph.Images)
	assert.Equal(t, []SocialImage{
		{URL: "https://example.com/assets/og-image.png"},
		{URL: "https://cdn.example.org/t.png"},
	}, got.Twitter.Images)

	// the receiver keeps its relative paths
	assert.Equal(t, "/assets/og-image.png", m.OpenGraph.Images[0].URL)
	assert.Equal(t, "/assets/og-image.png", m.Twitter.Images[0].URL)
}
