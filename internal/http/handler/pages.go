package handler

import (
	"github.com/gofiber/fiber/v2"

	"certviewer/internal/config"
)

// pageData merges the site settings every template expects with page specific values.
func pageData(site config.SiteConfig, title string, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"Title":           title,
		"IssuerName":      site.IssuerName,
		"SiteDescription": site.SiteDescription,
		"IssuerLogoPath":  site.IssuerLogoPath,
		"IssuerEmail":     site.IssuerEmail,
		"RecentCertIDs":   site.RecentCertIDs,
		"Theme":           site.Theme,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// StaticPage renders a template that needs nothing beyond the site settings.
//
//	@Summary	Render a static page
//	@Tags		pages
//	@Produce	html
//	@Success	200	{string}	string	"HTML page"
//	@Router		/ [get]
//	@Router		/faq [get]
//	@Router		/bitcoinkeys [get]
func StaticPage(site config.SiteConfig, name, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(name, pageData(site, title, nil))
	}
}
