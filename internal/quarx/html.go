package quarx

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/JaimeStill/quarx/internal/links"
	"github.com/JaimeStill/quarx/internal/menus"
	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/pages"
	"github.com/JaimeStill/quarx/internal/widgets"
	"github.com/google/uuid"
)

const editIcon = `<span class="fa fa-edit"></span> Edit`

// Crumb is one breadcrumb location: a flat label or a labelled link.
type Crumb struct {
	Label string
	URL   string
	link  bool
}

// Label creates a flat breadcrumb.
func Label(label string) Crumb {
	return Crumb{Label: label}
}

// Link creates a breadcrumb linking label to url.
func Link(label, url string) Crumb {
	return Crumb{Label: label, URL: url, link: true}
}

// IsLink reports whether c renders as a link.
func (c Crumb) IsLink() bool {
	return c.link
}

// Breadcrumbs renders locations, in order, as list items. Labels have
// their first letter upper-cased.
func (s *Service) Breadcrumbs(locations []Crumb) template.HTML {
	var b strings.Builder
	for _, loc := range locations {
		label := template.HTMLEscapeString(modules.Ucfirst(loc.Label))
		if loc.IsLink() {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, template.HTMLEscapeString(loc.URL), label)
			continue
		}
		fmt.Fprintf(&b, `<li>%s</li>`, label)
	}
	return template.HTML(b.String())
}

// EditButton returns an edit link for resourceType when the request user is
// authorized. An empty id links to "<base>/<resourceType>/edit".
func (s *Service) EditButton(ctx context.Context, resourceType, id string) (template.HTML, error) {
	if !s.gate.Allows(ctx) {
		return "", nil
	}

	if id == "" {
		return s.editLink(s.routeURL(resourceType+"/edit"), "btn btn-default pull-right"), nil
	}

	href, err := s.editURL(resourceType, id)
	if err != nil {
		return "", err
	}
	return s.editLink(href, "btn btn-default pull-right"), nil
}

// Widget returns the content of the widget identified by id, followed by an
// edit link for authorized users. Missing widgets render as the empty string.
func (s *Service) Widget(ctx context.Context, id uuid.UUID) (template.HTML, error) {
	w, err := s.domain.Widgets.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, widgets.ErrNotFound) {
			s.logger.Warn("widget not found", "uuid", id)
			return "", nil
		}
		return "", fmt.Errorf("find widget %s: %w", id, err)
	}

	content := w.Content
	if s.gate.Allows(ctx) {
		href, err := s.editURL("widgets", strconv.FormatInt(w.ID, 10))
		if err != nil {
			return "", err
		}
		content += string(s.editLink(href, "btn btn-default"))
	}
	return template.HTML(content), nil
}

// MenuView is the data handed to a custom menu view.
type MenuView struct {
	Links       []links.Link
	LinksAsHTML template.HTML
}

// Menu renders the links of the menu identified by id as anchors. When view
// names a registered view, that view is rendered with MenuView instead.
// Authorized users get an edit link appended. Missing menus render as the
// empty string.
func (s *Service) Menu(ctx context.Context, id uuid.UUID, view string) (template.HTML, error) {
	m, err := s.domain.Menus.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, menus.ErrNotFound) {
			s.logger.Warn("menu not found", "uuid", id)
			return "", nil
		}
		return "", fmt.Errorf("find menu %s: %w", id, err)
	}

	items, err := s.domain.Links.ByMenu(ctx, m.ID)
	if err != nil {
		return "", err
	}

	anchors, err := s.renderLinks(ctx, items)
	if err != nil {
		return "", err
	}

	response := anchors
	if view != "" {
		response, err = s.views.Render(view, MenuView{Links: items, LinksAsHTML: anchors})
		if err != nil {
			return "", err
		}
	}

	if s.gate.Allows(ctx) {
		href, err := s.editURL("menus", strconv.FormatInt(m.ID, 10))
		if err != nil {
			return "", err
		}
		response += s.editLink(href, "btn btn-default")
	}
	return response, nil
}

func (s *Service) renderLinks(ctx context.Context, items []links.Link) (template.HTML, error) {
	var b strings.Builder
	for _, link := range items {
		href := link.Href()
		if !link.External {
			if link.PageID == nil {
				s.logger.Warn("internal link without page", "link_id", link.ID)
				continue
			}
			page, err := s.domain.Pages.FindByID(ctx, *link.PageID)
			if err != nil {
				if errors.Is(err, pages.ErrNotFound) {
					s.logger.Warn("link page not found", "link_id", link.ID, "page_id", *link.PageID)
					continue
				}
				return "", fmt.Errorf("find page %d: %w", *link.PageID, err)
			}
			href = s.urls.To("page/" + page.URL)
		}

		fmt.Fprintf(&b, `<a href="%s">%s</a>`,
			template.HTMLEscapeString(href),
			template.HTMLEscapeString(link.Name),
		)
	}
	return template.HTML(b.String()), nil
}

func (s *Service) editURL(resourceType, id string) (string, error) {
	token, err := s.crypto.Encrypt(id)
	if err != nil {
		return "", fmt.Errorf("encrypt %s id: %w", resourceType, err)
	}
	return s.routeURL(resourceType + "/" + token + "/edit"), nil
}

func (s *Service) editLink(href, class string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<a href="%s" class="%s">%s</a>`,
		template.HTMLEscapeString(href), class, editIcon,
	))
}
