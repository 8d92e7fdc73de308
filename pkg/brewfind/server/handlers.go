package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/flosch/pongo2/v6"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/view"
)

const msgUnknownType = "Unknown brewery type. Pick one from the list."

type typeOption struct {
	Value    string
	Label    string
	Selected bool
}

// searchForm is the state of the search section every page carries.
type searchForm struct {
	City    string
	Types   []typeOption
	Message string
	Total   int
}

func newSearchForm(city string, selected dal.BreweryType) searchForm {
	options := make([]typeOption, 0, len(dal.BreweryTypes)+1)
	options = append(options, typeOption{Value: "", Label: dal.TypeAny.Label(), Selected: selected == dal.TypeAny})
	for _, t := range dal.BreweryTypes {
		options = append(options, typeOption{Value: t.String(), Label: t.Label(), Selected: t == selected})
	}
	return searchForm{City: city, Types: options}
}

// GetIndex renders the search page and, when a city is given, its results.
func (h *httpServer) GetIndex(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()
	logger := hlog.FromRequest(r)

	typ, err := dal.ParseBreweryType(vars.Get("type"))
	if err != nil {
		logger.Info().Err(err).Msg("type validation failed")
		form := newSearchForm(vars.Get("city"), dal.TypeAny)
		form.Message = msgUnknownType
		h.renderPage(w, r, http.StatusBadRequest, "index.html", pongo2.Context{"form": form})
		return
	}

	search := view.NewSearchView(h.directory, *logger)
	err = search.Submit(r.Context(), vars.Get("city"), typ)
	if errors.Is(err, view.ErrCityRequired) {
		h.renderPage(w, r, http.StatusOK, "index.html", pongo2.Context{
			"form": newSearchForm("", typ),
		})
		return
	}

	snap := search.Snapshot()
	form := newSearchForm(snap.City, snap.Type)
	form.Message = snap.Message
	form.Total = snap.Total

	data := pongo2.Context{
		"form":      form,
		"breweries": breweryLinks(snap.Breweries),
	}
	if snap.State == view.StatePopulated {
		data["show_chart"] = true
		data["chart"] = NewBarChart(snap.Histogram)
	}
	h.renderPage(w, r, http.StatusOK, "index.html", data)
}

// GetAbout renders the about page.
func (h *httpServer) GetAbout(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "about.html", pongo2.Context{})
}

// GetBrewery renders the detail page of one brewery.
func (h *httpServer) GetBrewery(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["breweryId"]

	detail := view.NewDetailView(h.directory, *hlog.FromRequest(r), view.WithSurfacedErrors(h.surfaceDetailErrors))
	if err := detail.Load(r.Context(), id); err != nil {
		h.notFound(w, r)
		return
	}

	snap := detail.Snapshot()
	data := pongo2.Context{
		"form":    newSearchForm("", dal.TypeAny),
		"loading": snap.State == view.StateLoading,
		"message": snap.Message,
	}
	if snap.Brewery != nil {
		data["found"] = true
		data["brewery"] = *snap.Brewery
		data["website_link"] = websiteLink(snap.Brewery.WebsiteURL)
	}
	h.renderPage(w, r, detailStatus(snap), "brewery.html", data)
}

func (h *httpServer) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusNotFound, "not_found.html", pongo2.Context{
		"form": newSearchForm("", dal.TypeAny),
	})
}

func (h *httpServer) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data pongo2.Context) {
	if err := h.pages.render(w, status, name, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// detailStatus maps a detail snapshot to the status code of its page. A view
// still loading answers 200 with its placeholder.
func detailStatus(snap view.DetailSnapshot) int {
	if snap.State != view.StateError {
		return http.StatusOK
	}
	if snap.NotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

type breweryLink struct {
	Name string
	Href string
}

func breweryLinks(breweries []dal.BrewerySummary) []breweryLink {
	links := make([]breweryLink, 0, len(breweries))
	for _, b := range breweries {
		links = append(links, breweryLink{Name: b.Name, Href: "/brewery/" + url.PathEscape(b.ID)})
	}
	return links
}
