package service

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/country-mirror/pkg/app/errors"
	apphttp "github.com/chainsafe/country-mirror/pkg/app/http"
	"github.com/chainsafe/country-mirror/pkg/country"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the country endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	handle := func(fn apphttp.HandlerFunc) http.HandlerFunc {
		return apphttp.HandleError(fn, logger)
	}

	r.MethodNotAllowed(handle(h.methodNotAllowed))

	// Debug helpers
	r.Get("/test", handle(h.insertSample))
	r.Get("/check", handle(h.dump))
	r.Get("/setup", handle(h.setup))
	r.Get("/clear", handle(h.clear))

	r.Get("/status", handle(h.status))

	r.Route("/countries", func(r chi.Router) {
		r.Get("/", handle(h.list))
		r.Post("/refresh", handle(h.refresh))
		r.Get("/image", handle(h.image))
		r.Get("/{name}", handle(h.get))
		r.Delete("/{name}", handle(h.delete))
	})
}

func (h *HTTP) refresh(w http.ResponseWriter, r *http.Request) error {
	countries, err := h.service.Refresh(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, country.ToResponses(countries))
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filter := country.Filter{
		Region:   q.Get("region"),
		Currency: q.Get("currency"),
		Sort:     country.ParseSortOrder(q.Get("sort")),
	}

	countries, err := h.service.List(r.Context(), filter)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, country.ToResponses(countries))
	return nil
}

// nameParam returns the {name} path segment in decoded form.
// chi routes on RawPath when the request carries one, leaving the
// segment escaped, e.g. "C%C3%B4te%20d'Ivoire".
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", apperrors.BadRequestError(err, "Invalid country name")
	}
	return decoded, nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	name, err := nameParam(r)
	if err != nil {
		return err
	}
	c, err := h.service.Get(r.Context(), name)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, country.ToResponse(c))
	return nil
}

func (h *HTTP) delete(w http.ResponseWriter, r *http.Request) error {
	name, err := nameParam(r)
	if err != nil {
		return err
	}
	if err := h.service.Delete(r.Context(), name); err != nil {
		return err
	}
	w.WriteHeader(http.StatusOK)
	return nil
}

func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	st, err := h.service.Status(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, st)
	return nil
}

func (h *HTTP) image(w http.ResponseWriter, r *http.Request) error {
	b, err := h.service.Image(r.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
	return nil
}

func (h *HTTP) insertSample(w http.ResponseWriter, r *http.Request) error {
	if _, err := h.service.InsertSample(r.Context()); err != nil {
		return err
	}
	writeText(w, "Database connection successful.")
	return nil
}

func (h *HTTP) dump(w http.ResponseWriter, r *http.Request) error {
	countries, err := h.service.Dump(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, country.ToResponses(countries))
	return nil
}

func (h *HTTP) setup(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Setup(r.Context()); err != nil {
		return err
	}
	writeText(w, "Schema created.")
	return nil
}

func (h *HTTP) clear(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Clear(r.Context()); err != nil {
		return err
	}
	writeText(w, "Table cleared.")
	return nil
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *HTTP) methodNotAllowed(_ http.ResponseWriter, r *http.Request) error {
	return apperrors.NotSupportedError(nil, "Method "+r.Method+" not allowed")
}
