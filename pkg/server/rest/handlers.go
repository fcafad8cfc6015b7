package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lintang/wayfinder/domain"
	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	RouteOptions(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) ([]service.RouteOptionResult, error)
	RouteOptionsByAddress(ctx context.Context, departureAddress, destinationAddress, place string) ([]service.RouteOptionResult, error)
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func WayfinderRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/options", handler.routeOptions)
			r.Post("/options-by-address", handler.routeOptionsByAddress)
		})
		r.Get("/healthz", handler.health)
	})
}

// RouteOptionsRequest model info
//
//	@Description	request body untuk route options query antara 2 koordinat di road network
type RouteOptionsRequest struct {
	SrcLat float64 `json:"src_lat" validate:"required,lt=90,gt=-90"`
	SrcLon float64 `json:"src_lon" validate:"required,lt=180,gt=-180"`
	DstLat float64 `json:"dst_lat" validate:"required,lt=90,gt=-90"`
	DstLon float64 `json:"dst_lon" validate:"required,lt=180,gt=-180"`
}

func (s *RouteOptionsRequest) Bind(r *http.Request) error {
	if s.SrcLat == 0 || s.SrcLon == 0 || s.DstLat == 0 || s.DstLon == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// RouteOptionsByAddressRequest model info
//
//	@Description	request body untuk route options query antara 2 alamat free-text
type RouteOptionsByAddressRequest struct {
	DepartureAddress   string `json:"departure_address" validate:"required"`
	DestinationAddress string `json:"destination_address" validate:"required"`
	Place              string `json:"place" validate:"required"`
}

func (s *RouteOptionsByAddressRequest) Bind(r *http.Request) error {
	if s.DepartureAddress == "" || s.DestinationAddress == "" || s.Place == "" {
		return errors.New("invalid request")
	}
	return nil
}

// RouteOptionResponse	model info
//
//	@Description	1 route option hasil diversification: label profile + geometry + aggregate metrics
type RouteOptionResponse struct {
	Label             string                     `json:"label"`
	Path              string                     `json:"path"`
	Route             []datastructure.Coordinate `json:"route,omitempty"`
	NodeIDs           []int64                    `json:"node_ids"`
	TotalTime         float64                    `json:"total_time"`
	TotalDistance     float64                    `json:"total_distance"`
	TotalTrafficScore float64                    `json:"total_traffic_score"`
	TimeMinutes       float64                    `json:"time_min"`
	DistanceKm        float64                    `json:"distance_km"`
	AvgTraffic        float64                    `json:"avg_traffic"`
}

// RouteOptionsResponse	model info
//
//	@Description	response body route options query, routes urut fixed by profile
type RouteOptionsResponse struct {
	Routes []RouteOptionResponse `json:"routes"`
	Found  bool                  `json:"found"`
}

func NewRouteOptionsResponse(results []service.RouteOptionResult) *RouteOptionsResponse {
	routes := make([]RouteOptionResponse, 0, len(results))
	for _, res := range results {
		routes = append(routes, RouteOptionResponse{
			Label:             res.Label,
			Path:              res.Polyline,
			Route:             res.Route,
			NodeIDs:           res.Path,
			TotalTime:         res.TotalTime,
			TotalDistance:     res.TotalDistance,
			TotalTrafficScore: res.TotalTrafficScore,
			TimeMinutes:       res.TimeMinutes,
			DistanceKm:        res.DistanceKm,
			AvgTraffic:        res.AvgTraffic,
		})
	}
	return &RouteOptionsResponse{
		Routes: routes,
		Found:  len(routes) > 0,
	}
}

// routeOptions
//
//	@Summary		route options query antara 2 koordinat di road network.
//	@Description	cari sampai 4 route alternatif (Balanced, Time-Optimized, Traffic-Avoiding, Distance-Optimized) antara 2 koordinat.
//	@Tags			routes
//	@Param			body	body	RouteOptionsRequest	true	"request body query route options antara 2 koordinat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/options [post]
//	@Success		200	{object}	RouteOptionsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) routeOptions(w http.ResponseWriter, r *http.Request) {
	data := &RouteOptionsRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	h.promeMetrics.RouteOptionsQueryCount.WithLabelValues("coordinate").Inc()
	results, err := h.svc.RouteOptions(r.Context(), data.SrcLat, data.SrcLon, data.DstLat, data.DstLon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteOptionsResponse(results))
}

// routeOptionsByAddress
//
//	@Summary		route options query antara 2 alamat free-text.
//	@Description	geocode alamat departure & destination dulu, terus cari route options kayak /routes/options.
//	@Tags			routes
//	@Param			body	body	RouteOptionsByAddressRequest	true	"request body query route options antara 2 alamat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/options-by-address [post]
//	@Success		200	{object}	RouteOptionsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) routeOptionsByAddress(w http.ResponseWriter, r *http.Request) {
	data := &RouteOptionsByAddressRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	h.promeMetrics.RouteOptionsQueryCount.WithLabelValues("address").Inc()
	results, err := h.svc.RouteOptionsByAddress(r.Context(), data.DepartureAddress, data.DestinationAddress, data.Place)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteOptionsResponse(results))
}

func (h *NavigationHandler) health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "ok"})
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Code() {
		case domain.ErrNotFound:
			return http.StatusNotFound
		case domain.ErrBadParamInput:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
