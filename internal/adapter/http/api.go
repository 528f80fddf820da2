package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/couchcryptid/feregion-service/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/twpayne/go-geom/encoding/geojson"
	"golang.org/x/time/rate"
)

// RegionService answers forward lookups against the loaded dataset.
type RegionService interface {
	Locate(coords feregion.Coordinates) (feregion.Region, error)
	Region(fenum int) (feregion.Region, error)
	SeismicRegionNumber(fenum int) (int, error)
	AllRegions() []feregion.Region
}

// ExtentProvider reconstructs a region's footprint.
type ExtentProvider interface {
	LatitudeLongitudeMap(fenum int) feregion.Extent
}

// API serves the /v1 region routes.
type API struct {
	regions RegionService
	extents ExtentProvider
	limiter *rate.Limiter
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewAPI wires the region handlers. A nil limiter disables rate limiting.
func NewAPI(regions RegionService, extents ExtentProvider, limiter *rate.Limiter, metrics *observability.Metrics, logger *slog.Logger) *API {
	return &API{
		regions: regions,
		extents: extents,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}
}

// Register mounts the API routes on mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.Handle("GET /v1/region", a.wrap("locate", a.handleLocate))
	mux.Handle("GET /v1/regions", a.wrap("regions", a.handleRegions))
	mux.Handle("GET /v1/regions/{number}", a.wrap("region", a.handleRegion))
	mux.Handle("GET /v1/regions/{number}/extent", a.wrap("extent", a.handleExtent))
}

type regionResponse struct {
	Number        int    `json:"number"`
	Name          string `json:"name"`
	SeismicRegion int    `json:"seismic_region"`
}

type bandResponse struct {
	Band   int                       `json:"band"`
	Ranges []feregion.LongitudeRange `json:"ranges"`
}

type extentResponse struct {
	Number int            `json:"number"`
	Name   string         `json:"name"`
	Bands  []bandResponse `json:"bands"`
}

func (a *API) handleLocate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	coords, err := feregion.ParseCoordinates(q.Get("lon"), q.Get("lat"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	region, err := a.regions.Locate(coords)
	if err != nil {
		a.internalError(w, "locate", err)
		return
	}
	resp, err := a.describe(region)
	if err != nil {
		a.internalError(w, "locate", err)
		return
	}
	a.logger.Debug("located", "coords", coords.String(), "region", region.Number)
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleRegions(w http.ResponseWriter, _ *http.Request) {
	all := a.regions.AllRegions()
	resp := make([]regionResponse, 0, len(all))
	for _, region := range all {
		rr, err := a.describe(region)
		if err != nil {
			a.internalError(w, "regions", err)
			return
		}
		resp = append(resp, rr)
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleRegion(w http.ResponseWriter, r *http.Request) {
	region, ok := a.lookupPathRegion(w, r)
	if !ok {
		return
	}
	resp, err := a.describe(region)
	if err != nil {
		a.internalError(w, "region", err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleExtent(w http.ResponseWriter, r *http.Request) {
	region, ok := a.lookupPathRegion(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "geojson" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
		return
	}

	extent := a.extents.LatitudeLongitudeMap(region.Number)

	if format == "geojson" {
		mp, err := extent.MultiPolygon()
		if err != nil {
			a.internalError(w, "extent", err)
			return
		}
		writeGeoJSON(w, &geojson.Feature{
			ID:       strconv.Itoa(region.Number),
			Geometry: mp,
			Properties: map[string]any{
				"number": region.Number,
				"name":   region.Name,
			},
		})
		return
	}

	resp := extentResponse{Number: region.Number, Name: region.Name, Bands: []bandResponse{}}
	for _, band := range extent.Bands() {
		resp.Bands = append(resp.Bands, bandResponse{Band: band, Ranges: extent[band]})
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

// lookupPathRegion resolves the {number} path value, writing 400 or 404 on
// failure.
func (a *API) lookupPathRegion(w http.ResponseWriter, r *http.Request) (feregion.Region, bool) {
	raw := r.PathValue("number")
	fenum, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("region number %q is not an integer", raw))
		return feregion.Region{}, false
	}
	region, err := a.regions.Region(fenum)
	if errors.Is(err, feregion.ErrIndexOutOfRange) {
		writeError(w, http.StatusNotFound, err.Error())
		return feregion.Region{}, false
	}
	if err != nil {
		a.internalError(w, "region", err)
		return feregion.Region{}, false
	}
	return region, true
}

func (a *API) describe(region feregion.Region) (regionResponse, error) {
	seismic, err := a.regions.SeismicRegionNumber(region.Number)
	if err != nil {
		return regionResponse{}, err
	}
	return regionResponse{Number: region.Number, Name: region.Name, SeismicRegion: seismic}, nil
}

func (a *API) internalError(w http.ResponseWriter, op string, err error) {
	a.logger.Error("region request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
