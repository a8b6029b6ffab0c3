// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seetharamanm/layercover"
	"github.com/seetharamanm/layercover/application/service"
	"github.com/seetharamanm/layercover/domain/coverage"
	"github.com/seetharamanm/layercover/infrastructure/api/middleware"
	"github.com/seetharamanm/layercover/infrastructure/api/v1/dto"
	"github.com/seetharamanm/layercover/internal/palette"
)

// maxUploadBytes caps upload size. Survey sheets run to a few thousand rows;
// anything larger is not a coverage CSV.
const maxUploadBytes = 16 << 20

// DatasetsRouter handles dataset API endpoints.
type DatasetsRouter struct {
	client *layercover.Client
	logger *slog.Logger
}

// NewDatasetsRouter creates a new DatasetsRouter.
func NewDatasetsRouter(client *layercover.Client) *DatasetsRouter {
	return &DatasetsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for dataset endpoints.
func (r *DatasetsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.Upload)
	router.Post("/sample", r.LoadSample)
	router.Get("/current", r.Current)
	router.Get("/current/segments", r.Segments)
	router.Get("/current/overlaps", r.Overlaps)
	router.Get("/current/gaps", r.Gaps)
	router.Get("/current/progress", r.Progress)

	return router
}

// Upload handles POST /api/v1/datasets. The body is either raw CSV or a JSON
// object with a "csv" field; the parsed dataset replaces the current one only
// when parsing succeeds.
func (r *DatasetsRouter) Upload(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxUploadBytes))
	if err != nil {
		middleware.WriteBadRequest(w, "reading request body: "+err.Error())
		return
	}

	csv := string(body)
	if strings.Contains(req.Header.Get("Content-Type"), "application/json") {
		var upload dto.UploadRequest
		if err := json.Unmarshal(body, &upload); err != nil {
			middleware.WriteBadRequest(w, "decoding upload request: "+err.Error())
			return
		}
		csv = upload.CSV
	}
	if strings.TrimSpace(csv) == "" {
		middleware.WriteBadRequest(w, "request body must contain CSV content")
		return
	}

	summary, err := r.client.Datasets.Load(ctx, csv)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, summaryToDTO(summary, r.client.Palette()))
}

// LoadSample handles POST /api/v1/datasets/sample. It loads the configured
// sample file, falling back to the embedded sample.
func (r *DatasetsRouter) LoadSample(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	summary, err := r.client.Datasets.LoadSample(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, summaryToDTO(summary, r.client.Palette()))
}

// Current handles GET /api/v1/datasets/current.
func (r *DatasetsRouter) Current(w http.ResponseWriter, req *http.Request) {
	summary, err := r.client.Datasets.Current()
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, summaryToDTO(summary, r.client.Palette()))
}

// Segments handles GET /api/v1/datasets/current/segments.
func (r *DatasetsRouter) Segments(w http.ResponseWriter, req *http.Request) {
	seg, err := r.client.Datasets.Segments()
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	pal := r.client.Palette()
	layerIndex := make(map[string]int, len(seg.Layers))
	layers := make([]dto.LayerInfo, 0, len(seg.Layers))
	for i, layer := range seg.Layers {
		layerIndex[layer] = i
		layers = append(layers, dto.LayerInfo{Name: layer, Color: pal.Color(layer, i)})
	}

	segments := make([]dto.SegmentSchema, 0, len(seg.Segments))
	for _, s := range seg.Segments {
		segments = append(segments, dto.SegmentSchema{
			ChunkStart: s.ChunkStart,
			ChunkLabel: chunkLabel(s.ChunkStart),
			Layer:      s.Layer,
			Color:      pal.Color(s.Layer, layerIndex[s.Layer]),
			RelStart:   s.RelStart,
			RelEnd:     s.RelEnd,
			AbsStart:   s.AbsStart,
			AbsEnd:     s.AbsEnd,
		})
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SegmentsResponse{
		ChunkSize: coverage.ChunkSize,
		Chunks:    seg.Chunks,
		Layers:    layers,
		Segments:  segments,
	})
}

// Overlaps handles GET /api/v1/datasets/current/overlaps.
func (r *DatasetsRouter) Overlaps(w http.ResponseWriter, req *http.Request) {
	overlaps, err := r.client.Datasets.Overlaps()
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.OverlapsResponse{Layers: spansToDTO(overlaps)})
}

// Gaps handles GET /api/v1/datasets/current/gaps. Repeated "layer" query
// parameters name layers to report even when they have no records.
func (r *DatasetsRouter) Gaps(w http.ResponseWriter, req *http.Request) {
	extraLayers := req.URL.Query()["layer"]

	gaps, err := r.client.Datasets.Gaps(extraLayers...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.GapsResponse{Layers: spansToDTO(gaps)})
}

// Progress handles GET /api/v1/datasets/current/progress. Repeated "bill" and
// "month" query parameters filter the records before aggregation.
func (r *DatasetsRouter) Progress(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	filter := coverage.NewFilter(
		coverage.WithBills(query["bill"]...),
		coverage.WithMonths(query["month"]...),
	)

	progress, err := r.client.Datasets.Progress(filter)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	perLayer := make([]dto.LayerProgressSchema, 0, len(progress.PerLayer))
	for _, layer := range sortedKeys(progress.PerLayer) {
		lp := progress.PerLayer[layer]
		perLayer = append(perLayer, dto.LayerProgressSchema{Layer: layer, Len: lp.Len, Pct: lp.Pct})
	}

	billLines := make([]dto.BillLineSchema, 0, len(progress.PerLayerPerBill))
	for _, line := range progress.PerLayerPerBill {
		billLines = append(billLines, dto.BillLineSchema{
			Bill:  line.Bill,
			Layer: line.Layer,
			Len:   line.Len,
			Pct:   line.Pct,
		})
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ProgressResponse{
		RouteExtent:     progress.RouteExtent,
		OverallLen:      progress.OverallLen,
		OverallPct:      progress.OverallPct,
		PerLayer:        perLayer,
		PerLayerPerBill: billLines,
		FilteredCount:   progress.FilteredCount,
		TotalCount:      progress.TotalCount,
	})
}

func summaryToDTO(summary service.Summary, pal palette.Palette) dto.DatasetResponse {
	layers := make([]dto.LayerInfo, 0, len(summary.Layers))
	for i, layer := range summary.Layers {
		layers = append(layers, dto.LayerInfo{Name: layer, Color: pal.Color(layer, i)})
	}

	months := make([]dto.MonthInfo, 0, len(summary.Months))
	for _, key := range summary.Months {
		months = append(months, dto.MonthInfo{Key: key, Label: monthLabel(key)})
	}

	return dto.DatasetResponse{
		RecordCount: summary.RecordCount,
		RouteExtent: summary.RouteExtent,
		Layers:      layers,
		Bills:       summary.Bills,
		Months:      months,
	}
}

func spansToDTO(byLayer map[string][]coverage.Span) []dto.LayerSpans {
	out := make([]dto.LayerSpans, 0, len(byLayer))
	for _, layer := range coverage.SortedLayers(byLayer) {
		spans := make([]dto.SpanSchema, 0, len(byLayer[layer]))
		for _, s := range byLayer[layer] {
			spans = append(spans, dto.SpanSchema{Start: s.Start, End: s.End, Len: s.Len})
		}
		out = append(out, dto.LayerSpans{Layer: layer, Spans: spans})
	}
	return out
}

// chunkLabel formats a chunk start as the "0-1000" style row label used by
// the chart.
func chunkLabel(chunkStart int) string {
	return fmt.Sprintf("%d-%d", chunkStart, chunkStart+coverage.ChunkSize)
}

// monthLabel renders a YYYY-MM key as "Jan 2006". Unparseable keys fall back
// to the key itself.
func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

func sortedKeys(m map[string]coverage.LayerProgress) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
