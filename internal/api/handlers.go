package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/glyphfall/pkg/buildinfo"
	apperr "github.com/matzehuels/glyphfall/pkg/errors"
	"github.com/matzehuels/glyphfall/pkg/pipeline"
	"github.com/matzehuels/glyphfall/pkg/rain"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": pipeline.FormatNames()})
}

// handleGrid renders one grid in the format named by the path extension.
func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, r, err)
		return
	}

	opts := s.requestDefaults()
	if err := applyQuery(&opts, r.URL.Query()); err != nil {
		writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.execute(r, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentType(format))
	h.Set(HeaderSeed, strconv.FormatUint(result.Seed, 10))
	h.Set(HeaderGridHash, result.GridHash)
	h.Set(HeaderCache, cacheStatus(result.CacheInfo.RenderHit))
	if format == pipeline.FormatPNG || format == pipeline.FormatPDF || format == pipeline.FormatXLSX {
		h.Set("Content-Disposition", fmt.Sprintf(`inline; filename="glyphfall.%s"`, pipeline.Extension(format)))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderResponse is the body of POST /v1/render. Artifacts are base64
// encoded by encoding/json.
type renderResponse struct {
	RequestID string            `json:"request_id"`
	Seed      uint64            `json:"seed"`
	GridHash  string            `json:"grid_hash"`
	Cached    bool              `json:"cached"`
	Stats     rain.Stats        `json:"stats"`
	Artifacts map[string][]byte `json:"artifacts"`
}

// handleRender decodes pipeline options over the server defaults, so a
// request only names what it changes.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts := s.requestDefaults()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if err := decodeOptions(body, &opts); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.execute(r, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		RequestID: RequestIDFrom(r.Context()),
		Seed:      result.Seed,
		GridHash:  result.GridHash,
		Cached:    result.CacheInfo.RenderHit,
		Stats:     result.Stats.Grid,
		Artifacts: result.Artifacts,
	})
}

// presentFields records which size and pool fields a request body names.
// Zero values there are explicit input, not a request for defaults.
type presentFields struct {
	Rows    json.RawMessage `json:"rows"`
	Cols    json.RawMessage `json:"cols"`
	Symbols json.RawMessage `json:"symbols"`
}

// decodeOptions decodes body over opts. An empty body leaves opts as is.
func decodeOptions(body []byte, opts *pipeline.Options) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "decode request body")
	}

	var present presentFields
	if err := json.Unmarshal(body, &present); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "decode request body")
	}
	if present.Rows != nil && opts.Rows <= 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "rows must be positive, got %s", present.Rows)
	}
	if present.Cols != nil && opts.Cols <= 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "cols must be positive, got %s", present.Cols)
	}
	if present.Symbols != nil && len(opts.Symbols) == 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "symbols must not be empty")
	}
	return nil
}

// requestDefaults returns a copy of the server defaults with a fresh seed
// when the defaults do not fix one.
func (s *Server) requestDefaults() pipeline.Options {
	opts := s.defaults
	opts.Symbols = slices.Clone(s.defaults.Symbols)
	opts.Text = maps.Clone(s.defaults.Text)
	opts.Formats = nil
	if opts.Seed == 0 {
		opts.Seed = s.seed()
	}
	return opts
}

func (s *Server) execute(r *http.Request, opts pipeline.Options) (*pipeline.Result, error) {
	opts.Logger = s.logger.With("request_id", RequestIDFrom(r.Context()))
	return s.runner.Execute(r.Context(), opts)
}

// applyQuery overrides opts with the query parameters that are present.
func applyQuery(opts *pipeline.Options, q url.Values) error {
	ints := map[string]*int{
		"rows": &opts.Rows,
		"cols": &opts.Cols,
		"hue":  &opts.Hue,
	}
	floats := map[string]*float64{
		"stay_blank": &opts.StayBlank,
		"stay_glyph": &opts.StayGlyph,
		"saturation": &opts.Saturation,
		"brightness": &opts.Brightness,
		"delta":      &opts.Delta,
		"cell_size":  &opts.CellSize,
		"scale":      &opts.Scale,
	}

	for name, dst := range ints {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return apperr.New(apperr.ErrCodeInvalidInput, "%s must be an integer, got %q", name, v)
			}
			if name != "hue" && n <= 0 {
				return apperr.New(apperr.ErrCodeInvalidInput, "%s must be positive, got %d", name, n)
			}
			*dst = n
		}
	}
	for name, dst := range floats {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return apperr.New(apperr.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
			}
			*dst = f
		}
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return apperr.New(apperr.ErrCodeInvalidInput, "seed must be a positive integer, got %q", v)
		}
		opts.Seed = n
	}
	if v := q.Get("scan"); v != "" {
		opts.Scan = v
	}
	if v := q.Get("background"); v != "" {
		opts.Background = v
	}
	if v := q.Get("font"); v != "" {
		opts.Font = v
	}
	if q.Has("symbols") {
		symbols := slices.DeleteFunc(slices.Clone(q["symbols"]), func(s string) bool { return s == "" })
		if len(symbols) == 0 {
			return apperr.New(apperr.ErrCodeInvalidInput, "symbols must not be empty")
		}
		opts.Symbols = symbols
	}
	opts.Refresh = q.Get("refresh") == "true"
	return nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
