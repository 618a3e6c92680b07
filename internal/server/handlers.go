package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/paint-preview-mcp/internal/imaging"
	"github.com/ironsheep/paint-preview-mcp/internal/paint"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "paint_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// toolError is a failure whose JSON-RPC code and detail may be shown to the
// client. Any other error is reported generically.
type toolError struct {
	code    int
	message string
	detail  string
}

func (e *toolError) Error() string {
	return e.message + ": " + e.detail
}

func invalidArgs(err error) error {
	return &toolError{code: -32602, message: "Invalid params", detail: err.Error()}
}

// decodeArgs unmarshals tool arguments, reporting failures as invalid params.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return invalidArgs(err)
	}
	return nil
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Processing failures return code -32000 with a generic message; the cause
// is only logged. Malformed arguments return -32602 with details.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var te *toolError
		if errors.As(err, &te) {
			return s.errorResponse(req.ID, te.code, te.message, te.detail)
		}
		log.Printf("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Image processing failed", nil)
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "paint_load":
		return s.handlePaintLoad(args)
	case "paint_sample_color":
		return s.handlePaintSampleColor(args)
	case "paint_parse_color":
		return s.handlePaintParseColor(args)
	case "paint_segment":
		return s.handlePaintSegment(args)
	case "paint_preview":
		return s.handlePaintPreview(args)
	case "paint_match_color":
		return s.handlePaintMatchColor(args)
	default:
		return nil, &toolError{code: -32000, message: "Tool execution failed", detail: fmt.Sprintf("unknown tool: %s", name)}
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared argument handling ===

// clickArgs locate the surface the user clicked on.
type clickArgs struct {
	Path         string           `json:"path"`
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Tolerance    *int             `json:"tolerance,omitempty"`
	ToleranceRGB *paint.Tolerance `json:"tolerance_rgb,omitempty"`
	Range        string           `json:"range,omitempty"`
}

// tolerance resolves the per-channel tolerance, preferring tolerance_rgb,
// then tolerance, then the configured default.
func (a clickArgs) tolerance(def int) paint.Tolerance {
	switch {
	case a.ToleranceRGB != nil:
		return *a.ToleranceRGB
	case a.Tolerance != nil:
		return paint.UniformTolerance(*a.Tolerance)
	default:
		return paint.UniformTolerance(def)
	}
}

// workImage is a photo prepared for the paint core.
type workImage struct {
	grid  *paint.PixelGrid
	seed  paint.SeedPoint // In grid coordinates, not yet clamped
	scale float64         // grid size / original size
}

// prepare loads the photo, downscales it to the configured limit, and maps
// the click into the processed grid.
func (s *Server) prepare(path string, x, y int) (*workImage, error) {
	src, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	img, scale := imaging.FitWithin(src.Image, s.cfg.MaxDimension)
	grid, err := paint.GridFromImage(img)
	if err != nil {
		return nil, err
	}

	if s.cfg.Debug() && scale != 1 {
		log.Printf("Downscaled %s by %.3f to %dx%d", path, scale, grid.Width, grid.Height)
	}

	return &workImage{
		grid:  grid,
		seed:  paint.SeedPoint{X: int(float64(x) * scale), Y: int(float64(y) * scale)},
		scale: scale,
	}, nil
}

// BoundingBox is a rectangle with inclusive (X1,Y1) and exclusive (X2,Y2).
type BoundingBox struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// RegionStats summarizes a segmented surface in processed-grid coordinates.
type RegionStats struct {
	Seed            paint.SeedPoint      `json:"seed"`
	Scale           float64              `json:"scale"`
	Area            int                  `json:"area"`
	CoveragePercent float64              `json:"coverage_percent"`
	Bounds          BoundingBox          `json:"bounds"`
	SurfaceColor    *imaging.ColorResult `json:"surface_color,omitempty"`
}

func regionStats(w *workImage, seed paint.SeedPoint, mask *paint.Mask) (*RegionStats, error) {
	b := mask.Bounds()
	stats := &RegionStats{
		Seed:            seed,
		Scale:           w.scale,
		Area:            mask.Area(),
		CoveragePercent: float64(mask.Area()) / float64(len(mask.Pix)) * 100,
		Bounds:          BoundingBox{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X, Y2: b.Max.Y},
	}

	mean, ok, err := paint.MeanLab(w.grid, mask)
	if err != nil {
		return nil, err
	}
	if ok {
		c := imaging.FromLab(mean)
		stats.SurfaceColor = &c
	}
	return stats, nil
}

// === Image Information Handlers ===

type paintLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handlePaintLoad(args json.RawMessage) (interface{}, error) {
	var a paintLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Color Handlers ===

type paintSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handlePaintSampleColor(args json.RawMessage) (interface{}, error) {
	var a paintSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(src.Image, a.X, a.Y)
}

type paintParseColorArgs struct {
	Color string `json:"color"`
}

func (s *Server) handlePaintParseColor(args json.RawMessage) (interface{}, error) {
	var a paintParseColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, g, b, err := paint.ParseHexRGB(a.Color)
	if err != nil {
		return nil, err
	}
	res := imaging.NewColorResult(r, g, b)
	return &res, nil
}

// PaletteMatchResult pairs the clicked surface color with its closest
// palette entry.
type PaletteMatchResult struct {
	Surface imaging.ColorResult `json:"surface"`
	Match   paint.PaletteMatch  `json:"match"`
}

type paintMatchColorArgs struct {
	clickArgs
	Palette []string `json:"palette"`
}

func (s *Server) handlePaintMatchColor(args json.RawMessage) (interface{}, error) {
	var a paintMatchColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := paint.ParseRangeMode(a.Range)
	if err != nil {
		return nil, invalidArgs(err)
	}

	w, err := s.prepare(a.Path, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	mask, err := paint.SegmentWith(w.grid, w.seed, paint.SegmentOptions{Tolerance: a.tolerance(s.cfg.DefaultTolerance), Range: mode})
	if err != nil {
		return nil, err
	}
	mean, ok, err := paint.MeanLab(w.grid, mask)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("empty region at (%d,%d)", a.X, a.Y)
	}

	match, err := paint.NearestColor(mean, a.Palette)
	if err != nil {
		return nil, err
	}
	return &PaletteMatchResult{Surface: imaging.FromLab(mean), Match: *match}, nil
}

// === Recoloring Handlers ===

// SegmentResult is the mask of the clicked surface and its statistics.
type SegmentResult struct {
	RegionStats
	Mask *imaging.EncodeResult `json:"mask"`
}

func (s *Server) handlePaintSegment(args json.RawMessage) (interface{}, error) {
	var a clickArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := paint.ParseRangeMode(a.Range)
	if err != nil {
		return nil, invalidArgs(err)
	}

	w, err := s.prepare(a.Path, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	seed := w.seed.Clamp(w.grid.Width, w.grid.Height)
	mask, err := paint.SegmentWith(w.grid, seed, paint.SegmentOptions{Tolerance: a.tolerance(s.cfg.DefaultTolerance), Range: mode})
	if err != nil {
		return nil, err
	}

	stats, err := regionStats(w, seed, mask)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.Encode(mask.Image(), "png", 0)
	if err != nil {
		return nil, err
	}
	return &SegmentResult{RegionStats: *stats, Mask: encoded}, nil
}

// PreviewResult is a recolored photo with the region it was applied to.
type PreviewResult struct {
	RegionStats
	Target     imaging.ColorResult   `json:"target"`
	Image      *imaging.EncodeResult `json:"image"`
	OutputPath string                `json:"output_path,omitempty"`
}

type paintPreviewArgs struct {
	clickArgs
	Color      string `json:"color"`
	Format     string `json:"format,omitempty"`
	Quality    int    `json:"quality,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

func (s *Server) handlePaintPreview(args json.RawMessage) (interface{}, error) {
	var a paintPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := paint.ParseRangeMode(a.Range)
	if err != nil {
		return nil, invalidArgs(err)
	}
	if _, err := imaging.OutputMimeType(a.Format); err != nil {
		return nil, invalidArgs(err)
	}
	quality := a.Quality
	if quality == 0 {
		quality = s.cfg.JPEGQuality
	}

	w, err := s.prepare(a.Path, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	res, err := paint.Preview(w.grid, paint.Request{
		Seed:      w.seed,
		Tolerance: a.tolerance(s.cfg.DefaultTolerance),
		Color:     a.Color,
		Range:     mode,
	})
	if err != nil {
		return nil, err
	}

	if s.cfg.Debug() {
		log.Printf("Preview %s seed=(%d,%d) color=%s area=%d", a.Path, res.Seed.X, res.Seed.Y, a.Color, res.Mask.Area())
	}

	stats, err := regionStats(w, res.Seed, res.Mask)
	if err != nil {
		return nil, err
	}

	out := res.Grid.Image()
	encoded, err := imaging.Encode(out, a.Format, quality)
	if err != nil {
		return nil, err
	}
	if a.OutputPath != "" {
		if err := imaging.Save(out, a.OutputPath, quality); err != nil {
			return nil, err
		}
	}

	return &PreviewResult{
		RegionStats: *stats,
		Target:      imaging.FromLab(res.Target),
		Image:       encoded,
		OutputPath:  a.OutputPath,
	}, nil
}
