package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Thegreatvegan/Qura/internal/config"
	"github.com/Thegreatvegan/Qura/internal/metrics"
	"github.com/Thegreatvegan/Qura/internal/molecule"
	"github.com/Thegreatvegan/Qura/internal/raster"
	"github.com/Thegreatvegan/Qura/pkg/apperror"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

const (
	MinImageSize = 16

	defaultPNGWidth  = 560
	defaultPNGHeight = 400
	defaultGIFWidth  = 320
	defaultGIFHeight = 240

	// Poster angle when rx/ry are omitted
	defaultRotationX = 0.35
	defaultRotationY = 0.6
	maxAngle         = 1e6

	maxCachedGIFs    = 16
	gifRenderTimeout = 30 * time.Second
	imageCacheMaxAge = "public, max-age=86400"
)

// MoleculeHandler serves server-rendered molecule images for link previews
// and clients without JavaScript.
type MoleculeHandler struct {
	cfg config.MoleculeConfig
	log *slog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	gifs  map[string][]byte
}

func NewMoleculeHandler(cfg *config.Config, log *slog.Logger) *MoleculeHandler {
	return &MoleculeHandler{
		cfg:  cfg.Molecule,
		log:  log.With(logger.Scope("molecule")),
		gifs: make(map[string][]byte),
	}
}

// PNG handles GET /molecule.png?w=&h=&rx=&ry=.
func (h *MoleculeHandler) PNG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	width, height, err := h.size(q, defaultPNGWidth, defaultPNGHeight)
	if err != nil {
		apperror.WriteJSON(w, h.log, err)
		return
	}
	rx, err := floatParam(q, "rx", defaultRotationX)
	if err != nil {
		apperror.WriteJSON(w, h.log, err)
		return
	}
	ry, err := floatParam(q, "ry", defaultRotationY)
	if err != nil {
		apperror.WriteJSON(w, h.log, err)
		return
	}

	var buf bytes.Buffer
	opts := raster.SnapshotOptions{
		Width:    width,
		Height:   height,
		Rotation: molecule.Rotation{X: rx, Y: ry},
	}
	if err := raster.EncodePNG(&buf, opts); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewInternal("Failed to render molecule", err))
		return
	}
	metrics.MoleculeRenders.WithLabelValues("png").Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", imageCacheMaxAge)
	_, _ = buf.WriteTo(w)
}

// GIF handles GET /molecule.gif?w=&h=. Renders are cached per size and
// concurrent requests for the same size share one render.
func (h *MoleculeHandler) GIF(w http.ResponseWriter, r *http.Request) {
	width, height, err := h.size(r.URL.Query(), defaultGIFWidth, defaultGIFHeight)
	if err != nil {
		apperror.WriteJSON(w, h.log, err)
		return
	}

	data, err := h.gif(width, height)
	if err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewInternal("Failed to render molecule", err))
		return
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", imageCacheMaxAge)
	_, _ = w.Write(data)
}

func (h *MoleculeHandler) gif(width, height int) ([]byte, error) {
	key := fmt.Sprintf("%dx%d", width, height)

	h.mu.RLock()
	data, ok := h.gifs[key]
	h.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := h.group.Do(key, func() (any, error) {
		// Detached from any one request: other callers may be waiting.
		ctx, cancel := context.WithTimeout(context.Background(), gifRenderTimeout)
		defer cancel()

		start := time.Now()
		data, err := raster.RenderGIF(ctx, raster.GIFOptions{
			Width:  width,
			Height: height,
			Frames: h.cfg.GIFFrames,
			Stride: h.cfg.GIFStride,
		})
		if err != nil {
			return nil, err
		}
		metrics.MoleculeRenders.WithLabelValues("gif").Inc()
		h.log.Info("rendered molecule gif",
			slog.String("size", key),
			slog.Int("bytes", len(data)),
			slog.Duration("took", time.Since(start)))

		h.mu.Lock()
		if len(h.gifs) < maxCachedGIFs {
			h.gifs[key] = data
		}
		h.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// CachedGIFs reports how many sizes are cached.
func (h *MoleculeHandler) CachedGIFs() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.gifs)
}

// size reads w and h, clamped to MinImageSize..MaxSize.
func (h *MoleculeHandler) size(q url.Values, defW, defH int) (int, int, error) {
	width, err := intParam(q, "w", defW)
	if err != nil {
		return 0, 0, err
	}
	height, err := intParam(q, "h", defH)
	if err != nil {
		return 0, 0, err
	}
	maxSize := max(h.cfg.MaxSize, MinImageSize)
	return clamp(width, MinImageSize, maxSize), clamp(height, MinImageSize, maxSize), nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperror.NewBadRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > maxAngle {
		return 0, apperror.NewBadRequest(fmt.Sprintf("%s must be a number", name))
	}
	return v, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
