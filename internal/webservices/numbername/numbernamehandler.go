package numbername

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/remiges-tech/numbername/cache"
	"github.com/remiges-tech/numbername/metrics"
	"github.com/remiges-tech/numbername/numname"
	"github.com/remiges-tech/numbername/service"
	"github.com/remiges-tech/numbername/wscutils"
)

const (
	// ModeKata names numbers with numname.Converter.GetName.
	ModeKata = "kata"
	// ModeFull names numbers with numname.FullName.
	ModeFull = "full"
)

// Keys under which RegisterHandlers looks up its dependencies and config.
const (
	DepConverter         = "converter"
	DepNameCache         = "namecache"
	ConfigKeyDefaultMode = "default_mode"
)

type NameRequest struct {
	Number *int   `json:"number" validate:"required,min=0,max=9999"`
	Mode   string `json:"mode"`
}

type NameResponse struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Mode   string `json:"mode"`
}

type Handler struct {
	converter   *numname.Converter
	cache       cache.NameCache
	defaultMode string
}

func NewHandler(converter *numname.Converter, c cache.NameCache) *Handler {
	if c == nil {
		c = cache.NoCache{}
	}
	return &Handler{
		converter:   converter,
		cache:       c,
		defaultMode: ModeKata,
	}
}

// RegisterHandlers mounts the numbername API under /numbername. The
// converter must be registered as the DepConverter dependency. A NameCache
// under DepNameCache and a default_mode config value are optional.
func RegisterHandlers(s *service.Service) (*Handler, error) {
	dep, ok := s.Dependency(DepConverter)
	if !ok {
		return nil, fmt.Errorf("dependency %q not registered", DepConverter)
	}
	converter, ok := dep.(*numname.Converter)
	if !ok {
		return nil, fmt.Errorf("dependency %q is a %T, not a *numname.Converter", DepConverter, dep)
	}

	var nameCache cache.NameCache
	if dep, ok := s.Dependency(DepNameCache); ok {
		if nameCache, ok = dep.(cache.NameCache); !ok {
			return nil, fmt.Errorf("dependency %q is a %T, not a cache.NameCache", DepNameCache, dep)
		}
	}

	h := NewHandler(converter, nameCache)
	if s.Config != nil {
		mode, err := s.Config.Get(ConfigKeyDefaultMode)
		if err == nil && validMode(mode) {
			h.defaultMode = mode
		}
	}

	g := s.CreateGroup("/numbername")
	g.RegisterRoute(http.MethodGet, "/:number", h.getName)
	g.RegisterRoute(http.MethodPost, "", h.postName)
	return h, nil
}

func validMode(mode string) bool {
	return mode == ModeKata || mode == ModeFull
}

func (h *Handler) getName(c *gin.Context, s *service.Service) {
	param := c.Param("number")
	number, err := strconv.Atoi(param)
	if err != nil {
		field := "number"
		h.reject(c, s, wscutils.BuildErrorMessage(wscutils.ErrcodeInvalidNumber, &field, param))
		return
	}

	h.name(c, s, NameRequest{Number: &number, Mode: c.DefaultQuery("mode", h.defaultMode)})
}

func (h *Handler) postName(c *gin.Context, s *service.Service) {
	var req NameRequest
	if err := wscutils.BindJSON(c, &req); err != nil {
		s.LogHarbour.Info().LogActivity("invalid request body", map[string]any{"error": err.Error()})
		recordError(s, wscutils.ErrcodeInvalidJson)
		return
	}
	if req.Mode == "" {
		req.Mode = h.defaultMode
	}

	h.name(c, s, req)
}

func (h *Handler) name(c *gin.Context, s *service.Service, req NameRequest) {
	start := time.Now()
	lh := s.LogHarbour.WithModule("numbername").WithOp("getname")

	if validationErrors := wscutils.WscValidate(req, getVals); len(validationErrors) > 0 {
		h.reject(c, s, validationErrors...)
		return
	}
	if !validMode(req.Mode) {
		field := "mode"
		h.reject(c, s, wscutils.BuildErrorMessage(wscutils.ErrcodeInvalidMode, &field, req.Mode))
		return
	}
	number := *req.Number

	ctx := c.Request.Context()
	name, found, err := h.cache.Get(ctx, req.Mode, number)
	if err != nil {
		lh.Warn().LogActivity("name cache read failed", map[string]any{"number": number, "error": err.Error()})
	}

	if found {
		record(s, metrics.CacheHitsTotal, 1)
	} else {
		name, err = h.convert(req.Mode, number)
		// Unreachable while the validate tags match numname's range.
		if err != nil {
			lh.Error(err).LogActivity("conversion failed", map[string]any{"number": number})
			h.reject(c, s, wscutils.BuildErrorMessage(wscutils.ErrcodeOutOfRange, nil, strconv.Itoa(number)))
			return
		}
		if err := h.cache.Set(ctx, req.Mode, number, name); err != nil {
			lh.Warn().LogActivity("name cache write failed", map[string]any{"number": number, "error": err.Error()})
		}
	}

	lh.Debug0().LogActivity("number named", map[string]any{
		"number": number,
		"mode":   req.Mode,
		"name":   name,
		"cached": found,
	})
	recordWithLabels(s, metrics.ConversionsTotal, 1, numname.Tier(number), req.Mode)
	record(s, metrics.ConversionDuration, time.Since(start).Seconds())

	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(NameResponse{
		Number: number,
		Name:   name,
		Mode:   req.Mode,
	}))
}

func (h *Handler) convert(mode string, number int) (string, error) {
	if mode == ModeFull {
		return numname.FullName(number)
	}
	return h.converter.Name(number)
}

func (h *Handler) reject(c *gin.Context, s *service.Service, messages ...wscutils.ErrorMessage) {
	s.LogHarbour.WithModule("numbername").
		WithStatus(logharbour.Failure).
		Info().LogActivity("request rejected", map[string]any{"messages": messages})
	for _, m := range messages {
		recordError(s, m.ErrCode)
	}
	wscutils.SendErrorResponse(c, wscutils.NewResponse(wscutils.ErrorStatus, nil, messages))
}

// getVals returns the limit that was violated, if the tag has one.
func getVals(err validator.FieldError) []string {
	if err.Param() == "" {
		return nil
	}
	return []string{err.Param()}
}

func recordError(s *service.Service, errcode string) {
	recordWithLabels(s, metrics.ConversionErrors, 1, errcode)
}

func record(s *service.Service, name string, value float64) {
	if s.Metrics != nil {
		s.Metrics.Record(name, value)
	}
}

func recordWithLabels(s *service.Service, name string, value float64, labelValues ...string) {
	if s.Metrics != nil {
		s.Metrics.RecordWithLabels(name, value, labelValues...)
	}
}
