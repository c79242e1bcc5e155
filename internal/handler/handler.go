package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aexoo-ai/spark-id/internal/metrics"
	"github.com/aexoo-ai/spark-id/pkg/log"
	"github.com/aexoo-ai/spark-id/pkg/response"
	"github.com/aexoo-ai/spark-id/sparkid"
)

// Handler handles HTTP requests for the spark-id service.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.POST("", h.GenerateID)
			ids.POST("/batch", h.GenerateBatch)
			ids.POST("/parse", h.ParseID)
			ids.POST("/validate", h.ValidateID)
			ids.GET("/stats", h.GetStats)
		}
		api.GET("/config", h.GetConfig)
	}
}

// ConfigOverride carries per-request tuning. Omitted fields fall through to
// the process-wide defaults, so the fields are pointers: an explicit zero is
// a real override, not an absence.
type ConfigOverride struct {
	EntropyBits     *int    `json:"entropy_bits,omitempty"`
	Alphabet        *string `json:"alphabet,omitempty"`
	MaxPrefixLength *int    `json:"max_prefix_length,omitempty"`
	Separator       *string `json:"separator,omitempty"`
	Case            *string `json:"case,omitempty"`
}

func (o *ConfigOverride) options() []sparkid.Option {
	if o == nil {
		return nil
	}
	var opts []sparkid.Option
	if o.EntropyBits != nil {
		opts = append(opts, sparkid.WithEntropyBits(*o.EntropyBits))
	}
	if o.Alphabet != nil {
		opts = append(opts, sparkid.WithAlphabet(*o.Alphabet))
	}
	if o.MaxPrefixLength != nil {
		opts = append(opts, sparkid.WithMaxPrefixLength(*o.MaxPrefixLength))
	}
	if o.Separator != nil {
		opts = append(opts, sparkid.WithSeparator(*o.Separator))
	}
	if o.Case != nil {
		opts = append(opts, sparkid.WithCase(sparkid.Case(strings.ToLower(*o.Case))))
	}
	return opts
}

// GenerateRequest is the body of POST /api/v1/ids.
type GenerateRequest struct {
	Prefix string          `json:"prefix"`
	Config *ConfigOverride `json:"config"`
}

// BatchRequest is the body of POST /api/v1/ids/batch.
type BatchRequest struct {
	Count  int             `json:"count"`
	Prefix string          `json:"prefix"`
	Unique bool            `json:"unique"`
	Config *ConfigOverride `json:"config"`
}

// ParseRequest is the body of POST /api/v1/ids/parse and /ids/validate.
type ParseRequest struct {
	ID     string          `json:"id"`
	Config *ConfigOverride `json:"config"`
}

// writeError maps a sparkid error code onto an HTTP status. Client mistakes
// are 400s; only exhausted unique generation and unexpected failures are
// 500s.
func writeError(c *gin.Context, err error) {
	code := sparkid.CodeOf(err)
	switch code {
	case sparkid.CodeInvalidPrefix,
		sparkid.CodeInvalidID,
		sparkid.CodeInvalidAlphabet,
		sparkid.CodeInvalidConfig,
		sparkid.CodeInvalidCount,
		sparkid.CodeCountTooLarge:
		response.Error(c, http.StatusBadRequest, code, err.Error())
	case sparkid.CodeGenerationFailed:
		response.Error(c, http.StatusInternalServerError, code, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}

// bindJSON decodes an optional JSON body. An empty body is fine; every field
// of every request is optional at the transport level.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// GenerateID mints a single identifier.
func (h *Handler) GenerateID(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req GenerateRequest
	if err := bindJSON(c, &req); err != nil {
		l.Warn().Err(err).Msg("invalid generate request")
		response.BadRequest(c, err.Error())
		return
	}

	id, err := sparkid.Generate(req.Prefix, req.Config.options()...)
	if err != nil {
		metrics.GenerateFailuresTotal.WithLabelValues(sparkid.CodeOf(err)).Inc()
		l.Warn().Err(err).Str(log.FieldCode, sparkid.CodeOf(err)).Str(log.FieldPrefix, req.Prefix).Msg("generate failed")
		writeError(c, err)
		return
	}

	metrics.IDsGeneratedTotal.WithLabelValues("single").Inc()
	response.Created(c, gin.H{"id": id})
}

// GenerateBatch mints count identifiers, optionally deduplicated.
func (h *Handler) GenerateBatch(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req BatchRequest
	if err := bindJSON(c, &req); err != nil {
		l.Warn().Err(err).Msg("invalid batch request")
		response.BadRequest(c, err.Error())
		return
	}

	var (
		ids  []string
		err  error
		mode = "batch"
	)
	if req.Unique {
		mode = "unique"
		ids, err = sparkid.GenerateUnique(req.Count, req.Prefix, req.Config.options()...)
	} else {
		ids, err = sparkid.GenerateMultiple(req.Count, req.Prefix, req.Config.options()...)
	}
	if err != nil {
		metrics.GenerateFailuresTotal.WithLabelValues(sparkid.CodeOf(err)).Inc()
		l.Warn().Err(err).Str(log.FieldCode, sparkid.CodeOf(err)).Int(log.FieldCount, req.Count).Bool(log.FieldUnique, req.Unique).Msg("batch generate failed")
		writeError(c, err)
		return
	}

	metrics.IDsGeneratedTotal.WithLabelValues(mode).Add(float64(len(ids)))
	response.Success(c, gin.H{"ids": ids, "count": len(ids)})
}

// ParseID decomposes an identifier into prefix, raw id, and full form.
func (h *Handler) ParseID(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req ParseRequest
	if err := bindJSON(c, &req); err != nil {
		l.Warn().Err(err).Msg("invalid parse request")
		response.BadRequest(c, err.Error())
		return
	}

	parsed, err := sparkid.Parse(req.ID, req.Config.options()...)
	if err != nil {
		metrics.ParsesTotal.WithLabelValues("invalid").Inc()
		l.Debug().Err(err).Msg("parse failed")
		writeError(c, err)
		return
	}

	metrics.ParsesTotal.WithLabelValues("ok").Inc()
	response.Success(c, parsed)
}

// ValidateID reports whether an identifier is well formed. Validity is data,
// not an error: the response is 200 either way.
func (h *Handler) ValidateID(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req ParseRequest
	if err := bindJSON(c, &req); err != nil {
		l.Warn().Err(err).Msg("invalid validate request")
		response.BadRequest(c, err.Error())
		return
	}

	valid := sparkid.IsValid(req.ID, req.Config.options()...)
	if valid {
		metrics.ValidationsTotal.WithLabelValues("true").Inc()
	} else {
		metrics.ValidationsTotal.WithLabelValues("false").Inc()
	}
	response.Success(c, gin.H{"id": req.ID, "valid": valid})
}

// GetStats reports the identifier shape under the process-wide defaults.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := sparkid.GetStats()
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetConfig echoes the process-wide defaults, reserved fields included.
func (h *Handler) GetConfig(c *gin.Context) {
	response.Success(c, sparkid.GetConfig())
}
