package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/fourcc/pkg/fourcc"
	"github.com/ssargent/fourcc/pkg/schema"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleText godoc
//
//	@Summary		Describe a code given as text
//	@Description	The code must be exactly four bytes once URL-unescaped
//	@Tags			fourcc
//	@Produce		json
//	@Param			code	path		string	true	"Four-byte code"
//	@Success		200		{object}	Description
//	@Failure		400		{object}	APIResponse
//	@Router			/fourcc/{code} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	raw, err := textParam(r, "code")
	if err != nil {
		s.conversionFailed(w, kindText, "Invalid code encoding")
		return
	}

	code, err := fourcc.Parse(raw)
	if err != nil {
		s.conversionFailed(w, kindText, lengthMessage(err))
		return
	}

	s.conversionSucceeded(w, kindText, code)
}

// handleUint32 godoc
//
//	@Summary		Describe the code for an integer
//	@Description	Accepts decimal, 0x hex, 0o octal or 0b binary
//	@Tags			fourcc
//	@Produce		json
//	@Param			value	path		string	true	"Unsigned 32-bit integer"
//	@Success		200		{object}	Description
//	@Failure		400		{object}	APIResponse
//	@Router			/fourcc/u32/{value} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleUint32(w http.ResponseWriter, r *http.Request) {
	code, err := ParseUint32(chi.URLParam(r, "value"))
	if err != nil {
		s.conversionFailed(w, kindU32, err.Error())
		return
	}

	s.conversionSucceeded(w, kindU32, code)
}

// handleHex godoc
//
//	@Summary		Describe the code for raw bytes
//	@Description	Eight hex digits, optionally prefixed with 0x; any byte values are allowed
//	@Tags			fourcc
//	@Produce		json
//	@Param			hex	path		string	true	"Four bytes as hex"
//	@Success		200	{object}	Description
//	@Failure		400	{object}	APIResponse
//	@Router			/fourcc/hex/{hex} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHex(w http.ResponseWriter, r *http.Request) {
	code, err := ParseHex(chi.URLParam(r, "hex"))
	if err != nil {
		s.conversionFailed(w, kindHex, err.Error())
		return
	}

	s.conversionSucceeded(w, kindHex, code)
}

// handleSchema godoc
//
//	@Summary		FourCC schema
//	@Description	OpenAPI definitions describing the FourCC type
//	@Tags			schema
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/schema [get]
//	@Security		ApiKeyAuth
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, schema.Definitions())
}

func (s *Server) conversionSucceeded(w http.ResponseWriter, kind string, code fourcc.FourCC) {
	if s.metrics != nil {
		s.metrics.RecordConversion(kind, true)
	}
	sendSuccess(w, NewDescription(code))
}

func (s *Server) conversionFailed(w http.ResponseWriter, kind, message string) {
	if s.metrics != nil {
		s.metrics.RecordConversion(kind, false)
	}
	sendError(w, message, http.StatusBadRequest)
}

func lengthMessage(err error) string {
	var lerr *fourcc.LengthError
	if errors.As(err, &lerr) {
		return fmt.Sprintf("Code must be exactly %d bytes, got %d", fourcc.Size, lerr.Len)
	}
	return err.Error()
}

// textParam returns the decoded value of a path parameter. chi routes on
// RawPath when the request has one, so only then is the value still escaped.
func textParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
