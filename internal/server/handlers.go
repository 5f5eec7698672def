package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// maxBundleSections bounds one bundle request.
const maxBundleSections = 20

type handler struct {
	dispatcher *worksheet.Dispatcher
	version    string
}

// batchResponse adds the error fields Batch keeps out of its own JSON.
type batchResponse struct {
	problem.Batch
	Error     string       `json:"error,omitempty"`
	ErrorKind problem.Kind `json:"errorKind,omitempty"`
}

func newBatchResponse(b problem.Batch) batchResponse {
	return batchResponse{Batch: b, Error: b.ErrorMessage(), ErrorKind: problem.KindOf(b.Err)}
}

type bundleRequest struct {
	Seed     uint64              `json:"seed"`
	Sections []worksheet.Request `json:"sections"`
}

type bundleResponse struct {
	ID       string          `json:"id"`
	Seed     uint64          `json:"seed"`
	Sections []batchResponse `json:"sections"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

func (h *handler) modules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": worksheet.Modules()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "request_id": c.GetString(requestIDKey)})
}

func checkModule(req worksheet.Request) error {
	if _, ok := worksheet.Lookup(req.Module); !ok {
		return fmt.Errorf("unknown module %q", req.Module)
	}
	return nil
}

// generate produces one section. Generation failures still answer 200 with
// placeholder problems and the error fields set.
func (h *handler) generate(c *gin.Context) {
	var req worksheet.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := checkModule(req); err != nil {
		badRequest(c, err.Error())
		return
	}
	b := h.dispatcher.Generate(c.Request.Context(), req)
	c.JSON(http.StatusOK, newBatchResponse(b))
}

func (h *handler) bundle(c *gin.Context) {
	var req bundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if len(req.Sections) == 0 || len(req.Sections) > maxBundleSections {
		badRequest(c, fmt.Sprintf("a bundle needs between 1 and %d sections", maxBundleSections))
		return
	}
	for i, s := range req.Sections {
		if err := checkModule(s); err != nil {
			badRequest(c, fmt.Sprintf("section %d: %v", i+1, err))
			return
		}
	}

	b := h.dispatcher.GenerateBundle(c.Request.Context(), req.Seed, req.Sections)
	resp := bundleResponse{ID: b.ID, Seed: b.Seed, Sections: make([]batchResponse, len(b.Sections))}
	for i, s := range b.Sections {
		resp.Sections[i] = newBatchResponse(s)
	}
	c.JSON(http.StatusOK, resp)
}
