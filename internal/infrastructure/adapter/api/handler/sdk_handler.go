package handler

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
)

// sdkMirrors lists CDN locations of the TON Connect SDK, tried in order.
var sdkMirrors = []string{
	"https://unpkg.com/@tonconnect/sdk@2/dist/tonconnect.min.js",
	"https://cdn.jsdelivr.net/npm/@tonconnect/sdk@2/dist/tonconnect.min.js",
	"https://unpkg.com/@tonconnect/sdk@latest/dist/tonconnect.min.js",
}

const (
	sdkFetchTimeout = 20 * time.Second
	sdkCacheMaxAge  = "public, max-age=86400"
	sdkContentType  = "application/javascript; charset=utf-8"
)

// sdkFallbackScript is served when every mirror fails, so the page gets a
// loadable script that surfaces the outage instead of a broken script tag.
const sdkFallbackScript = `console.error("TON Connect SDK could not be loaded: all CDN mirrors unreachable");`

// SDKHandler proxies the TON Connect SDK from CDN mirrors. Serving the script
// same-origin sidesteps client-side CDN blocking; a successful fetch is cached
// in memory.
type SDKHandler struct {
	client       *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu     sync.RWMutex
	cached []byte
}

// NewSDKHandler creates a new SDK proxy handler instance
func NewSDKHandler(timeProvider coreport.TimeProvider, logger coreport.Logger) *SDKHandler {
	return &SDKHandler{
		client:       &http.Client{},
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Serve handles the GET /tonconnect.min.js endpoint
func (h *SDKHandler) Serve(c *gin.Context) {
	h.mu.RLock()
	cached := h.cached
	h.mu.RUnlock()

	if cached != nil {
		c.Header("Cache-Control", sdkCacheMaxAge)
		c.Data(http.StatusOK, sdkContentType, cached)
		return
	}

	for _, mirror := range sdkMirrors {
		script, err := h.fetch(c, mirror)
		if err != nil {
			h.logger.Warn("SDK mirror fetch failed", map[string]any{
				"mirror": mirror,
				"error":  err.Error(),
			})
			continue
		}

		h.mu.Lock()
		h.cached = script
		h.mu.Unlock()

		c.Header("Cache-Control", sdkCacheMaxAge)
		c.Data(http.StatusOK, sdkContentType, script)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusInternalServerError, sdkContentType, []byte(sdkFallbackScript))
}

func (h *SDKHandler) fetch(c *gin.Context, mirror string) ([]byte, error) {
	ctx, cancel := h.timeProvider.WithTimeout(c.Request.Context(), sdkFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mirror, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &mirrorStatusError{status: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}

type mirrorStatusError struct {
	status int
}

func (e *mirrorStatusError) Error() string {
	return "unexpected status " + http.StatusText(e.status)
}
