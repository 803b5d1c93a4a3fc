package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"articled/internal/article"
)

// ScrapeRequest is the /scrape request body. Timeout is in milliseconds.
type ScrapeRequest struct {
	URL     string `json:"url" binding:"required"`
	Timeout int    `json:"timeout"`
}

// ScrapeResponse is the /scrape response body.
type ScrapeResponse struct {
	Success   bool   `json:"success"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "articled",
		"status":  "running",
		"version": s.cfg.ServiceVersion,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleScrape(c *gin.Context) {
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url must be a valid http(s) URL"})
		return
	}

	timeout := s.cfg.DefaultTimeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Millisecond
	}
	if timeout > s.cfg.MaxTimeout {
		timeout = s.cfg.MaxTimeout
	}

	s.log.Info("scraping request", zap.String("url", req.URL))

	res, err := s.scraper.Scrape(c.Request.Context(), req.URL, timeout)
	if err != nil {
		// Infrastructure failure during the browser lifecycle: reported
		// in-band with HTTP 200, matching what API clients expect.
		s.log.Error("scraping error", zap.String("url", req.URL), zap.Error(err))
		c.JSON(http.StatusOK, ScrapeResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if !res.Succeeded {
		// The page loaded but no strategy found acceptable content.
		c.JSON(http.StatusNotFound, ScrapeResponse{
			Success: false,
			Error:   "no content found",
		})
		return
	}

	c.JSON(http.StatusOK, ScrapeResponse{
		Success:   true,
		Content:   res.Content,
		WordCount: article.WordCount(res.Content),
	})
}
