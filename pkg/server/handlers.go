package server

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/schema"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/common"
	"github.com/matst80/slask-directory/pkg/types"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

const toolsCacheKey = "tools-response"

type toolsResponse struct {
	Success    bool          `json:"success"`
	Tools      []*types.Tool `json:"tools"`
	Total      int           `json:"total"`
	Page       int           `json:"page,omitempty"`
	PerPage    int           `json:"per_page,omitempty"`
	TotalPages int           `json:"total_pages,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// GetTools filters, sorts and optionally paginates the listing. Without a
// page parameter the full matching list is returned, which is what the
// client-side directory wants for its initial load.
func (ws *WebServer) GetTools(w http.ResponseWriter, r *http.Request) {
	noSearches.Inc()
	request := &types.DirectoryRequest{}
	if err := queryDecoder.Decode(request, r.URL.Query()); err != nil {
		common.GenericHeaders(w, r)
		common.WriteJson(w, http.StatusBadRequest, errorResponse{Error: "Invalid query parameters"})
		return
	}
	common.DefaultHeaders(w, r, "120")

	if request.FilterState.IsEmpty() && request.Page == 0 && request.Sort == "" {
		var cached toolsResponse
		if err := ws.Cache.Get(toolsCacheKey, &cached); err == nil {
			common.WriteJson(w, http.StatusOK, cached)
			return
		}
	}

	matching := catalog.Filter(ws.Catalog.Tools(), &request.FilterState)
	catalog.Sort(matching, request.Sort)

	response := toolsResponse{
		Success: true,
		Tools:   matching,
		Total:   len(matching),
	}
	if request.Page > 0 {
		perPage := request.PageSize
		if perPage <= 0 {
			perPage = catalog.DefaultPageSize
		}
		window := catalog.PageWindow(matching, request.Page, perPage)
		if window == nil {
			common.WriteJson(w, http.StatusNotFound, errorResponse{Error: "Page out of range"})
			return
		}
		response.Tools = window
		response.Page = request.Page
		response.PerPage = perPage
		response.TotalPages = catalog.TotalPages(len(matching), perPage)
	} else if request.FilterState.IsEmpty() && request.Sort == "" {
		if err := ws.Cache.Set(toolsCacheKey, response, time.Minute*10); err != nil {
			log.Printf("Failed to cache tools response: %v", err)
		}
	}
	common.WriteJson(w, http.StatusOK, response)
}

// GetTool returns a single listing by id.
func (ws *WebServer) GetTool(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	common.GenericHeaders(w, r)
	tool, ok := ws.Catalog.GetTool(id)
	if !ok {
		common.WriteJson(w, http.StatusNotFound, errorResponse{Error: "Tool not found"})
		return
	}
	common.WriteJson(w, http.StatusOK, struct {
		Success bool        `json:"success"`
		Tool    *types.Tool `json:"tool"`
	}{Success: true, Tool: tool})
}

func (ws *WebServer) GetCategories(w http.ResponseWriter, r *http.Request) {
	common.PublicHeaders(w, r, "600")
	categories := ws.Catalog.Categories()
	sort.Strings(categories)
	common.WriteJson(w, http.StatusOK, struct {
		Success    bool     `json:"success"`
		Categories []string `json:"categories"`
	}{Success: true, Categories: categories})
}

func (ws *WebServer) GetStats(w http.ResponseWriter, r *http.Request) {
	common.PublicHeaders(w, r, "600")
	common.WriteJson(w, http.StatusOK, struct {
		Success bool          `json:"success"`
		Stats   catalog.Stats `json:"stats"`
	}{Success: true, Stats: ws.Catalog.Stats()})
}
