package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/common"
	"github.com/matst80/slask-directory/pkg/messaging"
	"github.com/matst80/slask-directory/pkg/storage"
	"github.com/matst80/slask-directory/pkg/types"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdirectory_searches_total",
		Help: "The total number of processed listing searches",
	})
	noSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdirectory_submissions_total",
		Help: "The total number of received tool submissions",
	})
	noRemovals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdirectory_removal_requests_total",
		Help: "The total number of received removal requests",
	})
	noContacts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdirectory_contact_messages_total",
		Help: "The total number of received contact messages",
	})
)

// WebServer serves the directory collaborator endpoints. The catalog is
// loaded once at startup and read-only afterwards, so handlers can share
// it without locking.
type WebServer struct {
	Catalog    *catalog.Catalog
	Db         *storage.DiskStorage
	Cache      *Cache
	Events     *messaging.DirectoryEvents
	Currencies []*types.Currency
	Prices     []*types.PlanPrice
}

// CreateHandler wires all routes onto a fresh mux.
func (ws *WebServer) CreateHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("OPTIONS /", common.RespondToOptions)
	mux.HandleFunc("GET /api/tools/", ws.GetTools)
	mux.HandleFunc("GET /api/tools/{id}/", ws.GetTool)
	mux.HandleFunc("GET /api/categories/", ws.GetCategories)
	mux.HandleFunc("GET /api/stats/", ws.GetStats)
	mux.HandleFunc("GET /api/currencies/", ws.GetCurrencies)
	mux.HandleFunc("GET /api/listing/prices", ws.GetPrices)
	mux.HandleFunc("POST /api/submit/", ws.SubmitTool)
	mux.HandleFunc("POST /api/remove/", ws.RequestRemoval)
	mux.HandleFunc("POST /api/contact/", ws.ContactUs)
	return mux
}
