package server

import (
	"net/http"
	"strconv"

	"github.com/matst80/slask-directory/pkg/common"
	"github.com/matst80/slask-directory/pkg/types"
)

func (ws *WebServer) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	common.PublicHeaders(w, r, "3600")
	common.WriteJson(w, http.StatusOK, struct {
		Currencies []*types.Currency `json:"currencies"`
	}{Currencies: ws.Currencies})
}

// GetPrices returns the listing plan prices for one currency. The widget
// sends the numeric currency id, the code is accepted as well.
func (ws *WebServer) GetPrices(w http.ResponseWriter, r *http.Request) {
	common.GenericHeaders(w, r)
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		common.WriteJson(w, http.StatusBadRequest, errorResponse{Error: "Missing currency parameter"})
		return
	}
	id, idErr := strconv.Atoi(currency)
	prices := make([]*types.PlanPrice, 0, 3)
	for _, price := range ws.Prices {
		if (idErr == nil && price.CurrencyId == id) || price.Code == currency {
			prices = append(prices, price)
		}
	}
	common.WriteJson(w, http.StatusOK, struct {
		Prices []*types.PlanPrice `json:"prices"`
	}{Prices: prices})
}
