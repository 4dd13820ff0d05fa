package handlers

import (
	"net/http"

	"github.com/am-nutrition/storefront/internal/models"
	"github.com/am-nutrition/storefront/internal/shipping"
	"github.com/am-nutrition/storefront/internal/utils/response"
)

type ShippingHandler struct{}

func NewShippingHandler() *ShippingHandler {
	return &ShippingHandler{}
}

func (h *ShippingHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		region := r.URL.Query().Get("region")
		deliveryType := r.URL.Query().Get("type")

		quote := models.ShippingQuote{
			Region:       region,
			DeliveryType: deliveryType,
			Fee:          shipping.Quote(region, deliveryType),
		}

		response.Success(w, http.StatusOK, quote)
	}
}

func (h *ShippingHandler) ListRegions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		regions := shipping.Regions()

		infos := make([]models.RegionInfo, 0, len(regions))
		for _, region := range regions {
			infos = append(infos, models.RegionInfo{
				Region:     region,
				Localities: shipping.Localities(region),
			})
		}

		response.Success(w, http.StatusOK, infos)
	}
}
