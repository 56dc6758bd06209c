package http

import (
	"net/http"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/pipelinesdk"
)

// StagesHandler godoc
//
//	@Summary		Pipeline stages
//	@Description	The five stages in pipeline order with their icon, color and description.
//	@Tags			Board
//	@Produce		json
//	@Success		200	{object}	pipelinesdk.StagesResponse	"stages"
//	@Router			/v1/stages [get].
func StagesHandler() http.HandlerFunc {
	descs := domain.Descriptors()
	resp := pipelinesdk.StagesResponse{Stages: make([]pipelinesdk.StageDescriptor, len(descs))}
	for i, d := range descs {
		resp.Stages[i] = toStageDescriptor(d)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
