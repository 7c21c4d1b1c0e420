package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
)

type QuestionsHandler struct {
	catalog *catalog.Catalog
}

func NewQuestionsHandler(c *catalog.Catalog) *QuestionsHandler {
	return &QuestionsHandler{catalog: c}
}

type QuestionsResponse struct {
	Sections  []catalog.SectionInfo `json:"sections"`
	Questions []catalog.Question    `json:"questions"`
}

func (h *QuestionsHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := QuestionsResponse{
		Sections:  h.catalog.Sections(),
		Questions: h.catalog.Questions(),
	}
	if section := r.URL.Query().Get("section"); section != "" {
		resp.Questions = h.catalog.BySection(catalog.Section(section))
		if resp.Questions == nil {
			resp.Questions = []catalog.Question{}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
