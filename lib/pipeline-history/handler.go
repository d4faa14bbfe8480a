package pipelinehistory

import (
	"talentflow-backend/db"
	historystore "talentflow-backend/lib/pipeline-history/store"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
)

type Provider interface {
	ListByCandidate(candidateID string) (list []pipelineapimodels.HistoryView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: historystore.NewInstance(db.DB),
	}
}

type impl struct {
	store historystore.Provider
}

func (i impl) ListByCandidate(candidateID string) ([]pipelineapimodels.HistoryView, error) {
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]pipelineapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.HistoryConvert(rec))
	}
	return result, nil
}
