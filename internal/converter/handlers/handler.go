package handlers

import (
	"context"

	"blk2json/internal/converter/models"
	historymodels "blk2json/internal/history/models"
	"blk2json/internal/history/storage"
)

// ============================================================
// Handler
// ============================================================

// HistoryStore — то, что нужно обработчикам от репозитория истории.
type HistoryStore interface {
	Save(ctx context.Context, rec historymodels.Record) (*historymodels.Record, error)
	List(ctx context.Context, limit int) ([]historymodels.Record, error)
}

type Handler struct {
	history HistoryStore
	storage *storage.OutputStorage
	order   models.KeyOrder
	lang    string
}

// NewHandler: history и storage могут быть nil — тогда история не ведётся
// и сохранение на диск (save=true) недоступно.
func NewHandler(history HistoryStore, storage *storage.OutputStorage, order models.KeyOrder, lang string) *Handler {
	if order == "" {
		order = models.OrderNumeric
	}
	return &Handler{
		history: history,
		storage: storage,
		order:   order,
		lang:    lang,
	}
}
