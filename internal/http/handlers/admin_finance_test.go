package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

func newFinanceHandler(t *testing.T) (*AdminFinanceHandler, *studio.State) {
	t.Helper()
	state := newTestState(t)
	return NewAdminFinanceHandler(state, logging.Default()), state
}

func TestFinanceCreateIncome(t *testing.T) {
	h, state := newFinanceHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.FinanceRecord{
		Description: "Box Braids - Juliana",
		Amount:      350,
		Type:        studio.FinanceIncome,
		Date:        dateFromNow(0),
		Category:    "Serviço",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var created studio.FinanceRecord
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, state.Finances(), 1)
}

func TestFinanceCreateRejectsUnknownType(t *testing.T) {
	h, _ := newFinanceHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.FinanceRecord{
		Description: "???",
		Amount:      10,
		Type:        "transfer",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceUpdate(t *testing.T) {
	h, state := newFinanceHandler(t)
	created := doJSON(t, h.Routes(), http.MethodPost, "/", studio.FinanceRecord{
		Description: "Jumbo Roxo",
		Amount:      80,
		Type:        studio.FinanceExpense,
		Date:        dateFromNow(0),
		Category:    "Material",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var record studio.FinanceRecord
	decodeBody(t, created, &record)

	record.Amount = 95
	rec := doJSON(t, h.Routes(), http.MethodPut, "/"+record.ID, record)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 95.0, state.Finances()[0].Amount)
}

func TestFinanceUpdateUnknownID(t *testing.T) {
	h, _ := newFinanceHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPut, "/nope", studio.FinanceRecord{
		Description: "x", Amount: 1, Type: studio.FinanceIncome,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinanceDelete(t *testing.T) {
	h, state := newFinanceHandler(t)
	created := doJSON(t, h.Routes(), http.MethodPost, "/", studio.FinanceRecord{
		Description: "Pomada", Amount: 30, Type: studio.FinanceExpense, Date: dateFromNow(0),
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var record studio.FinanceRecord
	decodeBody(t, created, &record)

	rec := doJSON(t, h.Routes(), http.MethodDelete, "/"+record.ID, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, state.Finances())
}
