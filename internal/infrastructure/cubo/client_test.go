package cubo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/cubo"
)

func TestBuscarRegistros_DecodificaArrayComJSONNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"nota": 5001, "valorNota": 1234.56, "razao": "Alfa"}]`))
	}))
	defer srv.Close()

	client := cubo.NewClient(srv.URL, 5*time.Second)
	registros, err := client.BuscarRegistros(context.Background())
	require.NoError(t, err)
	require.Len(t, registros, 1)

	// Números ficam como json.Number, sem passar por float64
	assert.Equal(t, json.Number("5001"), registros[0]["nota"])
	assert.Equal(t, json.Number("1234.56"), registros[0]["valorNota"])
	assert.Equal(t, "Alfa", registros[0]["razao"])
}

func TestBuscarRegistros_StatusNao200_DevolveFeedIndisponivel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := cubo.NewClient(srv.URL, 5*time.Second)
	_, err := client.BuscarRegistros(context.Background())
	assert.ErrorIs(t, err, cubo.ErrFeedIndisponivel)
}

func TestBuscarRegistros_JSONInvalido_DevolveFeedIndisponivel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"isto": "não é um array"`))
	}))
	defer srv.Close()

	client := cubo.NewClient(srv.URL, 5*time.Second)
	_, err := client.BuscarRegistros(context.Background())
	assert.ErrorIs(t, err, cubo.ErrFeedIndisponivel)
}

func TestBuscarRegistros_ServidorForaDoAr_DevolveFeedIndisponivel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // derruba antes da chamada

	client := cubo.NewClient(srv.URL, time.Second)
	_, err := client.BuscarRegistros(context.Background())
	assert.ErrorIs(t, err, cubo.ErrFeedIndisponivel)
}
