package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/application/billing"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/internal/infrastructure/memory"
	"github.com/jhoicas/pdv-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/pdv-api/internal/interfaces/http"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// countingProducts cuenta las lecturas al repositorio de productos.
type countingProducts struct {
	repository.ProductRepository
	gets atomic.Int32
}

func (c *countingProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	c.gets.Add(1)
	return c.ProductRepository.GetByID(ctx, id)
}

// countingCustomers cuenta lecturas y puede simular una falla del repositorio.
type countingCustomers struct {
	repository.CustomerRepository
	gets atomic.Int32
	err  error
}

func (c *countingCustomers) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c.gets.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return c.CustomerRepository.GetByID(ctx, id)
}

type testEnv struct {
	app       *fiber.App
	customers *countingCustomers
	products  *countingProducts
	sales     *memory.SaleRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		customers: &countingCustomers{CustomerRepository: memory.NewCustomerRepository()},
		products:  &countingProducts{ProductRepository: memory.NewProductRepository()},
		sales:     memory.NewSaleRepository(),
	}
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, env.customers.Create(ctx, &entity.Customer{ID: "c1", Name: "Ana", CPF: "52998224725", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, env.products.Create(ctx, &entity.Product{ID: "p1", Name: "Caneta", Price: decimal.RequireFromString("2.50"), CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, env.products.Create(ctx, &entity.Product{ID: "p2", Name: "Caderno", Price: decimal.RequireFromString("15.00"), CreatedAt: now, UpdatedAt: now}))

	timeout := time.Second
	env.app = fiber.New()
	apphttp.Router(env.app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(env.customers, timeout),
		ProductUC:  usecase.NewProductUseCase(env.products, timeout),
		SaleUC:     billing.NewSaleUseCase(env.customers, env.products, env.sales, timeout),
		ReceiptPDF: billing.NewPDFUseCase(env.sales, pdf.NewMarotoReceiptGenerator("PDV"), timeout),
		Logger:     logger.Nop(),
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) (int, string, http.Header) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw), resp.Header
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /pdv
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1","p2"],"valorPago":20.00}`)
	require.Equal(t, fiber.StatusCreated, status, body)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, map[string]any{"nome": "Ana", "cpf": "52998224725"}, got["cliente"])
	assert.Equal(t, 17.5, got["valor_total"])
	assert.Equal(t, 20.0, got["valor_pago"])
	assert.Equal(t, 2.5, got["troco"])
	assert.NotEmpty(t, got["id"])

	items, ok := got["itens"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, map[string]any{"nome": "Caneta", "descricao": "Descrição não disponível", "valor_unitario": 2.5}, items[0])
	assert.Equal(t, "Caderno", items[1].(map[string]any)["nome"])
	assert.Equal(t, 1, env.sales.Count())
}

func TestSale_ExactPayment(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1","p2"],"valorPago":17.50}`)
	require.Equal(t, fiber.StatusCreated, status, body)
	assert.Contains(t, body, `"troco":0`)
}

func TestSale_InsufficientPayment(t *testing.T) {
	env := newTestEnv(t)

	status, body, hdr := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1","p2"],"valorPago":10.00}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Valor pago insuficiente para cobrir o total da compra.", body)
	assert.Contains(t, hdr.Get("Content-Type"), "text/plain")
	assert.Equal(t, 0, env.sales.Count())
}

func TestSale_MissingProductAbortsWithoutPersisting(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1","missing","other"],"valorPago":100}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Produto com ID missing não encontrado.", body)
	assert.Equal(t, 0, env.sales.Count())
	assert.EqualValues(t, 2, env.products.gets.Load(), "la búsqueda se detiene en el primer faltante")
}

func TestSale_CustomerNotFound(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"nope","produtos":["p1"],"valorPago":100}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Cliente não encontrado.", body)
	assert.EqualValues(t, 0, env.products.gets.Load())
	assert.Equal(t, 0, env.sales.Count())
}

func TestSale_RequiredFields(t *testing.T) {
	const msg = `Os campos "produtos", "clienteId" e "valorPago" são obrigatórios.`
	bodies := map[string]string{
		"produtos vacío":     `{"clienteId":"c1","produtos":[],"valorPago":20}`,
		"sin produtos":       `{"clienteId":"c1","valorPago":20}`,
		"sin clienteId":      `{"produtos":["p1"],"valorPago":20}`,
		"valorPago null":     `{"clienteId":"c1","produtos":["p1"],"valorPago":null}`,
		"sin valorPago":      `{"clienteId":"c1","produtos":["p1"]}`,
		"cuerpo mal formado": `{"clienteId":`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			status, got, _ := env.do(t, http.MethodPost, "/pdv", body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, msg, got)
			assert.EqualValues(t, 0, env.customers.gets.Load(), "no debe consultar el repositorio")
			assert.EqualValues(t, 0, env.products.gets.Load(), "no debe consultar el repositorio")
			assert.Equal(t, 0, env.sales.Count())
		})
	}
}

func TestSale_ZeroPaymentIsNotMissing(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1"],"valorPago":0}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Valor pago insuficiente para cobrir o total da compra.", body)
	assert.EqualValues(t, 1, env.customers.gets.Load())
}

func TestSale_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.customers.err = errors.New("conexão recusada")

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1"],"valorPago":20}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "Erro ao gerar cupom: ")
	assert.Contains(t, body, "conexão recusada")
	assert.Equal(t, 0, env.sales.Count())
}

func TestSale_DuplicatesAreSeparateLines(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1","p1","p1"],"valorPago":10}`)
	require.Equal(t, fiber.StatusCreated, status, body)

	var got struct {
		Itens []map[string]any `json:"itens"`
		Total float64          `json:"valor_total"`
		Troco float64          `json:"troco"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Len(t, got.Itens, 3)
	assert.Equal(t, 7.5, got.Total)
	assert.Equal(t, 2.5, got.Troco)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /pdv, /pdv/:id, /pdv/:id/cupom
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipts_GetListAndPDF(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/pdv", `{"clienteId":"c1","produtos":["p1"],"valorPago":5}`)
	require.Equal(t, fiber.StatusCreated, status, body)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	status, body, _ = env.do(t, http.MethodGet, "/pdv/"+created.ID, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"troco":2.5`)

	status, body, _ = env.do(t, http.MethodGet, "/pdv", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Len(t, list, 1)

	status, body, hdr := env.do(t, http.MethodGet, "/pdv/"+created.ID+"/cupom", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "application/pdf", hdr.Get("Content-Type"))
	assert.Equal(t, "inline; filename=cupom-"+created.ID+".pdf", hdr.Get("Content-Disposition"))
	assert.True(t, len(body) > 4 && body[:4] == "%PDF")

	status, _, _ = env.do(t, http.MethodGet, "/pdv/desconhecido", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _, _ = env.do(t, http.MethodGet, "/pdv/desconhecido/cupom", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD /clientes y /produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CRUD(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/clientes", `{"nome":"Bruno","cpf":"111.444.777-35"}`)
	require.Equal(t, fiber.StatusCreated, status, body)
	var created struct {
		ID   string `json:"id"`
		Nome string `json:"nome"`
		CPF  string `json:"cpf"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "11144477735", created.CPF)

	status, body, _ = env.do(t, http.MethodGet, "/clientes", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0]["nome"])

	status, body, _ = env.do(t, http.MethodPut, "/clientes/"+created.ID, `{"nome":"Bruno Silva","cpf":"11144477735"}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, "Bruno Silva")

	status, _, _ = env.do(t, http.MethodDelete, "/clientes/"+created.ID, "")
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _, _ = env.do(t, http.MethodGet, "/clientes/"+created.ID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _, _ = env.do(t, http.MethodDelete, "/clientes/"+created.ID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCustomers_Validation(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/clientes", `{"nome":"Carla","cpf":"12345678900"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "CPF inválido")

	status, _, _ = env.do(t, http.MethodPost, "/clientes", `{"cpf":"11144477735"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body, _ = env.do(t, http.MethodPost, "/clientes", `{"nome":"Outra Ana","cpf":"529.982.247-25"}`)
	assert.Equal(t, fiber.StatusConflict, status, body)
}

func TestProducts_CRUD(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.do(t, http.MethodPost, "/produtos", `{"Nome":"Borracha","Preco":1.999}`)
	require.Equal(t, fiber.StatusCreated, status, body)
	var created struct {
		ID    string  `json:"id"`
		Preco float64 `json:"Preco"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, 2.0, created.Preco)

	status, body, _ = env.do(t, http.MethodPut, "/produtos/"+created.ID, `{"Nome":"Borracha","Descricao":"branca","Preco":1.25}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, `"Descricao":"branca"`)

	status, body, _ = env.do(t, http.MethodGet, "/produtos", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Len(t, list, 3)

	status, _, _ = env.do(t, http.MethodDelete, "/produtos/"+created.ID, "")
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _, _ = env.do(t, http.MethodGet, "/produtos/"+created.ID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestProducts_InvalidPrice(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{`{"Nome":"X","Preco":0}`, `{"Nome":"X","Preco":-1}`} {
		status, got, _ := env.do(t, http.MethodPost, "/produtos", body)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, got, "Preço inválido")
	}
	status, _, _ := env.do(t, http.MethodPost, "/produtos", `{"Nome":"X"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
