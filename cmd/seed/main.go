// seed carga clientes y productos desde CSV usando los mismos casos de uso que la API
// (validación de CPF, precio > 0, CPF único).
//
// Uso:
//
//	go run ./cmd/seed clientes clientes.csv [--sep ';'] [--latin1]
//	go run ./cmd/seed produtos produtos.csv
//
// produtos.csv: Nome;Preco;Descricao (Descricao opcional). Preco acepta "2,50" o "2.50".
// clientes.csv: nome;cpf (cpf con o sin máscara).
// La primera línea se descarta si es encabezado. --latin1 decodifica exportaciones ISO-8859-1.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/infrastructure/storage"
	"github.com/jhoicas/pdv-api/pkg/config"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

// seedOptions flags compartidos por los subcomandos.
type seedOptions struct {
	Sep    string
	Latin1 bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &seedOptions{}
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Carga clientes y productos del PDV desde CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.Sep, "sep", ";", "separador de columnas")
	root.PersistentFlags().BoolVar(&opts.Latin1, "latin1", false, "el archivo está en ISO-8859-1")

	root.AddCommand(&cobra.Command{
		Use:   "clientes <arquivo.csv>",
		Short: "Carga clientes (nome;cpf)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd.Context(), func(ctx context.Context, st *storage.Stores, cfg *config.Config, log *logger.Logger) error {
				return seedCustomers(ctx, opts, args[0], usecase.NewCustomerUseCase(st.Customers, cfg.Store.Timeout), log)
			})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "produtos <arquivo.csv>",
		Short: "Carga productos (Nome;Preco;Descricao)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd.Context(), func(ctx context.Context, st *storage.Stores, cfg *config.Config, log *logger.Logger) error {
				return seedProducts(ctx, opts, args[0], usecase.NewProductUseCase(st.Products, cfg.Store.Timeout), log)
			})
		},
	})
	return root
}

func withStores(ctx context.Context, fn func(context.Context, *storage.Stores, *config.Config, *logger.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer st.Close()
	return fn(ctx, st, cfg, log)
}

func (o *seedOptions) comma() (rune, error) {
	r := []rune(o.Sep)
	if len(r) != 1 {
		return 0, errors.New("--sep debe ser un único carácter")
	}
	return r[0], nil
}

func seedCustomers(ctx context.Context, opts *seedOptions, path string, uc *usecase.CustomerUseCase, log *logger.Logger) error {
	comma, err := opts.comma()
	if err != nil {
		return err
	}
	rows, err := readFile(path, comma, opts.Latin1, parseCustomers)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	created, skipped := 0, 0
	for _, in := range rows {
		if _, err := uc.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrInvalidCPF) || errors.Is(err, domain.ErrInvalidInput) {
				log.Warn().Err(err).Str("nome", in.Name).Str("cpf", in.CPF).Msg("cliente omitido")
				skipped++
				continue
			}
			return fmt.Errorf("crear cliente %q: %w", in.Name, err)
		}
		created++
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("clientes cargados")
	return nil
}

func seedProducts(ctx context.Context, opts *seedOptions, path string, uc *usecase.ProductUseCase, log *logger.Logger) error {
	comma, err := opts.comma()
	if err != nil {
		return err
	}
	rows, err := readFile(path, comma, opts.Latin1, parseProducts)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	created, skipped := 0, 0
	for _, in := range rows {
		if _, err := uc.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				log.Warn().Str("nome", in.Name).Msg("producto omitido: nombre vacío o precio inválido")
				skipped++
				continue
			}
			return fmt.Errorf("crear producto %q: %w", in.Name, err)
		}
		created++
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("produtos cargados")
	return nil
}

func readFile[T any](path string, comma rune, latin1 bool, parse func(io.Reader, rune) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(decodeReader(f, latin1), comma)
}

// decodeReader convierte ISO-8859-1 a UTF-8 cuando latin1 es true.
func decodeReader(r io.Reader, latin1 bool) io.Reader {
	if !latin1 {
		return r
	}
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}

func parseCustomers(r io.Reader, comma rune) ([]dto.CustomerRequest, error) {
	records, err := readRecords(r, comma, "nome")
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerRequest, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan 2 columnas (nome;cpf)", i+1)
		}
		out = append(out, dto.CustomerRequest{Name: strings.TrimSpace(rec[0]), CPF: strings.TrimSpace(rec[1])})
	}
	return out, nil
}

func parseProducts(r io.Reader, comma rune) ([]dto.ProductRequest, error) {
	records, err := readRecords(r, comma, "nome")
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductRequest, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos 2 columnas (Nome;Preco)", i+1)
		}
		price, err := parsePrice(rec[1])
		if err != nil {
			return nil, fmt.Errorf("línea %d: preco %q: %w", i+1, rec[1], err)
		}
		in := dto.ProductRequest{Name: strings.TrimSpace(rec[0]), Price: &price}
		if len(rec) > 2 {
			in.Description = strings.TrimSpace(rec[2])
		}
		out = append(out, in)
	}
	return out, nil
}

// readRecords lee todas las filas y descarta el encabezado si su primera columna es header.
func readRecords(r io.Reader, comma rune, header string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && len(records[0]) > 0 && strings.EqualFold(strings.TrimSpace(records[0][0]), header) {
		records = records[1:]
	}
	return records, nil
}

// parsePrice acepta "1.234,56" (formato brasileño) y "1234.56".
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}
