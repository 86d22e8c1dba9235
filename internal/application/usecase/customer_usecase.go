package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

// CustomerUseCase panel de clientes del operador: listado, búsqueda y
// bloqueo. La búsqueda es insensible a mayúsculas y acentos ("jose"
// encuentra a "José").
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista clientes; query vacío devuelve todos.
func (uc *CustomerUseCase) List(ctx context.Context, query string) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := foldAccents(strings.ToLower(strings.TrimSpace(query)))
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if needle != "" && !matchesCustomer(c, needle) {
			continue
		}
		items = append(items, toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items}, nil
}

// SetBlocked bloquea o desbloquea a un cliente.
func (uc *CustomerUseCase) SetBlocked(ctx context.Context, email string, blocked bool) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.repo.SetBlocked(ctx, email, blocked, now); err != nil {
		return nil, err
	}
	customer.Blocked = blocked
	customer.UpdatedAt = now
	resp := toCustomerResponse(customer)
	return &resp, nil
}

func matchesCustomer(c *entity.Customer, needle string) bool {
	name := foldAccents(strings.ToLower(c.Name))
	email := strings.ToLower(c.Email)
	return strings.Contains(name, needle) || strings.Contains(email, needle)
}

// foldAccents elimina las marcas diacríticas (José → Jose) vía
// descomposición NFD.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		Email:     c.Email,
		Name:      c.Name,
		Role:      c.Role,
		Blocked:   c.Blocked,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
