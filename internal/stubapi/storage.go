package stubapi

import (
	"errors"
	"sync"

	"github.com/voxtelecom/vendas-cli/internal/vendas"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale with an empty ID.
var ErrEmptyID = errors.New("empty sale ID")

// Storage is the main interface for the stub's sale storage.
type Storage interface {
	Set(sale *vendas.Sale) error
	Read(id string) (*vendas.Sale, error)
	GetAll() ([]*vendas.Sale, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing sales.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*vendas.Sale
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*vendas.Sale{},
	}
}

// Set stores a sale. Returns ErrEmptyID if the sale has an empty ID.
func (l *LocalStorage) Set(sale *vendas.Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[sale.ID] = sale
	return nil
}

// Read retrieves a sale by ID. Returns ErrNotFound if the sale is not found.
func (l *LocalStorage) Read(id string) (*vendas.Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// GetAll retrieves all stored sales.
func (l *LocalStorage) GetAll() ([]*vendas.Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sales := make([]*vendas.Sale, 0, len(l.m))
	for _, s := range l.m {
		sales = append(sales, s)
	}
	return sales, nil
}

// Delete removes a sale by ID. Returns ErrNotFound if the sale is not found.
func (l *LocalStorage) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.m[id]; !ok {
		return ErrNotFound
	}
	delete(l.m, id)
	return nil
}
