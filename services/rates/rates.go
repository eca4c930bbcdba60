// Package rates manages the entrance-fee rate table.
package rates

import (
	"errors"

	ratesRepo "palmera/database/repository/rates"
	"palmera/models"
)

// ErrNegativeRate rejects a table containing a negative unit price.
var ErrNegativeRate = errors.New("rate table contains a negative price")

// RatesService reads and updates the entrance-fee rate table.
type RatesService interface {
	// Get returns the current table, or nil when none is configured.
	Get() (*models.RateTable, error)
	Put(rt models.RateTable) error
}

// DefaultRatesService is the production rates service.
type DefaultRatesService struct {
	Repo ratesRepo.RatesRepository
}

func (s *DefaultRatesService) Get() (*models.RateTable, error) {
	return s.Repo.Get()
}

func (s *DefaultRatesService) Put(rt models.RateTable) error {
	for _, cat := range models.GuestCategories {
		pair := rt.Pair(cat)
		if pair.Day < 0 || pair.Night < 0 {
			return ErrNegativeRate
		}
	}
	return s.Repo.Put(&rt)
}
