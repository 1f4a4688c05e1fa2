// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// catalog data, abstracting SQL logic away from the service layer. Every
// repository is written against database.Querier, so the same methods run
// on the pool in auto-commit mode or inside a transaction handed out by
// database.WithTx.
package repository

import (
	"github.com/gearshed/gearshed/internal/database"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Equipment *EquipmentRepository
	Category  *CategoryRepository
	Package   *PackageRepository
	Stats     *StatsRepository
}

// NewRepositories constructs the repository container over one execution
// scope. Passing the pooled database gives auto-commit repositories;
// passing a transaction scopes every call to that transaction.
func NewRepositories(q database.Querier) *Repositories {
	return &Repositories{
		Equipment: NewEquipmentRepository(q),
		Category:  NewCategoryRepository(q),
		Package:   NewPackageRepository(q),
		Stats:     NewStatsRepository(q),
	}
}
