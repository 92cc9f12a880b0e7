package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/repairbot/pkg/domain"
)

// CatalogRepository handles catalog items
type CatalogRepository struct {
	db *sqlx.DB
}

type itemSQL struct {
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	NameKey   string        `db:"name_key"`
	Price     float64       `db:"price"`
	Stock     sql.NullInt64 `db:"stock"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (i itemSQL) toDomain() domain.Item {
	item := domain.Item{ID: i.ID, Name: i.Name, Price: i.Price, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt}
	if i.Stock.Valid {
		stock := int(i.Stock.Int64)
		item.Stock = &stock
	}
	return item
}

func nullStock(stock *int) sql.NullInt64 {
	if stock == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*stock), Valid: true}
}

// nameKey is the case-insensitive identity of an item name, accents are kept
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// AddItem inserts a new item, ErrDuplicate if the name is taken ignoring case
func (r *CatalogRepository) AddItem(ctx context.Context, item *domain.Item) error {
	return withRetry(ctx, "add item", func() error {
		res, err := r.db.ExecContext(ctx, "INSERT INTO items (name, name_key, price, stock) VALUES (?, ?, ?, ?)",
			item.Name, nameKey(item.Name), item.Price, nullStock(item.Stock))
		if isUniqueError(err) {
			return ErrDuplicate
		}
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
}

// UpdatePrice sets the price of the item with the given name, ErrNotFound if there is none
func (r *CatalogRepository) UpdatePrice(ctx context.Context, name string, price float64) error {
	return r.execOne(ctx, "update price",
		"UPDATE items SET price = ?, updated_at = CURRENT_TIMESTAMP WHERE name_key = ?", price, nameKey(name))
}

// UpdateStock sets or clears (nil) the stock of the item with the given name
func (r *CatalogRepository) UpdateStock(ctx context.Context, name string, stock *int) error {
	return r.execOne(ctx, "update stock",
		"UPDATE items SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE name_key = ?", nullStock(stock), nameKey(name))
}

// RemoveItem deletes the item with the given name, ErrNotFound if there is none
func (r *CatalogRepository) RemoveItem(ctx context.Context, name string) error {
	return r.execOne(ctx, "remove item", "DELETE FROM items WHERE name_key = ?", nameKey(name))
}

// GetItem returns the item with exactly this name, ignoring case
func (r *CatalogRepository) GetItem(ctx context.Context, name string) (domain.Item, error) {
	var row itemSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM items WHERE name_key = ?", nameKey(name))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, ErrNotFound
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item: %w", err)
	}
	return row.toDomain(), nil
}

// ListItems returns the whole catalog ordered by name
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	var rows []itemSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM items ORDER BY name_key"); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	res := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// FindItem resolves a free-text reference to a single item. An exact name match wins,
// otherwise the shortest name that contains the query or is contained in it.
func (r *CatalogRepository) FindItem(ctx context.Context, query string) (domain.Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return domain.Item{}, ErrNotFound
	}
	items, err := r.ListItems(ctx)
	if err != nil {
		return domain.Item{}, fmt.Errorf("find item: %w", err)
	}

	var best *domain.Item
	for i := range items {
		name := nameKey(items[i].Name)
		if name == q {
			return items[i], nil
		}
		if !strings.Contains(name, q) && !strings.Contains(q, name) {
			continue
		}
		if best == nil || len(items[i].Name) < len(best.Name) {
			best = &items[i]
		}
	}
	if best == nil {
		return domain.Item{}, ErrNotFound
	}
	return *best, nil
}

// SimilarItems returns up to limit items sharing at least one word (3+ letters) with the query,
// most shared words first
func (r *CatalogRepository) SimilarItems(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	qWords := words(query)
	if len(qWords) == 0 || limit <= 0 {
		return []domain.Item{}, nil
	}
	items, err := r.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("similar items: %w", err)
	}

	type scored struct {
		item  domain.Item
		score int
	}
	var matches []scored
	for _, item := range items {
		score := 0
		for w := range words(item.Name) {
			if _, ok := qWords[w]; ok {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{item: item, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	res := make([]domain.Item, 0, limit)
	for i := 0; i < len(matches) && i < limit; i++ {
		res = append(res, matches[i].item)
	}
	return res, nil
}

func (r *CatalogRepository) execOne(ctx context.Context, op, query string, args ...any) error {
	return withRetry(ctx, op, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func words(s string) map[string]struct{} {
	res := map[string]struct{}{}
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len([]rune(w)) >= 3 {
			res[w] = struct{}{}
		}
	}
	return res
}
