package planks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const plankColumns = `id, sku, name, category, wood_type, grade, finish,
	thickness_mm, width_mm, length_mm, price::text, stock_quantity,
	unit_of_measure, COALESCE(description,''), COALESCE(image_url,''), created_at, updated_at`

func scanPlank(row pgx.Row) (*WoodPlank, error) {
	var p WoodPlank
	var priceStr string
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.WoodType, &p.Grade, &p.Finish,
		&p.ThicknessMM, &p.WidthMM, &p.LengthMM, &priceStr, &p.StockQuantity,
		&p.UnitOfMeasure, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("bad price for sku %s: %w", p.SKU, err)
	}
	p.Price = price
	return &p, nil
}

// Insert persists a draft, assigning a fresh id and timestamps. The sku
// column carries a unique constraint; a duplicate insert fails there.
func (r *Repo) Insert(ctx context.Context, n NewWoodPlank) (*WoodPlank, error) {
	id := uuid.New()
	now := time.Now().UTC()

	var desc, img *string
	if n.Description != "" {
		desc = &n.Description
	}
	if n.ImageURL != "" {
		img = &n.ImageURL
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO wood_planks (
			id, sku, name, category, wood_type, grade, finish,
			thickness_mm, width_mm, length_mm, price, stock_quantity,
			unit_of_measure, description, image_url, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11::numeric,$12,$13,$14,$15,$16,$17)
		RETURNING `+plankColumns+`
	`, id, n.SKU, n.Name, string(n.Category), string(n.WoodType), string(n.Grade), string(n.Finish),
		n.ThicknessMM, n.WidthMM, n.LengthMM, n.Price.String(), n.StockQuantity,
		n.UnitOfMeasure, desc, img, now, now)

	return scanPlank(row)
}

func (r *Repo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM wood_planks WHERE sku = $1`, sku).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) GetBySKU(ctx context.Context, sku string) (*WoodPlank, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+plankColumns+` FROM wood_planks WHERE sku = $1`, sku)
	p, err := scanPlank(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*WoodPlank, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+plankColumns+` FROM wood_planks WHERE id = $1`, id)
	p, err := scanPlank(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns planks matching the query filters, newest first.
func (r *Repo) List(ctx context.Context, q Query) ([]WoodPlank, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if q.Category != nil {
		add("category = $%d", string(*q.Category))
	}
	if q.WoodType != nil {
		add("wood_type = $%d", string(*q.WoodType))
	}
	if q.Grade != nil {
		add("grade = $%d", string(*q.Grade))
	}
	if q.Finish != nil {
		add("finish = $%d", string(*q.Finish))
	}
	if q.MinLength != nil {
		add("length_mm >= $%d", *q.MinLength)
	}
	if q.MaxLength != nil {
		add("length_mm <= $%d", *q.MaxLength)
	}
	if q.MinWidth != nil {
		add("width_mm >= $%d", *q.MinWidth)
	}
	if q.MaxWidth != nil {
		add("width_mm <= $%d", *q.MaxWidth)
	}
	if q.MinThickness != nil {
		add("thickness_mm >= $%d", *q.MinThickness)
	}
	if q.MaxThickness != nil {
		add("thickness_mm <= $%d", *q.MaxThickness)
	}
	if q.MinPrice != nil {
		add("price >= $%d::numeric", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		add("price <= $%d::numeric", q.MaxPrice.String())
	}
	if q.InStock != nil && *q.InStock {
		where = append(where, "stock_quantity > 0")
	}
	if q.SearchTerm != "" {
		args = append(args, q.SearchTerm)
		where = append(where, fmt.Sprintf(
			"(name ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')",
			len(args), len(args)))
	}

	sql := `SELECT ` + plankColumns + ` FROM wood_planks`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY created_at DESC, sku"

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, pageSize)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (page-1)*pageSize)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WoodPlank
	for rows.Next() {
		p, err := scanPlank(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// CountByCategory returns category -> number of planks, largest first.
func (r *Repo) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*) AS count
		FROM wood_planks
		GROUP BY category
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type CategoryCount struct {
	Category string
	Count    int64
}
