package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// GetOrCreateBySession returns the session's cart, creating it on first
// use. Session id carries a unique constraint.
func (r *Repo) GetOrCreateBySession(ctx context.Context, sessionID string, userID *uuid.UUID) (*Cart, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO carts (id, user_id, session_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$4)
		ON CONFLICT (session_id) DO NOTHING
		RETURNING id, user_id, session_id, created_at, updated_at
	`, uuid.New(), userID, sessionID, time.Now().UTC())

	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.SessionID, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		// Already there.
		return r.getBySession(ctx, sessionID)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) getBySession(ctx context.Context, sessionID string) (*Cart, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, session_id, created_at, updated_at
		FROM carts WHERE session_id = $1
	`, sessionID)
	var c Cart
	if err := row.Scan(&c.ID, &c.UserID, &c.SessionID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// AddItem puts a plank into the cart, accumulating quantity when the
// plank is already present.
func (r *Repo) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*Item, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO cart_items (id, cart_id, wood_plank_id, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$5)
		ON CONFLICT (cart_id, wood_plank_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id, cart_id, wood_plank_id, quantity, created_at, updated_at
	`, uuid.New(), cartID, req.WoodPlankID, req.Quantity, time.Now().UTC())

	var it Item
	if err := row.Scan(&it.ID, &it.CartID, &it.WoodPlankID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repo) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items WHERE id = $1 AND cart_id = $2
	`, itemID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Summary joins items with their planks for display totals.
func (r *Repo) Summary(ctx context.Context, cartID uuid.UUID) (*Summary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ci.id, ci.wood_plank_id, p.name, ci.quantity, p.price::text, COALESCE(p.image_url,'')
		FROM cart_items ci
		JOIN wood_planks p ON p.id = ci.wood_plank_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s := Summary{CartID: cartID, Subtotal: decimal.Zero}
	for rows.Next() {
		var it ItemSummary
		var priceStr string
		if err := rows.Scan(&it.ID, &it.WoodPlankID, &it.Name, &it.Quantity, &priceStr, &it.ImageURL); err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("bad price for cart item %s: %w", it.ID, err)
		}
		it.Price = price
		it.Subtotal = price.Mul(decimal.NewFromInt32(it.Quantity))
		s.Items = append(s.Items, it)
		s.TotalItems += it.Quantity
		s.Subtotal = s.Subtotal.Add(it.Subtotal)
	}
	return &s, rows.Err()
}
