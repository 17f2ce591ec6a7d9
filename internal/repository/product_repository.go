package repository

import (
	"context"
	"fmt"

	"glamora/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productColumns is the select list shared by every product query. Scan order
// must match scanProduct.
const productColumns = `id, name, description, short_description, price, original_price,
		images, category, rating, review_count, in_stock, stock_quantity, sku,
		tags, is_new, is_best_seller, ingredients, how_to_use, benefits,
		created_at, updated_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ShortDescription, &p.Price, &p.OriginalPrice,
		&p.Images, &p.Category, &p.Rating, &p.ReviewCount, &p.InStock, &p.StockQuantity, &p.SKU,
		&p.Tags, &p.IsNew, &p.IsBestSeller, &p.Ingredients, &p.HowToUse, &p.Benefits,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetAll retrieves products with optional category narrowing, newest first,
// including variants and reviews.
func (r *productRepository) GetAll(ctx context.Context, category string, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	var args []any
	if category != "" && category != "all" {
		args = append(args, category)
		query += fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("category", category).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	if err := r.attachDetails(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID retrieves a single product by its ID, including variants and
// reviews. Returns nil when not found.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	products := []model.Product{p}
	if err := r.attachDetails(ctx, products); err != nil {
		return nil, err
	}

	return &products[0], nil
}

// GetByIDs retrieves multiple products by their IDs.
func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY name`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	if err := r.attachDetails(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// attachDetails loads variants and reviews for the given products in two bulk
// queries and distributes them onto the slice elements.
func (r *productRepository) attachDetails(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	index := make(map[string]*model.Product, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = &products[i]
	}

	variantsQuery := `
		SELECT id, product_id, name, price, in_stock, sku, created_at, updated_at
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY product_id, name
	`

	rows, err := r.pool.Query(ctx, variantsQuery, ids)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query product variants")
		return fmt.Errorf("failed to query product variants: %w", err)
	}

	for rows.Next() {
		var v model.ProductVariant
		err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.InStock, &v.SKU, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			rows.Close()
			r.logger.Error().Err(err).Msg("failed to scan product variant row")
			return fmt.Errorf("failed to scan product variant: %w", err)
		}
		if p, ok := index[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		r.logger.Error().Err(err).Msg("error iterating product variant rows")
		return fmt.Errorf("error iterating product variants: %w", err)
	}
	rows.Close()

	reviewsQuery := `
		SELECT r.id, r.product_id, r.user_id, r.rating, r.title, r.comment,
			r.verified, r.created_at, r.updated_at, u.name, u.image
		FROM product_reviews r
		LEFT JOIN users u ON u.id::text = r.user_id
		WHERE r.product_id = ANY($1)
		ORDER BY r.created_at DESC
	`

	rows, err = r.pool.Query(ctx, reviewsQuery, ids)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query product reviews")
		return fmt.Errorf("failed to query product reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rv model.ProductReview
		var user model.ReviewUser
		err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Rating, &rv.Title, &rv.Comment,
			&rv.Verified, &rv.CreatedAt, &rv.UpdatedAt, &user.Name, &user.Image)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product review row")
			return fmt.Errorf("failed to scan product review: %w", err)
		}
		rv.User = &user
		if p, ok := index[rv.ProductID]; ok {
			p.Reviews = append(p.Reviews, rv)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product review rows")
		return fmt.Errorf("error iterating product reviews: %w", err)
	}

	return nil
}

// ValidateProductsExist checks if all provided product IDs exist in the database.
// Returns error if any product ID does not exist.
func (r *productRepository) ValidateProductsExist(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	// Query to check how many of the provided IDs exist
	query := `
		SELECT COUNT(DISTINCT id)
		FROM products
		WHERE id = ANY($1)
	`

	var count int
	err := r.pool.QueryRow(ctx, query, ids).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to validate products exist")
		return fmt.Errorf("failed to validate products exist: %w", err)
	}

	if count != len(ids) {
		r.logger.Warn().
			Int("expected", len(ids)).
			Int("found", count).
			Msg("not all product IDs exist")
		return model.ErrProductNotFound
	}

	return nil
}

// Upsert inserts or updates catalogue products from seed data, replacing
// variants and reviews wholesale per product.
func (r *productRepository) Upsert(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	productQuery := `
		INSERT INTO products (id, name, description, short_description, price, original_price,
			images, category, rating, review_count, in_stock, stock_quantity, sku,
			tags, is_new, is_best_seller, ingredients, how_to_use, benefits,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			short_description = EXCLUDED.short_description,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			images = EXCLUDED.images,
			category = EXCLUDED.category,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			in_stock = EXCLUDED.in_stock,
			stock_quantity = EXCLUDED.stock_quantity,
			sku = EXCLUDED.sku,
			tags = EXCLUDED.tags,
			is_new = EXCLUDED.is_new,
			is_best_seller = EXCLUDED.is_best_seller,
			ingredients = EXCLUDED.ingredients,
			how_to_use = EXCLUDED.how_to_use,
			benefits = EXCLUDED.benefits,
			updated_at = EXCLUDED.updated_at
	`
	variantQuery := `
		INSERT INTO product_variants (id, product_id, name, price, in_stock, sku, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			in_stock = EXCLUDED.in_stock,
			sku = EXCLUDED.sku,
			updated_at = EXCLUDED.updated_at
	`
	reviewQuery := `
		INSERT INTO product_reviews (id, product_id, user_id, rating, title, comment, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			rating = EXCLUDED.rating,
			title = EXCLUDED.title,
			comment = EXCLUDED.comment,
			verified = EXCLUDED.verified,
			updated_at = EXCLUDED.updated_at
	`

	batch := &pgx.Batch{}
	queued := 0
	for _, p := range products {
		batch.Queue(productQuery, p.ID, p.Name, p.Description, p.ShortDescription, p.Price, p.OriginalPrice,
			p.Images, p.Category, p.Rating, p.ReviewCount, p.InStock, p.StockQuantity, p.SKU,
			p.Tags, p.IsNew, p.IsBestSeller, p.Ingredients, p.HowToUse, p.Benefits,
			p.CreatedAt, p.UpdatedAt)
		queued++
		for _, v := range p.Variants {
			batch.Queue(variantQuery, v.ID, p.ID, v.Name, v.Price, v.InStock, v.SKU, v.CreatedAt, v.UpdatedAt)
			queued++
		}
		for _, rv := range p.Reviews {
			batch.Queue(reviewQuery, rv.ID, p.ID, rv.UserID, rv.Rating, rv.Title, rv.Comment, rv.Verified, rv.CreatedAt, rv.UpdatedAt)
			queued++
		}
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < queued; i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.logger.Error().Err(err).Msg("failed to upsert product row")
			return fmt.Errorf("failed to upsert product: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close upsert batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit product upsert")
		return fmt.Errorf("failed to commit product upsert: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("products upserted")

	return nil
}

// Count returns the number of products in the catalogue.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
