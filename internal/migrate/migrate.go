package migrate

import (
	"context"

	"camerashop-be/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto
	CreateChecks           bool // CHECK constraints
	CreateIndexes          bool // secondary indexes
	CreateFKsViaSQL        bool // FKs are not emitted by AutoMigrate
	CreateUpdatedAtTrigger bool
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

type step struct {
	name string
	sql  string
}

var checkSteps = []step{
	{"chk_orders_status_allowed", `
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','confirmed','processing','shipping','delivered','cancelled'));`},
	{"chk_orders_payment_method", `
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_payment_method;
ALTER TABLE orders ADD CONSTRAINT chk_orders_payment_method
  CHECK (payment_method IN ('cod','vnpay','momo'));`},
	{"chk_orders_amounts_non_negative", `
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_amounts_non_negative;
ALTER TABLE orders ADD CONSTRAINT chk_orders_amounts_non_negative
  CHECK (subtotal >= 0 AND shipping_fee >= 0 AND discount_amount >= 0 AND total >= 0);`},
	{"chk_order_items_quantity_gt_zero", `
ALTER TABLE order_items DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items ADD CONSTRAINT chk_order_items_quantity_gt_zero CHECK (quantity > 0);`},
	{"chk_order_items_prices_non_negative", `
ALTER TABLE order_items DROP CONSTRAINT IF EXISTS chk_order_items_prices_non_negative;
ALTER TABLE order_items ADD CONSTRAINT chk_order_items_prices_non_negative
  CHECK (price >= 0 AND subtotal >= 0);`},
	{"chk_products_stock_non_negative", `
ALTER TABLE products DROP CONSTRAINT IF EXISTS chk_products_stock_non_negative;
ALTER TABLE products ADD CONSTRAINT chk_products_stock_non_negative
  CHECK (stock_quantity >= 0 AND price >= 0);`},
	{"chk_coupons_usage", `
ALTER TABLE coupons DROP CONSTRAINT IF EXISTS chk_coupons_usage;
ALTER TABLE coupons ADD CONSTRAINT chk_coupons_usage
  CHECK (used_count >= 0 AND (usage_limit IS NULL OR usage_limit >= 0));`},
	{"chk_coupons_type", `
ALTER TABLE coupons DROP CONSTRAINT IF EXISTS chk_coupons_type;
ALTER TABLE coupons ADD CONSTRAINT chk_coupons_type
  CHECK (type IN ('fixed','percentage') AND value >= 0 AND min_order_value >= 0);`},
	{"chk_carts_quantity_gt_zero", `
ALTER TABLE carts DROP CONSTRAINT IF EXISTS chk_carts_quantity_gt_zero;
ALTER TABLE carts ADD CONSTRAINT chk_carts_quantity_gt_zero CHECK (quantity > 0);`},
}

var indexSteps = []step{
	{"ix_orders_user_created", `CREATE INDEX IF NOT EXISTS ix_orders_user_created ON orders (user_id, created_at DESC);`},
	{"ix_orders_status_created", `CREATE INDEX IF NOT EXISTS ix_orders_status_created ON orders (status, created_at DESC);`},
	{"ix_products_low_stock", `CREATE INDEX IF NOT EXISTS ix_products_low_stock ON products (stock_quantity) WHERE is_active;`},
	{"ix_low_stock_unread", `CREATE INDEX IF NOT EXISTS ix_low_stock_unread ON low_stock_notifications (product_id) WHERE NOT is_read;`},
}

// order_items.product_id intentionally has no FK: items keep their snapshot
// after the product is removed.
var fkSteps = []step{
	{"fk_order_items_order", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`},
	{"fk_carts_product", `
ALTER TABLE carts
  DROP CONSTRAINT IF EXISTS fk_carts_product,
  ADD CONSTRAINT fk_carts_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`},
	{"fk_low_stock_product", `
ALTER TABLE low_stock_notifications
  DROP CONSTRAINT IF EXISTS fk_low_stock_product,
  ADD CONSTRAINT fk_low_stock_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`},
}

var updatedAtTables = []string{"orders", "products", "coupons", "carts", "low_stock_notifications"}

func runSteps(db *gorm.DB, log *zap.Logger, steps []step) error {
	for _, s := range steps {
		if err := db.Exec(s.sql).Error; err != nil {
			log.Error("migration step failed", zap.String("step", s.name), zap.Error(err))
			return err
		}
	}
	return nil
}

func MigrateShopDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	db = db.WithContext(ctx)
	log.Info("starting shop database migration")

	if opt.CreateExtensions {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto", zap.Error(err))
			return err
		}
	}

	log.Info("creating tables")
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
		&models.LowStockNotification{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;`).Error; err != nil {
			log.Error("failed to create set_updated_at()", zap.Error(err))
			return err
		}
		for _, tbl := range updatedAtTables {
			if err := db.Exec(`
DROP TRIGGER IF EXISTS trg_` + tbl + `_updated ON ` + tbl + `;
CREATE TRIGGER trg_` + tbl + `_updated BEFORE UPDATE ON ` + tbl + `
FOR EACH ROW EXECUTE FUNCTION set_updated_at();`).Error; err != nil {
				log.Error("failed to create updated_at trigger", zap.String("table", tbl), zap.Error(err))
				return err
			}
		}
	}

	if opt.CreateChecks {
		log.Info("creating CHECK constraints")
		if err := runSteps(db, log, checkSteps); err != nil {
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("creating indexes")
		if err := runSteps(db, log, indexSteps); err != nil {
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		log.Info("creating foreign keys")
		if err := runSteps(db, log, fkSteps); err != nil {
			return err
		}
	}

	log.Info("shop database migration finished")
	return nil
}
