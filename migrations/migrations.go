package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrate creates the four tables if they do not exist. Ordering matters:
// containers references orders, food_items references containers.
//
// containers.order_id is nullable on purpose: menu catalog entries are
// containers with no owning order.
func AutoMigrate(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(80) NOT NULL UNIQUE,
			email VARCHAR(120) NOT NULL UNIQUE,
			password_hash VARCHAR(256) NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id VARCHAR(10) PRIMARY KEY,
			order_type VARCHAR(20) NOT NULL,
			location VARCHAR(100) NOT NULL DEFAULT '',
			payment VARCHAR(20) NOT NULL DEFAULT 'pending'
		);`,
		`CREATE TABLE IF NOT EXISTS containers (
			container_id INT AUTO_INCREMENT PRIMARY KEY,
			order_id VARCHAR(10) NULL,
			container_number INT NOT NULL DEFAULT 0,
			packaging_type VARCHAR(50) NOT NULL DEFAULT '',
			message TEXT,
			FOREIGN KEY (order_id) REFERENCES orders(order_id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS food_items (
			item_id INT AUTO_INCREMENT PRIMARY KEY,
			container_id INT NOT NULL,
			food_name VARCHAR(100) NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			FOREIGN KEY (container_id) REFERENCES containers(container_id) ON DELETE CASCADE
		);`,
	}

	for _, query := range queries {
		if err := execWithRetry(db, query, 3); err != nil {
			return err
		}
	}
	return nil
}

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}
