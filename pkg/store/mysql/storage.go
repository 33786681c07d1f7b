package mysql

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

const socialPostsSchema = `
	CREATE TABLE IF NOT EXISTS social_posts (
		id VARCHAR(64) NOT NULL,
		entity_id VARCHAR(64) NOT NULL,
		platform VARCHAR(32) NOT NULL,
		post_type VARCHAR(32) NOT NULL,
		caption TEXT,
		likes BIGINT NOT NULL DEFAULT 0,
		comments BIGINT NOT NULL DEFAULT 0,
		saves BIGINT NOT NULL DEFAULT 0,
		shares BIGINT NOT NULL DEFAULT 0,
		views BIGINT NOT NULL DEFAULT 0,
		occurred_at TIMESTAMP NOT NULL,
		PRIMARY KEY (entity_id, id),
		INDEX idx_social_posts_period (entity_id, occurred_at)
	);
`

const followerSamplesSchema = `
	CREATE TABLE IF NOT EXISTS follower_samples (
		entity_id VARCHAR(64) NOT NULL,
		platform VARCHAR(32) NOT NULL,
		followers BIGINT NOT NULL,
		sampled_at TIMESTAMP NOT NULL,
		PRIMARY KEY (entity_id, platform, sampled_at)
	);
`

const adRecordsSchema = `
	CREATE TABLE IF NOT EXISTS ad_records (
		id VARCHAR(64) NOT NULL,
		entity_id VARCHAR(64) NOT NULL,
		platform VARCHAR(32) NOT NULL,
		campaign VARCHAR(255),
		ad_name VARCHAR(255),
		spend DECIMAL(12,2) NOT NULL DEFAULT 0,
		impressions BIGINT NOT NULL DEFAULT 0,
		clicks BIGINT NOT NULL DEFAULT 0,
		leads BIGINT NOT NULL DEFAULT 0,
		occurred_at TIMESTAMP NOT NULL,
		PRIMARY KEY (entity_id, id),
		INDEX idx_ad_records_period (entity_id, occurred_at)
	);
`

const keywordRanksSchema = `
	CREATE TABLE IF NOT EXISTS keyword_ranks (
		id VARCHAR(64) NOT NULL,
		entity_id VARCHAR(64) NOT NULL,
		keyword VARCHAR(255) NOT NULL,
		position DOUBLE NOT NULL,
		estimated_traffic DOUBLE NOT NULL DEFAULT 0,
		occurred_at TIMESTAMP NOT NULL,
		PRIMARY KEY (entity_id, id),
		INDEX idx_keyword_ranks_period (entity_id, occurred_at)
	);
`

const reportsSchema = `
	CREATE TABLE IF NOT EXISTS reports (
		id VARCHAR(36) NOT NULL,
		entity_id VARCHAR(64) NOT NULL,
		cadence VARCHAR(32) NOT NULL,
		period_start TIMESTAMP NOT NULL,
		period_end TIMESTAMP NOT NULL,
		sections JSON NOT NULL,
		big_numbers JSON NOT NULL,
		status_color VARCHAR(16) NOT NULL,
		narrative TEXT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (id),
		INDEX idx_reports_latest (entity_id, cadence, created_at)
	);
`

const goalsSchema = `
	CREATE TABLE IF NOT EXISTS goals (
		id VARCHAR(36) NOT NULL,
		entity_id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		baseline DOUBLE NOT NULL,
		target DOUBLE NOT NULL,
		current DOUBLE NOT NULL,
		direction VARCHAR(16) NOT NULL,
		period_start TIMESTAMP NOT NULL,
		period_end TIMESTAMP NOT NULL,
		PRIMARY KEY (id),
		INDEX idx_goals_entity (entity_id)
	);
`

const goalMeasurementsSchema = `
	CREATE TABLE IF NOT EXISTS goal_measurements (
		goal_id VARCHAR(36) NOT NULL,
		value DOUBLE NOT NULL,
		measured_at TIMESTAMP NOT NULL,
		INDEX idx_goal_measurements (goal_id, measured_at)
	);
`

const entityContractsSchema = `
	CREATE TABLE IF NOT EXISTS entity_contracts (
		entity_id VARCHAR(64) NOT NULL,
		domain VARCHAR(32) NOT NULL,
		PRIMARY KEY (entity_id, domain)
	);
`

var bootQueries = []string{
	socialPostsSchema,
	followerSamplesSchema,
	adRecordsSchema,
	keywordRanksSchema,
	reportsSchema,
	goalsSchema,
	goalMeasurementsSchema,
	entityContractsSchema,
}

type Settings struct {
	DSN string
}

// NewDB opens the MySQL connection and boots the schema.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("mysql", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			return nil, fmt.Errorf("boot schema: %w", err)
		}
	}
	return db, nil
}
