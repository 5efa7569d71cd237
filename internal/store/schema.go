package store

// Money columns are TEXT: decimal values round-trip exactly, REAL would not.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS goals (
    goal_id              TEXT PRIMARY KEY,
    customer_id          TEXT NOT NULL,
    goal_type            TEXT NOT NULL,
    goal_name            TEXT NOT NULL,
    target_amount        TEXT NOT NULL,
    target_date          TEXT,
    created_at           TEXT
);

CREATE TABLE IF NOT EXISTS goal_tracking (
    goal_id              TEXT PRIMARY KEY,
    customer_id          TEXT NOT NULL,
    goal_type            TEXT NOT NULL,
    goal_name            TEXT NOT NULL,
    created_date         TEXT,
    target_date          TEXT,
    target_amount        TEXT NOT NULL,
    expected_value       TEXT NOT NULL,
    actual_value         TEXT NOT NULL,
    shortfall_pct        REAL,
    status               TEXT,
    status_message       TEXT
);

CREATE TABLE IF NOT EXISTS transactions (
    transaction_id       TEXT PRIMARY KEY,
    customer_id          TEXT NOT NULL,
    tx_date              TEXT,
    tx_type              TEXT,
    product_name         TEXT,
    amount               TEXT NOT NULL,
    units                TEXT NOT NULL,
    nav_price            TEXT NOT NULL,
    platform             TEXT,
    status               TEXT
);

CREATE TABLE IF NOT EXISTS snapshot_meta (
    customer_id          TEXT PRIMARY KEY,
    refreshed_at         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goals_customer ON goals(customer_id);
CREATE INDEX IF NOT EXISTS idx_tracking_customer ON goal_tracking(customer_id);
CREATE INDEX IF NOT EXISTS idx_tx_customer ON transactions(customer_id);
`
