// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Load reads the distinct crop labels from the reference dataset CSV using
// an in-memory DuckDB instance. The dataset is only consulted for its
// "label" column; DuckDB's CSV reader handles quoting, headers, and type
// sniffing for us.
//
// A missing dataset file is not an error at this level distinct from any
// other; callers decide whether absence is fatal (it is not: the server
// degrades to an empty catalog).
func Load(ctx context.Context, datasetPath string) (*Catalog, error) {
	if _, err := os.Stat(datasetPath); err != nil {
		return nil, fmt.Errorf("reference dataset unavailable: %w", err)
	}

	conn, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// lower() and DISTINCT in SQL; New() repeats the cleanup so catalogs
	// built directly from label slices behave identically.
	rows, err := conn.QueryContext(ctx,
		"SELECT DISTINCT lower(trim(label)) FROM read_csv_auto(?) WHERE label IS NOT NULL ORDER BY 1",
		datasetPath,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", datasetPath, err)
	}
	defer func() { _ = rows.Close() }()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate labels: %w", err)
	}

	return New(labels), nil
}
