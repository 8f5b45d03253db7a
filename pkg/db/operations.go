package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nkp-archive/nkp-scraper/models"
)

// CaseExists reports whether a case with this link is already stored.
func (db *DB) CaseExists(link string) (bool, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM cases WHERE लिङ्क = ?", link).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check existing case: %w", err)
	}
	return true, nil
}

// UpsertCase writes a case record, replacing any earlier row for the
// same link. Judges, citations, and holding are stored as JSON arrays;
// the party and case-number fields store whatever form extraction
// produced, scalar or JSON array.
func (db *DB) UpsertCase(rec *models.CaseRecord) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO cases (
			लिङ्क, निर्णय_नं, भाग, मुद्दाको_किसिम, साल, महिना, अंक,
			फैसला_मिति, अदालत_वा_इजलास, न्यायाधीश, आदेश_मिति, केस_नम्बर,
			विषय, निवेदक, विपक्षी, प्रकरण, ठहर, html_file_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.Link,
		rec.DecisionNumber,
		rec.Volume,
		rec.CaseType,
		rec.Year,
		rec.Month,
		rec.Issue,
		rec.DecisionDate,
		rec.Court,
		models.EncodeList(rec.Judges),
		rec.OrderDate,
		rec.CaseNumber.Encoded(),
		rec.Subject,
		rec.Petitioner.Encoded(),
		rec.Respondent.Encoded(),
		models.EncodeList(rec.Citations),
		models.EncodeList(rec.Holding),
		rec.HTMLPath,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert case: %w", err)
	}
	return nil
}

// CaseCount returns the number of stored cases.
func (db *DB) CaseCount() (int64, error) {
	var n int64
	if err := db.QueryRow("SELECT COUNT(*) FROM cases").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cases: %w", err)
	}
	return n, nil
}

// FailedLink is one link the scraper could not process.
type FailedLink struct {
	CaseType   string
	Year       string
	Link       string
	Error      string
	RetryCount int
}

// RecordFailure stores (or updates) a failed link, bumping the retry
// counter when the link was already recorded.
func (db *DB) RecordFailure(caseType, year, link, errMsg string) error {
	_, err := db.Exec(`
		INSERT INTO failed_links (मुद्दाको_किसिम, साल, लिङ्क, error_message, retry_count)
		VALUES (?, ?, ?, ?, 0)
		ON CONFLICT(लिङ्क) DO UPDATE SET
			error_message = excluded.error_message,
			retry_count = retry_count + 1
	`, caseType, year, link, errMsg)
	if err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

// ClearFailure removes a link from failed_links after a successful
// retry.
func (db *DB) ClearFailure(link string) error {
	if _, err := db.Exec("DELETE FROM failed_links WHERE लिङ्क = ?", link); err != nil {
		return fmt.Errorf("failed to clear failure: %w", err)
	}
	return nil
}

// FailedLinks returns every recorded failure, oldest first.
func (db *DB) FailedLinks() ([]FailedLink, error) {
	rows, err := db.Query(`
		SELECT मुद्दाको_किसिम, साल, लिङ्क, error_message, retry_count
		FROM failed_links ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed links: %w", err)
	}
	defer rows.Close()

	var out []FailedLink
	for rows.Next() {
		var fl FailedLink
		if err := rows.Scan(&fl.CaseType, &fl.Year, &fl.Link, &fl.Error, &fl.RetryCount); err != nil {
			return nil, fmt.Errorf("failed to scan failed link: %w", err)
		}
		out = append(out, fl)
	}
	return out, rows.Err()
}
