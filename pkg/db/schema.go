package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Cases table: one row per gazette case document, keyed by its URL.
-- List-valued fields (न्यायाधीश, प्रकरण, ठहर, and the multi-party forms
-- of केस_नम्बर, निवेदक, विपक्षी) are stored as JSON arrays.
CREATE TABLE IF NOT EXISTS cases (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    लिङ्क TEXT UNIQUE,
    निर्णय_नं TEXT,
    भाग TEXT,
    मुद्दाको_किसिम TEXT,
    साल TEXT,
    महिना TEXT,
    अंक TEXT,
    फैसला_मिति TEXT,
    अदालत_वा_इजलास TEXT,
    न्यायाधीश TEXT,
    आदेश_मिति TEXT,
    केस_नम्बर TEXT,
    विषय TEXT,
    निवेदक TEXT,
    विपक्षी TEXT,
    प्रकरण TEXT,
    ठहर TEXT,
    html_file_path TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cases_saal ON cases(साल);
CREATE INDEX IF NOT EXISTS idx_cases_kisim ON cases(मुद्दाको_किसिम);

-- Failed links: every link that could not be scraped, with a retry
-- counter maintained across retry passes.
CREATE TABLE IF NOT EXISTS failed_links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    मुद्दाको_किसिम TEXT,
    साल TEXT,
    लिङ्क TEXT UNIQUE,
    error_message TEXT,
    retry_count INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_failed_links_link ON failed_links(लिङ्क);
`
