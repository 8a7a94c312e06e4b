// Package services implements the driving ports on top of the ingest
// pipeline and prefix index. LookupService answers ordered prefix
// queries against the published snapshot; IngestService orchestrates
// dataset sources, the cache fallback and atomic snapshot publication.
package services
