// Package archive snapshots the full version history of a document kind
// as a JSON object in object storage, for offline backup and audits.
package archive
