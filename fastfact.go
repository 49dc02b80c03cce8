// Package fastfact extracts structured records from archived web snapshots
// of Fast Fact articles. A snapshot is a single-file MIME multipart export
// (MHTML) embedding quoted-printable encoded HTML; the extraction engine
// decodes it, strips navigation chrome, and recovers the title, canonical
// URL, Fast Fact number, category tags, and the article summary whose end
// boundary has to be inferred heuristically.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package fastfact
