package main

import (
	"context"
	"io"

	"fastfact"
	"fastfact/ingest"
	"fastfact/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Records   fastfact.RecordService
	Runs      fastfact.IngestRunService
	Ingester  *ingest.Ingester
	Fetcher   fastfact.Fetcher
	Sitemaps  fastfact.SitemapService
	Converter fastfact.Converter
	Asker     fastfact.Asker
	Tagger    fastfact.Tagger
	Writer    fastfact.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest  IngestCmd  `cmd:"" help:"Extract records from a folder of MHTML snapshots"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch site pages via sitemap discovery and save as markdown"`
	List    ListCmd    `cmd:"" help:"List stored records"`
	Show    ShowCmd    `cmd:"" help:"Show full details for one record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a record"`
	Approve ApproveCmd `cmd:"" help:"Mark a record's taxonomy labels as reviewed"`
	Tag     TagCmd     `cmd:"" help:"Propose taxonomy labels for records"`
	Ask     AskCmd     `cmd:"" help:"Ask a question answered from stored records"`
	Export  ExportCmd  `cmd:"" help:"Export records as markdown files"`
	Serve   ServeCmd   `cmd:"" help:"Serve the record API over HTTP"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Folder      string `arg:"" help:"Folder containing .mhtml snapshots"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
	Renderer    string `default:"goquery" enum:"goquery,trafilatura" help:"HTML renderer (goquery or trafilatura)"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL               string  `arg:"" help:"Base URL whose sitemap pages to fetch"`
	Out               string  `short:"o" default:"pages" help:"Output directory for markdown files"`
	Limit             int     `short:"n" help:"Maximum number of pages to fetch (0 = all)"`
	RequestsPerSecond float64 `default:"2" help:"Per-domain request rate limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Tag        string `short:"t" help:"Filter by tag"`
	Status     string `short:"s" help:"Filter by status (active or archived)"`
	Unapproved bool   `short:"u" help:"Show only records with unreviewed labels"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Record ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// ApproveCmd is the "approve" subcommand.
type ApproveCmd struct {
	ID string `arg:"" help:"Record ID"`
}

// TagCmd is the "tag" subcommand.
type TagCmd struct {
	ID string `arg:"" optional:"" help:"Record ID (default: all records with unreviewed labels)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to answer from stored records"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out string `short:"o" default:"export" help:"Output directory for markdown files"`
	Tag string `short:"t" help:"Export only records with this tag"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
