// Package main provides the Thai Customs MCP server.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	thaicustomsmcp "github.com/siamtrade/thai-customs-mcp"
	"github.com/siamtrade/thai-customs-mcp/internal/buildinfo"
	"github.com/siamtrade/thai-customs-mcp/internal/config"
	"github.com/siamtrade/thai-customs-mcp/internal/declaration"
	"github.com/siamtrade/thai-customs-mcp/internal/docs"
	"github.com/siamtrade/thai-customs-mcp/internal/handlers"
	"github.com/siamtrade/thai-customs-mcp/internal/logging"
	"github.com/siamtrade/thai-customs-mcp/internal/narrative"
	"github.com/siamtrade/thai-customs-mcp/internal/search"
)

func main() {
	logger := logging.Default()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	generator := narrative.NewGenerator(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	drafter := declaration.NewDrafter(cfg.DutyRate, cfg.VATRate)

	logger.Info("Starting Thai Customs MCP server",
		slog.String("version", buildinfo.Version),
		slog.String("search_backend", cfg.SearchBackend),
		slog.Bool("demo_mode", generator.DemoMode()),
	)

	searcher, cleanup, err := newSearcher(cfg)
	if err != nil {
		logger.Error("Failed to initialize reference search", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	s := server.NewMCPServer(
		"ThaiCustomsMCP",
		buildinfo.Version,
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	registerTools(s, drafter, generator, searcher, cfg)

	if err := registerResources(s); err != nil {
		logger.Warn("Reference documents unavailable", slog.String("error", err.Error()))
	}

	registerPrompts(s)

	logger.Info("Starting MCP server on stdio")

	if err := server.ServeStdio(s); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func registerTools(s *server.MCPServer, drafter *declaration.Drafter, generator *narrative.Generator, searcher search.Search, cfg *config.Config) {
	pingTool := mcp.NewTool(
		"ping",
		mcp.WithDescription("Health check. Returns 'pong' when the Thai Customs MCP server is reachable."),
	)
	s.AddTool(pingTool, handlers.WithToolMiddleware("ping", handlers.NewPingHandler()).Handle)

	listPartsTool := mcp.NewTool(
		"list_demo_parts",
		mcp.WithDescription("List the demo automotive parts catalog with Thai and English descriptions, HS codes and default quantities. Use to discover valid part IDs before classifying or drafting."),
		mcp.WithString(
			"query",
			mcp.Description("Optional filter matched against part IDs and descriptions. Examples: 'brake', 'filter', 'ไส้กรอง'."),
		),
	)
	s.AddTool(listPartsTool, handlers.WithToolMiddleware("list_demo_parts", handlers.NewListPartsHandler()).Handle)

	classifyTool := mcp.NewTool(
		"classify_auto_part",
		mcp.WithDescription("Suggest HS codes for an automotive part description (Thai or English). Returns ranked candidates with confidence scores and the WCO heading each code falls under."),
		mcp.WithString(
			"description",
			mcp.Required(),
			mcp.Description("The part description to classify. Examples: 'front brake pads', 'หัวเทียน', 'P003'."),
		),
		mcp.WithNumber(
			"max_results",
			mcp.Description("Maximum number of candidates to return (default: 5, max: 10)."),
		),
	)
	s.AddTool(classifyTool, handlers.WithToolMiddleware("classify_auto_part", handlers.NewClassifyHandler()).Handle)

	declareTool := mcp.NewTool(
		"draft_thai_declaration",
		mcp.WithDescription("Draft a Thai Customs import declaration (ED01) from invoice and transport data. Computes customs value, import duty and VAT, and allocates gross weight across commodity lines proportionally to value."),
		mcp.WithObject(
			"payload",
			mcp.Required(),
			mcp.Description("Invoice and bill-of-lading data: shipper, consignee, invoice_no, invoice_date, currency, incoterm, origin_country, port_loading, port_discharge, and an items array of {description, hs_code, quantity, unit, unit_price, gross_weight}."),
		),
		mcp.WithBoolean(
			"include_narrative",
			mcp.Description("When true, attach a Thai-language summary narrative generated via the configured OpenAI-compatible model (or a demo rendering when no API key is set)."),
		),
	)
	s.AddTool(declareTool, handlers.WithToolMiddleware("draft_thai_declaration", handlers.NewDeclareHandler(drafter, generator)).Handle)

	searchTool := mcp.NewTool(
		"search_customs_reference",
		mcp.WithDescription("Search the bundled Thai customs reference documentation: HS heading notes, ED01 field guidance and weight allocation rules. Use when a classification is ambiguous or a declaration field is unclear."),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("Search query. Examples: 'brake parts heading', 'customs value CIF', 'weight allocation rounding'."),
		),
		mcp.WithNumber(
			"max_results",
			mcp.Description("Maximum number of results to return (default: 5, max: 20)."),
		),
	)
	s.AddTool(searchTool, handlers.WithToolMiddleware("search_customs_reference", handlers.NewSearchReferenceHandler(searcher)).Handle)

	extractTool := mcp.NewTool(
		"extract_document_text",
		mcp.WithDescription("Extract the text layer of a PDF shipping document (invoice, packing list, bill of lading) so its contents can feed classification and declaration drafting. Requires DOCUMENT_ROOT to be configured."),
		mcp.WithString(
			"path",
			mcp.Required(),
			mcp.Description("Path of the PDF, relative to the configured document root. Example: 'inbound/INV-2025-0042.pdf'."),
		),
	)
	s.AddTool(extractTool, handlers.WithToolMiddleware("extract_document_text", handlers.NewExtractHandler(cfg.DocumentRoot)).Handle)
}

func registerResources(s *server.MCPServer) error {
	docsFS, err := thaicustomsmcp.ReferenceDocs()
	if err != nil {
		return fmt.Errorf("failed to load embedded documents: %w", err)
	}

	handler := docs.NewHandler(docsFS)

	resources, err := handler.Resources()
	if err != nil {
		return fmt.Errorf("failed to scan reference documents: %w", err)
	}

	for _, resource := range resources {
		s.AddResource(resource, handler.ReadResource)
	}

	return nil
}

func registerPrompts(s *server.MCPServer) {
	draftPrompt := mcp.NewPrompt(
		"draft_declaration",
		mcp.WithPromptDescription("Walk through drafting a Thai import declaration: classify the parts, gather shipment details and call draft_thai_declaration."),
		mcp.WithArgument("request", mcp.ArgumentDescription("The shipment to declare, in the user's own words.")),
	)
	s.AddPrompt(draftPrompt, handlers.WithPromptMiddleware("draft_declaration", handlers.NewDraftPromptHandler()).Handle)
}

// newSearcher wires the reference search backend. The returned cleanup
// closes whatever the backend holds open and removes any temporary index.
func newSearcher(cfg *config.Config) (search.Search, func(), error) {
	if search.BackendType(cfg.SearchBackend) == search.BackendChroma {
		chroma := search.NewChromaSearch(cfg.ChromaURL, search.DefaultOptions().CollectionName)
		return chroma, func() { _ = chroma.Close() }, nil
	}

	if cfg.IndexDBPath != "" {
		db, err := search.OpenSQLiteDB(cfg.IndexDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open index at %s: %w", cfg.IndexDBPath, err)
		}
		return search.NewFullTextSearcher(db), func() { _ = db.Close() }, nil
	}

	// No prebuilt index configured. Build one in a temporary file from the
	// embedded reference documents.
	docsFS, err := thaicustomsmcp.ReferenceDocs()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load embedded documents: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "thai-customs-index-*")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temporary index directory: %w", err)
	}

	indexPath := filepath.Join(tempDir, "index.db")
	db, err := search.InitSQLiteDB(indexPath)
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, nil, fmt.Errorf("failed to initialize index: %w", err)
	}

	if err := search.BuildIndex(db, docsFS); err != nil {
		_ = db.Close()
		_ = os.RemoveAll(tempDir)
		return nil, nil, fmt.Errorf("failed to build index: %w", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.RemoveAll(tempDir)
	}

	return search.NewFullTextSearcher(db), cleanup, nil
}
