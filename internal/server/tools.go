package server

import "github.com/mark3labs/mcp-go/mcp"

// registerTools declares the tool surface. Names and argument shapes are
// part of the external contract; renaming one breaks every agent prompt
// that references it.
func (s *Server) registerTools() {
	// Drive tools.
	s.mcp.AddTool(mcp.NewTool("search_files",
		mcp.WithDescription("Search Google Drive for bank statement PDFs, newest first."),
		mcp.WithString("query", mcp.Description("Search term matched against file names (e.g. \"December Chase\")")),
		mcp.WithString("folder_id", mcp.Description("Restrict the search to one folder")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of results"), mcp.DefaultNumber(20)),
	), s.handleSearchFiles)

	s.mcp.AddTool(mcp.NewTool("move_file",
		mcp.WithDescription("Move a Drive file into a different folder, e.g. to archive a processed statement."),
		mcp.WithString("file_id", mcp.Required(), mcp.Description("ID of the file to move")),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("ID of the destination folder")),
	), s.handleMoveFile)

	s.mcp.AddTool(mcp.NewTool("create_folder",
		mcp.WithDescription("Create a new folder in Google Drive."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new folder")),
		mcp.WithString("parent_id", mcp.Description("Parent folder ID")),
	), s.handleCreateFolder)

	// Parser tools.
	s.mcp.AddTool(mcp.NewTool("parse_statement",
		mcp.WithDescription("Download a bank statement PDF from Drive and extract its account info and every transaction."),
		mcp.WithString("file_id", mcp.Required(), mcp.Description("Drive file ID of the statement PDF")),
	), s.handleParseStatement)

	s.mcp.AddTool(mcp.NewTool("parse_local_statement",
		mcp.WithDescription("Extract account info and transactions from a statement PDF already on local disk."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the PDF file")),
	), s.handleParseLocalStatement)

	s.mcp.AddTool(mcp.NewTool("categorize",
		mcp.WithDescription("Classify a single transaction description into one of the fixed categories."),
		mcp.WithString("description", mcp.Required(), mcp.Description("Transaction description")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Transaction amount")),
	), s.handleCategorize)

	// Store tools.
	s.mcp.AddTool(mcp.NewTool("init_store",
		mcp.WithDescription("Initialize a spreadsheet for budget tracking: ensures the Transactions sheet exists with its header row."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Google Sheets spreadsheet ID")),
	), s.handleInitStore)

	s.mcp.AddTool(mcp.NewTool("save_transactions",
		mcp.WithDescription("Append parsed transactions to the spreadsheet, one row each. Call after parse_statement."),
		mcp.WithArray("transactions", mcp.Required(), mcp.Description("Transactions as returned by parse_statement")),
		mcp.WithObject("account_info", mcp.Required(), mcp.Description("Account info as returned by parse_statement")),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleSaveTransactions)

	s.mcp.AddTool(mcp.NewTool("get_recent",
		mcp.WithDescription("Read the most recent transactions from the spreadsheet."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of transactions"), mcp.DefaultNumber(50)),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleGetRecent)

	s.mcp.AddTool(mcp.NewTool("search_transactions",
		mcp.WithDescription("Search stored transactions by category, date range, and merchant. Filters combine as AND."),
		mcp.WithString("category", mcp.Description("Category name, matched case-insensitively")),
		mcp.WithString("start_date", mcp.Description("Inclusive start date, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Description("Inclusive end date, YYYY-MM-DD")),
		mcp.WithString("merchant", mcp.Description("Merchant substring, matched case-insensitively")),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleSearchTransactions)

	s.mcp.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize spending: totals, net, and per-category breakdown."),
		mcp.WithString("start_date", mcp.Description("Inclusive start date, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Description("Inclusive end date, YYYY-MM-DD")),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleGetSummary)

	// Advisor tools.
	s.mcp.AddTool(mcp.NewTool("get_advice",
		mcp.WithDescription("Get personalized budget advice based on recent spending patterns."),
		mcp.WithString("start_date", mcp.Description("Inclusive analysis start date, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Description("Inclusive analysis end date, YYYY-MM-DD")),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleGetAdvice)

	s.mcp.AddTool(mcp.NewTool("find_savings",
		mcp.WithDescription("Identify specific savings opportunities: unused subscriptions, heavy categories, duplicate charges."),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleFindSavings)

	s.mcp.AddTool(mcp.NewTool("analyze_trends",
		mcp.WithDescription("Analyze month-over-month spending trends, optionally for a single category."),
		mcp.WithString("category", mcp.Description("Category to analyze (all categories when omitted)")),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleAnalyzeTrends)

	s.mcp.AddTool(mcp.NewTool("compare_budget",
		mcp.WithDescription("Compare per-category spending against caller-supplied budget targets."),
		mcp.WithObject("targets", mcp.Required(), mcp.Description("Map of category name to target amount")),
		mcp.WithString("store_id", mcp.Description("Spreadsheet ID (default: configured store)")),
	), s.handleCompareBudget)
}
