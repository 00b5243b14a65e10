package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// maxQueryRows caps how much of a result set is fed back to the model.
const maxQueryRows = 50

func toolDefinitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "list_tables",
				Description: "List the tables available in the store database.",
				Parameters: jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "table_schema",
				Description: "Return the CREATE TABLE statement for one table.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"table": {
							Type:        jsonschema.String,
							Description: "Name of the table to describe.",
						},
					},
					Required: []string{"table"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "run_query",
				Description: "Run a read-only SQL SELECT query and return the rows as text.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"query": {
							Type:        jsonschema.String,
							Description: "A single SELECT statement.",
						},
					},
					Required: []string{"query"},
				},
			},
		},
	}
}

// callTool executes one tool call. Failures are returned as plain text
// for the model to read and work around, not as Go errors.
func (a *Agent) callTool(call openai.ToolCall) string {
	switch call.Function.Name {
	case "list_tables":
		return a.listTables()
	case "table_schema":
		var args struct {
			Table string `json:"table"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("invalid arguments: %v", err)
		}
		return a.tableSchema(args.Table)
	case "run_query":
		var args struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("invalid arguments: %v", err)
		}
		return a.runQuery(args.Query)
	default:
		return fmt.Sprintf("unknown tool %q", call.Function.Name)
	}
}

func (a *Agent) listTables() string {
	names, err := a.tableNames()
	if err != nil {
		a.logger.Error("Failed to list tables: %v", err)
		return fmt.Sprintf("error: %v", err)
	}
	return strings.Join(names, ", ")
}

func (a *Agent) tableNames() ([]string, error) {
	var names []string
	err := a.db.Raw(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name",
	).Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return names, nil
}

func (a *Agent) tableSchema(table string) string {
	names, err := a.tableNames()
	if err != nil {
		a.logger.Error("Failed to list tables: %v", err)
		return fmt.Sprintf("error: %v", err)
	}

	known := false
	for _, name := range names {
		if name == table {
			known = true
			break
		}
	}
	if !known {
		return fmt.Sprintf("no such table %q", table)
	}

	var ddl string
	err = a.db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&ddl).Error
	if err != nil {
		a.logger.Error("Failed to read schema for %s: %v", table, err)
		return fmt.Sprintf("error: %v", err)
	}
	return ddl
}

// runQuery executes a single SELECT statement and renders up to
// maxQueryRows rows as pipe-separated text.
func (a *Agent) runQuery(query string) string {
	if err := validateSelect(query); err != nil {
		return fmt.Sprintf("rejected: %v", err)
	}

	rows, err := a.db.Raw(query).Rows()
	if err != nil {
		a.logger.Error("Query failed: %v", err)
		return fmt.Sprintf("query failed: %v", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Sprintf("query failed: %v", err)
	}

	var out strings.Builder
	out.WriteString(strings.Join(columns, " | "))
	out.WriteString("\n")

	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	count := 0
	for rows.Next() && count < maxQueryRows {
		if err := rows.Scan(pointers...); err != nil {
			return fmt.Sprintf("query failed: %v", err)
		}
		fields := make([]string, len(values))
		for i, value := range values {
			fields[i] = renderValue(value)
		}
		out.WriteString(strings.Join(fields, " | "))
		out.WriteString("\n")
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Sprintf("query failed: %v", err)
	}
	if count == 0 {
		return "no rows"
	}
	return out.String()
}

// validateSelect rejects anything but a single SELECT statement before
// it reaches the database.
func validateSelect(query string) error {
	trimmed := strings.TrimSpace(query)
	trimmed = strings.TrimSuffix(trimmed, ";")
	if trimmed == "" {
		return fmt.Errorf("empty query")
	}
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return fmt.Errorf("only SELECT queries are allowed")
	}
	if strings.Contains(trimmed, ";") {
		return fmt.Errorf("multiple statements are not allowed")
	}
	return nil
}

func renderValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
