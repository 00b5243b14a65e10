package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/database"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/models"
)

func openTestAgent(t *testing.T, baseURL string) *Agent {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	row := models.ProductRow{
		ID: 1, VariantID: 10, Title: "Classic Tee", Price: 19.99,
		Colors: "Red", Size: "M", ProductType: "Mens T-Shirts",
	}
	require.NoError(t, db.DB.Create(&row).Error)

	cfg := openai.DefaultConfig("test-key")
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(cfg)
	return NewWithClient(client, "gpt-4o", db.DB, logger.New("error"))
}

func TestValidateSelect(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"plain select", "SELECT * FROM shopify_products", false},
		{"lowercase", "select title from shopify_products", false},
		{"trailing semicolon", "SELECT 1;", false},
		{"leading whitespace", "  SELECT 1", false},
		{"insert", "INSERT INTO shopify_cart VALUES (1)", true},
		{"delete", "DELETE FROM shopify_orders", true},
		{"drop", "DROP TABLE shopify_products", true},
		{"stacked statements", "SELECT 1; DROP TABLE shopify_products", true},
		{"empty", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSelect(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListTablesAndSchema(t *testing.T) {
	a := openTestAgent(t, "")

	tables := a.listTables()
	assert.Contains(t, tables, "shopify_products")
	assert.Contains(t, tables, "shopify_orders")
	assert.Contains(t, tables, "shopify_cart")

	ddl := a.tableSchema("shopify_products")
	assert.Contains(t, ddl, "CREATE TABLE")
	assert.Contains(t, ddl, "variant_id")

	assert.Equal(t, `no such table "users"`, a.tableSchema("users"))
}

func TestRunQuery(t *testing.T) {
	a := openTestAgent(t, "")

	out := a.runQuery("SELECT title, colors FROM shopify_products")
	assert.Contains(t, out, "title | colors")
	assert.Contains(t, out, "Classic Tee | Red")

	out = a.runQuery("SELECT title FROM shopify_products WHERE id = 999")
	assert.Equal(t, "no rows", out)

	out = a.runQuery("DELETE FROM shopify_products")
	assert.Contains(t, out, "rejected")
}

func chatResponse(t *testing.T, message map[string]interface{}) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o",
		"choices": []map[string]interface{}{
			{"index": 0, "message": message, "finish_reason": "stop"},
		},
	})
	require.NoError(t, err)
	return payload
}

func TestAnswerRunsToolLoop(t *testing.T) {
	var requests []openai.ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		w.Header().Set("Content-Type", "application/json")
		if len(requests) == 1 {
			// First round: the model asks to run a query.
			w.Write(chatResponse(t, map[string]interface{}{
				"role": "assistant",
				"tool_calls": []map[string]interface{}{
					{
						"id":   "call_1",
						"type": "function",
						"function": map[string]interface{}{
							"name":      "run_query",
							"arguments": `{"query": "SELECT title FROM shopify_products"}`,
						},
					},
				},
			}))
			return
		}
		w.Write(chatResponse(t, map[string]interface{}{
			"role":    "assistant",
			"content": "We sell the Classic Tee.",
		}))
	}))
	defer server.Close()

	a := openTestAgent(t, server.URL+"/v1")

	answer, err := a.Answer(context.Background(), "what do you sell?")
	require.NoError(t, err)
	assert.Equal(t, "We sell the Classic Tee.", answer)

	require.Len(t, requests, 2)
	// The second round carries the tool result back to the model.
	last := requests[1].Messages[len(requests[1].Messages)-1]
	assert.Equal(t, openai.ChatMessageRoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, "Classic Tee")
}

func TestAnswerPropagatesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "nope"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	a := openTestAgent(t, server.URL+"/v1")

	_, err := a.Answer(context.Background(), "hello products")
	require.Error(t, err)
}
